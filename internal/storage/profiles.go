package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// MaxProfiles is the number of player profiles a store keeps.
const MaxProfiles = 5

// MaxProfileName is the longest allowed profile name, in characters.
const MaxProfileName = 63

var (
	// ErrInvalidProfileName is returned for empty, too long or
	// non-printable names.
	ErrInvalidProfileName = errors.New("storage: invalid profile name")

	// ErrProfileExists is returned when creating a duplicate profile.
	ErrProfileExists = errors.New("storage: profile already exists")

	// ErrProfileLimit is returned when MaxProfiles profiles exist.
	ErrProfileLimit = errors.New("storage: too many profiles")

	// ErrNoProfile is returned when a profile does not exist.
	ErrNoProfile = errors.New("storage: no such profile")
)

// Profile is a named player.
type Profile struct {
	Name      string
	CreatedAt time.Time
}

// ProfileStats are a profile's results in one mode.
type ProfileStats struct {
	ModeID       string
	HighScore    int
	GamesPlayed  int
	TotalSecs    int
	HighestLevel int
	HighestStage int // last stage cleared in staged modes
	LastPlayed   time.Time
}

// ValidateProfileName trims the name and checks it.
func ValidateProfileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxProfileName {
		return "", fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
		}
	}
	return name, nil
}

// CreateProfile adds a new profile.
func (s *Store) CreateProfile(name string) (Profile, error) {
	name, err := ValidateProfileName(name)
	if err != nil {
		return Profile{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Profile{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM profiles").Scan(&count); err != nil {
		return Profile{}, fmt.Errorf("storage: cannot count profiles: %w", err)
	}
	if count >= MaxProfiles {
		return Profile{}, ErrProfileLimit
	}

	var exists int
	err = tx.QueryRow("SELECT 1 FROM profiles WHERE name = ?", name).Scan(&exists)
	switch {
	case err == nil:
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileExists, name)
	case !errors.Is(err, sql.ErrNoRows):
		return Profile{}, fmt.Errorf("storage: cannot check profile: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO profiles (name) VALUES (?)", name); err != nil {
		return Profile{}, fmt.Errorf("storage: cannot create profile: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Profile{}, fmt.Errorf("storage: cannot commit profile: %w", err)
	}

	return s.Profile(name)
}

// Profile returns one profile by name.
func (s *Store) Profile(name string) (Profile, error) {
	var p Profile
	var createdAt any
	err := s.db.QueryRow("SELECT name, created_at FROM profiles WHERE name = ?", name).Scan(&p.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("%w: %q", ErrNoProfile, name)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("storage: cannot query profile: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)
	return p, nil
}

// Profiles lists all profiles in creation order.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query("SELECT name, created_at FROM profiles ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		var createdAt any
		if err := rows.Scan(&p.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteProfile removes a profile and its stats. Scores already saved
// keep the profile name.
func (s *Store) DeleteProfile(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := tx.Exec("DELETE FROM profiles WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrNoProfile, name)
	}
	if _, err := tx.Exec("DELETE FROM profile_stats WHERE profile = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete profile stats: %w", err)
	}
	return tx.Commit()
}

// ProfileStats returns the per-mode stats of a profile, sorted by mode.
func (s *Store) ProfileStats(name string) ([]ProfileStats, error) {
	if _, err := s.Profile(name); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		`SELECT mode_id, high_score, games_played, total_secs, highest_level, highest_stage, last_played
		 FROM profile_stats WHERE profile = ? ORDER BY mode_id`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile stats: %w", err)
	}
	defer rows.Close()

	var out []ProfileStats
	for rows.Next() {
		var ps ProfileStats
		var lastPlayed any
		if err := rows.Scan(&ps.ModeID, &ps.HighScore, &ps.GamesPlayed, &ps.TotalSecs, &ps.HighestLevel, &ps.HighestStage, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile stats: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		out = append(out, ps)
	}
	return out, rows.Err()
}

// recordProfileGame folds one finished session into the profile stats.
func recordProfileGame(tx *sql.Tx, e ScoreEntry) error {
	var exists int
	err := tx.QueryRow("SELECT 1 FROM profiles WHERE name = ?", e.Profile).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrNoProfile, e.Profile)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot check profile: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO profile_stats (profile, mode_id, high_score, games_played, total_secs, highest_level, highest_stage, last_played)
		 VALUES (?, ?, ?, 1, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (profile, mode_id) DO UPDATE SET
			high_score = MAX(high_score, excluded.high_score),
			games_played = games_played + 1,
			total_secs = total_secs + excluded.total_secs,
			highest_level = MAX(highest_level, excluded.highest_level),
			highest_stage = MAX(highest_stage, excluded.highest_stage),
			last_played = CURRENT_TIMESTAMP`,
		e.Profile, e.ModeID, e.Score, e.DurationSecs, e.Level, e.Stage,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update profile stats: %w", err)
	}
	return nil
}
