package sim

// EndReason tells why a session ended.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonLivesExhausted
	ReasonTrapped // board full and no legal move
	ReasonTimeUp
	ReasonLevelCleared
)

func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonLivesExhausted:
		return "out of lives"
	case ReasonTrapped:
		return "trapped"
	case ReasonTimeUp:
		return "time up"
	case ReasonLevelCleared:
		return "all levels cleared"
	default:
		return "unknown"
	}
}

// Result describes how a session ended.
type Result struct {
	Reason EndReason
	Won    bool
}

// Rules are the mode-specific parts of a session: setup, spawn pacing,
// time limit and extra end conditions. Implementations live in the
// modes package.
type Rules interface {
	// ID is the stable mode identifier used for score storage.
	ID() string

	// Begin prepares a fresh session, e.g. by placing obstacles.
	Begin(s *Session)

	// SpawnInterval returns the number of ticks between timed spawns
	// for the current session state. Zero disables timed spawns.
	SpawnInterval(s *Session) int

	// TimeLimit returns the tick at which the session, or its current
	// stage, runs out of time. 0 means no limit.
	TimeLimit(s *Session) int

	// Judge is called after every tick and may end the session.
	Judge(s *Session) (Result, bool)

	// Status is a short HUD fragment such as the current target.
	Status(s *Session) string
}

// Stager is implemented by rules that move through numbered stages
// within one session. Step reports EventStageCleared when Judge moves
// to the next stage.
type Stager interface {
	Stage() int
}

// freeRules is used when a session is created without a mode: timed
// spawns every two seconds and no extra end conditions.
type freeRules struct{}

func (freeRules) ID() string { return "free" }

func (freeRules) Begin(*Session) {}

func (freeRules) SpawnInterval(s *Session) int { return s.Ticks(2) }

func (freeRules) TimeLimit(*Session) int { return 0 }

func (freeRules) Judge(*Session) (Result, bool) { return Result{}, false }

func (freeRules) Status(*Session) string { return "" }
