package core

import "testing"

func TestDirectionDeltaAndOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		dRow     int
		dCol     int
		opposite Direction
	}{
		{DirUp, -1, 0, DirDown},
		{DirDown, 1, 0, DirUp},
		{DirLeft, 0, -1, DirRight},
		{DirRight, 0, 1, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dr, dc := tc.dir.Delta()
			if dr != tc.dRow || dc != tc.dCol {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dr, dc, tc.dRow, tc.dCol)
			}
			if tc.dir.Opposite() != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", tc.dir.Opposite(), tc.opposite)
			}
		})
	}
}

func TestPointStep(t *testing.T) {
	p := Point{Row: 5, Col: 5}
	if got := p.Step(DirRight); got != (Point{Row: 5, Col: 6}) {
		t.Errorf("Step(right) = %+v", got)
	}
	if got := p.Step(DirUp); got != (Point{Row: 4, Col: 5}) {
		t.Errorf("Step(up) = %+v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{15, 10, false},
		{10, 15, false},
		{9, 10, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-3, 0, 5) != 0 {
		t.Error("Clamp should raise values below the range")
	}
	if Clamp(9, 0, 5) != 5 {
		t.Error("Clamp should lower values above the range")
	}
	if Clamp(3, 0, 5) != 3 {
		t.Error("Clamp should keep values inside the range")
	}
}

func TestLevelColorClamps(t *testing.T) {
	if LevelColor(0) != LevelColors[0] {
		t.Error("level below 1 should use the first color")
	}
	if LevelColor(99) != LevelColors[len(LevelColors)-1] {
		t.Error("level above the table should use the last color")
	}
}
