package core

import (
	"testing"
	"time"
)

func TestPointMove(t *testing.T) {
	start := Point{Row: 5, Col: 5}
	tests := []struct {
		name     string
		dir      Direction
		expected Point
	}{
		{"Left", DirLeft, Point{Row: 5, Col: 4}},
		{"Right", DirRight, Point{Row: 5, Col: 6}},
		{"Up", DirUp, Point{Row: 4, Col: 5}},
		{"Down", DirDown, Point{Row: 6, Col: 5}},
		{"None", DirNone, Point{Row: 5, Col: 5}},
		{"Unknown", Direction(42), Point{Row: 5, Col: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := start.Move(tt.dir)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPointMoveIsPure(t *testing.T) {
	p := Point{Row: 1, Col: 1}
	_ = p.Move(DirLeft)
	if p != (Point{Row: 1, Col: 1}) {
		t.Errorf("Expected receiver unchanged, got %v", p)
	}
}

func TestDirectionDeltaUnitLength(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dr, dc := d.Delta()
		if abs(dr)+abs(dc) != 1 {
			t.Errorf("Expected unit delta for %v, got (%d,%d)", d, dr, dc)
		}
	}
}

func TestSpeedInterval(t *testing.T) {
	tests := []struct {
		speed    Speed
		expected time.Duration
	}{
		{SpeedSlow, 200 * time.Millisecond},
		{SpeedFast, 100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.speed.String(), func(t *testing.T) {
			if got := tt.speed.Interval(); got != tt.expected {
				t.Errorf("Expected interval %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSpeedIntervalPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero speed")
		}
	}()
	Speed(0).Interval()
}

func TestInteriorContains(t *testing.T) {
	a := Interior(10, 100)
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"TopLeft", Point{Row: 1, Col: 1}, true},
		{"BottomRight", Point{Row: 8, Col: 98}, true},
		{"Center", Point{Row: 5, Col: 50}, true},
		{"TopBorder", Point{Row: 0, Col: 10}, false},
		{"BottomBorder", Point{Row: 9, Col: 10}, false},
		{"LeftBorder", Point{Row: 3, Col: 0}, false},
		{"RightBorder", Point{Row: 3, Col: 99}, false},
		{"Negative", Point{Row: -1, Col: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.p); got != tt.expected {
				t.Errorf("Expected Contains(%v) = %v, got %v", tt.p, tt.expected, got)
			}
		})
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	// Must return without exiting
	HandleCrash(nil)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
