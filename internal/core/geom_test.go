package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			if got := r.ContainsPoint(Pt(tc.x, tc.y)); got != tc.expected {
				t.Errorf("ContainsPoint(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestPointAddAndNeighbors(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, -1)); got != Pt(4, 3) {
		t.Errorf("Add = %v, expected (4,3)", got)
	}

	seen := make(map[Point]bool)
	for _, n := range p.Neighbors4() {
		d := Abs(n.X-p.X) + Abs(n.Y-p.Y)
		if d != 1 {
			t.Errorf("neighbor %v is not orthogonally adjacent to %v", n, p)
		}
		seen[n] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct neighbors, got %d", len(seen))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestActionDirectionVector(t *testing.T) {
	tests := []struct {
		action Action
		dx, dy int
		ok     bool
	}{
		{ActionUp, 0, -1, true},
		{ActionDown, 0, 1, true},
		{ActionLeft, -1, 0, true},
		{ActionRight, 1, 0, true},
		{ActionPause, 0, 0, false},
	}

	for _, tc := range tests {
		dx, dy, ok := tc.action.DirectionVector()
		if dx != tc.dx || dy != tc.dy || ok != tc.ok {
			t.Errorf("%s.DirectionVector() = (%d, %d, %v), expected (%d, %d, %v)",
				tc.action, dx, dy, ok, tc.dx, tc.dy, tc.ok)
		}
	}
}
