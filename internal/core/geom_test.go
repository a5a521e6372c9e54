package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 5, 5, true},
		{"top-left corner", 0, 0, true},
		{"right edge (exclusive)", 10, 5, false},
		{"bottom edge (exclusive)", 5, 10, false},
		{"negative", -1, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is wrong")
	}
}
