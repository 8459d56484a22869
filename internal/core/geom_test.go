package core

import "testing"

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		outerW, outerH int
		w, h           int
		expected       Rect
	}{
		{"fits evenly", 80, 24, 20, 10, Rect{X: 30, Y: 7, W: 20, H: 10}},
		{"odd remainder rounds down", 11, 5, 4, 2, Rect{X: 3, Y: 1, W: 4, H: 2}},
		{"exact fit", 10, 10, 10, 10, Rect{X: 0, Y: 0, W: 10, H: 10}},
		{"too large clamps origin", 10, 4, 20, 8, Rect{X: 0, Y: 0, W: 20, H: 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredRect(tc.outerW, tc.outerH, tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenteredRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},  // Inside
		{10, 10, true},  // Top-left corner (inclusive)
		{29, 29, true},  // Just inside bottom-right
		{30, 30, false}, // Bottom-right corner (exclusive)
		{5, 15, false},  // Left of rect
		{35, 15, false}, // Right of rect
		{15, 5, false},  // Above rect
		{15, 35, false}, // Below rect
	}

	for _, tc := range tests {
		result := r.Contains(tc.x, tc.y)
		if result != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 6}.Inset(1)
	if want := (Rect{X: 3, Y: 4, W: 8, H: 4}); r != want {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := Rect{X: 0, Y: 0, W: 1, H: 1}.Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset should not produce negative sizes, got %+v", tiny)
	}
}

func TestRectFits(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 5}
	if !r.Fits(10, 5) {
		t.Error("10x5 should fit in 10x5")
	}
	if r.Fits(11, 5) || r.Fits(10, 6) {
		t.Error("larger areas should not fit")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // Within range
		{-5, 0, 10, 0},  // Below min
		{15, 0, 10, 10}, // Above max
		{0, 0, 10, 0},   // At min
		{10, 0, 10, 10}, // At max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		val, n, expected int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{-1, 4, 3},
		{-5, 4, 3},
		{9, 4, 1},
		{7, 0, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.val, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.val, tc.n, got, tc.expected)
		}
	}
}

func TestGroupColorCycles(t *testing.T) {
	n := len(groupPalette)
	if GroupColor(0) != GroupColor(n) {
		t.Error("GroupColor should cycle through the palette")
	}
	if GroupColor(0) == GroupColor(1) {
		t.Error("adjacent groups should get different colors")
	}
	if GroupColor(-1) != GroupColor(n-1) {
		t.Error("negative indexes should wrap")
	}
}
