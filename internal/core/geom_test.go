package core

import "testing"

func TestRectOverlapsX(t *testing.T) {
	pipe := NewRect(180, 0, 80, 600)

	tests := []struct {
		name     string
		bird     Rect
		expected bool
	}{
		{"inside", NewRect(200, 300, 40, 40), true},
		{"touching left edge", NewRect(140, 300, 40, 40), false},
		{"one pixel into left edge", NewRect(141, 300, 40, 40), true},
		{"touching right edge", NewRect(260, 300, 40, 40), false},
		{"one pixel into right edge", NewRect(259, 300, 40, 40), true},
		{"far away", NewRect(500, 300, 40, 40), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.bird.OverlapsX(pipe); got != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.expected)
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

	if r.Empty() {
		t.Error("20x15 rect should not be empty")
	}
	if !NewRect(0, 0, 10, -3).Empty() {
		t.Error("negative height rect should be empty")
	}
}
