package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 80, 60),
			b:        NewRectF(40, 30, 80, 60),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 80, 60),
			b:        NewRectF(100, 0, 80, 60),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 80, 60),
			b:        NewRectF(0, 83, 80, 60),
			expected: false,
		},
		{
			name:     "touching horizontal edge (no overlap)",
			a:        NewRectF(0, 0, 80, 60),
			b:        NewRectF(80, 0, 80, 60),
			expected: false,
		},
		{
			name:     "touching vertical edge (no overlap)",
			a:        NewRectF(0, 0, 80, 60),
			b:        NewRectF(0, 60, 80, 60),
			expected: false,
		},
		{
			name:     "touching corner (no overlap)",
			a:        NewRectF(0, 0, 80, 60),
			b:        NewRectF(80, 60, 80, 60),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 200, 200),
			b:        NewRectF(50, 50, 10, 10),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 80, 60),
			b:        NewRectF(79.5, 59.5, 80, 60),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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

	f := NewRectF(200, 400, 80, 60)
	if f.Right() != 280 || f.Bottom() != 460 {
		t.Errorf("RectF edges = (%v, %v), expected (280, 460)", f.Right(), f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
