package text

import "testing"

func TestRectDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rect       Rect
		wantWidth  float64
		wantHeight float64
	}{
		{"origin box", Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}, 10, 5},
		{"above baseline", Rect{MinX: 1, MinY: -12, MaxX: 9, MaxY: 0}, 8, 12},
		{"descender box", Rect{MinX: 0, MinY: -10, MaxX: 6, MaxY: 3}, 6, 13},
		{"zero", Rect{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %v, want %v", got, tt.wantWidth)
			}
			if got := tt.rect.Height(); got != tt.wantHeight {
				t.Errorf("Height() = %v, want %v", got, tt.wantHeight)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"normal", Rect{MinX: 0, MinY: -8, MaxX: 5, MaxY: 2}, false},
		{"zero width", Rect{MinX: 3, MinY: 0, MaxX: 3, MaxY: 4}, true},
		{"zero height", Rect{MinX: 0, MinY: 2, MaxX: 4, MaxY: 2}, true},
		{"inverted", Rect{MinX: 5, MinY: 5, MaxX: 1, MaxY: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}
