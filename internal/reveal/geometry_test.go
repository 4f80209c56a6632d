package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollTarget(t *testing.T) {
	// Cards centered at x=100 and x=260, so the step is 160.
	twoCards := []Rect{{Left: 60, Width: 80}, {Left: 220, Width: 80}}

	tests := []struct {
		name   string
		layout Layout
		index  int
		want   float64
	}{
		{
			name:   "centers winning card",
			layout: Layout{Cards: twoCards, ViewportWidth: 1280},
			index:  90,
			want:   -((100 + 160*90) - 640.0),
		},
		{
			name:   "index zero",
			layout: Layout{Cards: twoCards, ViewportWidth: 200},
			index:  0,
			want:   0,
		},
		{
			name:   "extra cards are ignored",
			layout: Layout{Cards: append(twoCards, Rect{Left: 9999, Width: 1}), ViewportWidth: 1280},
			index:  90,
			want:   -((100 + 160*90) - 640.0),
		},
		{name: "no cards", layout: Layout{ViewportWidth: 1280}, index: 90, want: 0},
		{name: "one card", layout: Layout{Cards: twoCards[:1], ViewportWidth: 1280}, index: 90, want: 0},
		{name: "unmeasured viewport", layout: Layout{Cards: twoCards}, index: 90, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScrollTarget(tt.layout, tt.index), 1e-9)
		})
	}
}
