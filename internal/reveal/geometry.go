package reveal

// Rect is the horizontal extent of a rendered card, in viewport pixels.
type Rect struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// Center returns the horizontal midpoint of r.
func (r Rect) Center() float64 {
	return r.Left + r.Width/2
}

// Layout is a live measurement reported by the renderer.
// Only the first two cards are needed; spacing is assumed uniform.
type Layout struct {
	Cards         []Rect  `json:"cards"`
	ViewportWidth float64 `json:"viewportWidth"`
}

// ScrollTarget returns the horizontal translation that centers the card at index
// in the viewport. Fewer than two measured cards or an unmeasured viewport give 0.
func ScrollTarget(layout Layout, index int) float64 {
	if len(layout.Cards) < 2 || layout.ViewportWidth <= 0 {
		return 0
	}

	first := layout.Cards[0].Center()
	step := layout.Cards[1].Center() - first
	target := first + step*float64(index)
	return -(target - layout.ViewportWidth/2)
}
