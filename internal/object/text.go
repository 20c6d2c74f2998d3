package object

import "strconv"

// Anchor says which point of the text X and Y refer to.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

// Text is a HUD string placed in logical screen units.
type Text struct {
	X      float64
	Y      float64
	Anchor Anchor
	Value  string
}

// ScoreText renders the score line.
func ScoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

// PlaceCentered returns t centred on (x, y).
func (t Text) PlaceCentered(x, y float64) Text {
	t.X, t.Y, t.Anchor = x, y, AnchorCenter
	return t
}
