package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
}

// NewButton creates a button.
func NewButton(x, y, w, h int, label string, onClick func()) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, OnClick: onClick}
}

// Update handles hover and click. Returns true if the click was consumed.
func (b *Button) Update(input *InputHandler) bool {
	b.hovered = input.IsInBounds(b.X, b.Y, b.W, b.H)
	if b.hovered && input.IsLeftJustPressed() {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image, theme *Theme) {
	bg := theme.ButtonColor
	if b.hovered {
		bg = theme.ButtonHover
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, color.RGBA{90, 94, 102, 255}, false)

	face := GetRegularFace()
	if face == nil {
		return
	}
	w, h := MeasureText(b.Label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.X)+(float64(b.W)-w)/2, float64(b.Y)+(float64(b.H)-h)/2)
	op.ColorScale.ScaleWithColor(theme.TextColor)
	text.Draw(screen, b.Label, face, op)
}

// drawLabel draws a single line of text at the given position.
func drawLabel(screen *ebiten.Image, s string, x, y int, face *text.GoTextFace, c color.RGBA) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
