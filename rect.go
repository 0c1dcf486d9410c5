package pix

import (
	"fmt"
	"math"

	"github.com/gogpu/pix/surface"
)

// Rect is an axis-aligned rectangle composed of four Line edges. The
// corners and edges are derived once at construction; Display redraws
// all four edges, patches the corner the edges leave open, and
// optionally fills the interior.
type Rect struct {
	TopLeft     Coordinate
	TopRight    Coordinate
	BottomLeft  Coordinate
	BottomRight Coordinate

	Width       int
	Height      int
	BorderColor Color
	BorderWidth int
	FillColor   Color

	dst  surface.Surface
	fill bool

	top, bottom, left, right *Line
}

// NewRect creates a Rect with its top-left corner at topLeft. Width,
// height and the border width must be positive integers and dst must
// not be nil, otherwise NewRect returns a *ValidationError. Defaults:
// black border of width 1, no fill; see the RectOption functions.
func NewRect(dst surface.Surface, topLeft Coordinate, width, height int, opts ...RectOption) (*Rect, error) {
	if dst == nil {
		return nil, invalidf("rect", "destination surface must not be nil")
	}
	if width < 1 {
		return nil, invalidf("rect", "width must be a positive integer, got %d", width)
	}
	if height < 1 {
		return nil, invalidf("rect", "height must be a positive integer, got %d", height)
	}
	o := defaultRectOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.borderWidth < 1 {
		return nil, invalidf("rect", "border width must be a positive integer, got %d", o.borderWidth)
	}

	r := &Rect{
		TopLeft:     topLeft,
		TopRight:    topLeft.Add(float64(width), 0),
		BottomLeft:  topLeft.Add(0, float64(height)),
		BottomRight: topLeft.Add(float64(width), float64(height)),
		Width:       width,
		Height:      height,
		BorderColor: o.borderColor,
		BorderWidth: o.borderWidth,
		FillColor:   o.fillColor,
		dst:         dst,
		fill:        o.fill,
	}

	var err error
	edge := func(a, b Coordinate) *Line {
		ln, e := NewLine(dst, a, b, WithColor(o.borderColor), WithWidth(o.borderWidth))
		if e != nil && err == nil {
			err = e
		}
		return ln
	}
	r.top = edge(r.TopLeft, r.TopRight)
	r.bottom = edge(r.BottomLeft, r.BottomRight)
	r.left = edge(r.TopLeft, r.BottomLeft)
	r.right = edge(r.TopRight, r.BottomRight)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Display draws the four border edges, patches the bottom-right corner
// where the two terminal edges stop short of meeting, and fills the
// interior when the fill flag is set. The interior fill is inset by
// the border width from the top-left corner only, matching where the
// border overlaps the nominal rectangle.
func (r *Rect) Display() {
	r.top.Display()
	r.bottom.Display()
	r.left.Display()
	r.right.Display()

	bw := r.BorderWidth
	brx := int(math.Round(r.BottomRight.X))
	bry := int(math.Round(r.BottomRight.Y))
	r.dst.FillRect(brx, bry, bw, bw, r.BorderColor.Packed())

	if r.fill {
		tlx := int(math.Round(r.TopLeft.X))
		tly := int(math.Round(r.TopLeft.Y))
		r.dst.FillRect(tlx+bw, tly+bw, r.Width-bw, r.Height-bw, r.FillColor.Packed())
	}
}

// ChangeFill toggles interior filling. The new state takes effect on
// the next Display.
func (r *Rect) ChangeFill() {
	r.fill = !r.fill
}

// Filled reports whether the interior will be filled on Display.
func (r *Rect) Filled() bool {
	return r.fill
}

func (r *Rect) String() string {
	return fmt.Sprintf("Rect(%s, %d, %d)", r.TopLeft, r.Width, r.Height)
}
