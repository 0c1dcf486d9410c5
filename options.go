package pix

// LineOption configures a Line during construction.
//
// Example:
//
//	// Default: opaque black, 1 pixel wide
//	line, err := pix.NewLine(s, start, end)
//
//	// 5 pixels of red
//	line, err := pix.NewLine(s, start, end, pix.WithColor(pix.Red), pix.WithWidth(5))
type LineOption func(*lineOptions)

// lineOptions holds optional configuration for Line creation.
type lineOptions struct {
	color Color
	width int
}

func defaultLineOptions() lineOptions {
	return lineOptions{color: Black, width: 1}
}

// WithColor sets the line color. The default is opaque black.
func WithColor(c Color) LineOption {
	return func(o *lineOptions) {
		o.color = c
	}
}

// WithWidth sets the stroke width in pixels. The default is 1.
// NewLine rejects widths below 1.
func WithWidth(w int) LineOption {
	return func(o *lineOptions) {
		o.width = w
	}
}

// RectOption configures a Rect during construction.
type RectOption func(*rectOptions)

// rectOptions holds optional configuration for Rect creation.
type rectOptions struct {
	borderColor Color
	borderWidth int
	fill        bool
	fillColor   Color
}

func defaultRectOptions() rectOptions {
	return rectOptions{borderColor: Black, borderWidth: 1, fillColor: Black}
}

// WithBorderColor sets the border color. The default is opaque black.
func WithBorderColor(c Color) RectOption {
	return func(o *rectOptions) {
		o.borderColor = c
	}
}

// WithBorderWidth sets the border stroke width in pixels. The default
// is 1. NewRect rejects widths below 1.
func WithBorderWidth(w int) RectOption {
	return func(o *rectOptions) {
		o.borderWidth = w
	}
}

// WithFill enables interior filling with the given color.
func WithFill(c Color) RectOption {
	return func(o *rectOptions) {
		o.fill = true
		o.fillColor = c
	}
}

// WithFillColor sets the interior color without enabling filling.
// Useful when the fill will be switched on later via ChangeFill.
func WithFillColor(c Color) RectOption {
	return func(o *rectOptions) {
		o.fillColor = c
	}
}
