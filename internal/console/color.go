package console

import (
	"io"

	"github.com/fatih/color"
)

// ColorSink prints entries to w, coloured per level.
type ColorSink struct {
	w      io.Writer
	colors map[Level]*color.Color
	stamp  *color.Color
}

// NewColorSink writes to w. Colour is disabled automatically when w is not a
// terminal (fatih/color honours NO_COLOR and TERM=dumb as well).
func NewColorSink(w io.Writer) *ColorSink {
	return &ColorSink{
		w: w,
		colors: map[Level]*color.Color{
			Info:   color.New(color.FgBlue),
			Dim:    color.New(color.FgHiBlack),
			OK:     color.New(color.FgGreen),
			Warn:   color.New(color.FgYellow),
			Err:    color.New(color.FgRed),
			Accent: color.New(color.FgMagenta),
		},
		stamp: color.New(color.FgHiBlack),
	}
}

// Write implements Sink.
func (s *ColorSink) Write(e Entry) {
	c, ok := s.colors[e.Level]
	if !ok {
		c = s.colors[Info]
	}
	_, _ = s.stamp.Fprint(s.w, e.Stamp())
	_, _ = c.Fprintln(s.w, e.Level.Icon()+e.Msg)
}
