// Package render draws a chess.Board as text.
package render

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Renderer writes a board to w.
type Renderer interface {
	Render(w io.Writer, b *chess.Board) error
}

// Option configures a renderer.
type Option func(*options)

type options struct {
	coordinates bool
}

// WithCoordinates adds rank numbers on the right and file letters below.
func WithCoordinates() Option {
	return func(o *options) {
		o.coordinates = true
	}
}

// Text renders eight lines of space separated glyphs, rank 8 first.
type Text struct {
	opts options
}

// NewText creates a plain text renderer.
func NewText(opts ...Option) *Text {
	t := &Text{}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// Render implements Renderer.
func (t *Text) Render(w io.Writer, b *chess.Board) error {
	return draw(w, b, t.opts, func(c chess.Cell) string { return string(c.Glyph()) })
}

// Colour renders like Text but paints White and Black pieces in
// different colours. Empty cells are dimmed.
type Colour struct {
	opts  options
	white *color.Color
	black *color.Color
	empty *color.Color
}

// NewColour creates a coloured renderer. Colour output follows
// color.NoColor unless forced with Force.
func NewColour(opts ...Option) *Colour {
	c := &Colour{
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgHiRed, color.Bold),
		empty: color.New(color.FgHiBlack),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Force enables colour output even when stdout is not a terminal.
func (c *Colour) Force() *Colour {
	c.white.EnableColor()
	c.black.EnableColor()
	c.empty.EnableColor()
	return c
}

// Render implements Renderer.
func (c *Colour) Render(w io.Writer, b *chess.Board) error {
	return draw(w, b, c.opts, func(cell chess.Cell) string {
		glyph := string(cell.Glyph())
		switch {
		case cell.IsEmpty():
			return c.empty.Sprint(glyph)
		case cell.Colour == chess.White:
			return c.white.Sprint(glyph)
		default:
			return c.black.Sprint(glyph)
		}
	})
}

func draw(w io.Writer, b *chess.Board, o options, glyph func(chess.Cell) string) error {
	var sb strings.Builder
	cells := b.Cells()
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(glyph(cells[chess.IndexOf(file, rank)]))
		}
		if o.coordinates {
			sb.WriteString("  ")
			sb.WriteByte(byte('8' - rank))
		}
		sb.WriteByte('\n')
	}
	if o.coordinates {
		sb.WriteString("\na b c d e f g h\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders b with the plain text renderer.
func String(b *chess.Board) string {
	var sb strings.Builder
	_ = NewText().Render(&sb, b)
	return sb.String()
}
