// Package term presents frames in a terminal using Bubble Tea.
package term

import (
	"strings"

	"lifebuf/internal/render"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// Screen is an app.Sink that keeps the last packed frame and renders it with
// half-block characters, two pixel rows per terminal row.
type Screen struct {
	w, h   int
	pixels []uint32
	styles map[[2]uint32]lipgloss.Style
}

// NewScreen returns an empty screen.
func NewScreen() *Screen {
	return &Screen{styles: map[[2]uint32]lipgloss.Style{}}
}

// Present copies the frame.
func (s *Screen) Present(pixels []uint32, w, h int) error {
	s.w, s.h = w, h
	s.pixels = append(s.pixels[:0], pixels...)
	return nil
}

// Render draws the frame cropped to cols x rows terminal cells. A
// non-positive limit disables cropping on that axis.
func (s *Screen) Render(cols, rows int) string {
	if len(s.pixels) == 0 {
		return ""
	}
	w := s.w
	if cols > 0 && cols < w {
		w = cols
	}
	lineCount := (s.h + 1) / 2
	if rows > 0 && rows < lineCount {
		lineCount = rows
	}

	var sb strings.Builder
	for line := 0; line < lineCount; line++ {
		top := line * 2
		bottom := top + 1
		runStart := 0
		var runKey [2]uint32
		for x := 0; x < w; x++ {
			key := s.pairAt(x, top, bottom)
			if x == 0 {
				runKey = key
				continue
			}
			if key != runKey {
				sb.WriteString(s.style(runKey).Render(strings.Repeat(halfBlock, x-runStart)))
				runStart = x
				runKey = key
			}
		}
		sb.WriteString(s.style(runKey).Render(strings.Repeat(halfBlock, w-runStart)))
		if line < lineCount-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (s *Screen) pairAt(x, top, bottom int) [2]uint32 {
	t := s.pixels[top*s.w+x]
	// An odd final row is padded with its own color so the block looks solid.
	b := t
	if bottom < s.h {
		b = s.pixels[bottom*s.w+x]
	}
	return [2]uint32{t, b}
}

func (s *Screen) style(key [2]uint32) lipgloss.Style {
	if st, ok := s.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(render.Unpack(key[0]).Hex())).
		Background(lipgloss.Color(render.Unpack(key[1]).Hex()))
	s.styles[key] = st
	return st
}
