//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifebuf/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 6
	headerBaseline = 13
	lineSpacing    = 15
	panelWidth     = 150
)

// HUD draws a translucent panel listing the sim's parameter snapshot.
type HUD struct {
	sim      core.Sim
	hidden   bool
	snapshot core.ParameterSnapshot
	panel    *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.hidden = !h.hidden }

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update() {
	if h.hidden {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{Groups: []core.ParameterGroup{{
			Name:   "Run",
			Params: []core.Parameter{core.IntParam("generation", "Generation", h.sim.Generation())},
		}}}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the panel in the top-left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h.hidden {
		return
	}
	lines := h.lines(paused)
	height := panelPadding*2 + headerBaseline + lineSpacing*(len(lines)-1)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for i, line := range lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			clr = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, clr)
		y += lineSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) lines(paused bool) []string {
	title := h.sim.Name()
	if paused {
		title += " (paused)"
	}
	lines := []string{title}
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}
