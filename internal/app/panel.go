package app

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth  = 300
	panelMargin = 10
	rowHeight   = 22
)

// Panel is the F1 debug overlay. Slider values are read back by the app
// after each Draw.
type Panel struct {
	Visible   bool
	Exposure  float32
	BumpScale float32
}

func (p *Panel) Toggle() {
	p.Visible = !p.Visible
}

func (p *Panel) applyStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(rl.NewColor(24, 24, 32, 230)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(200, 200, 210, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

// Draw renders the panel with one status line per entry. It reports
// whether a slider moved.
func (p *Panel) Draw(status []string) bool {
	rl.DrawFPS(panelMargin, panelMargin)
	if !p.Visible {
		rl.DrawText("F1: debug panel", panelMargin, panelMargin+20, 16, rl.LightGray)
		return false
	}

	x := float32(panelMargin)
	y := float32(panelMargin + 24)
	height := float32(rowHeight*(len(status)+4) + panelMargin)
	gui.Panel(rl.Rectangle{X: x, Y: y, Width: panelWidth, Height: height}, "Showroom")
	y += rowHeight + 4

	labelW := float32(80)
	sliderW := panelWidth - labelW - 60
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: x + labelW, Y: y, Width: sliderW, Height: rowHeight - 4}
		y += rowHeight
		return r
	}

	exposure, bump := p.Exposure, p.BumpScale
	p.Exposure = gui.Slider(row(), "Exposure", fmt.Sprintf("%.2f", p.Exposure), p.Exposure, 0, 5)
	p.BumpScale = gui.Slider(row(), "Bump", fmt.Sprintf("%.2f", p.BumpScale), p.BumpScale, 0, 4)

	for _, line := range status {
		gui.Label(rl.Rectangle{X: x + 8, Y: y, Width: panelWidth - 16, Height: rowHeight}, line)
		y += rowHeight
	}
	return exposure != p.Exposure || bump != p.BumpScale
}
