package options

import (
	"fmt"

	"github.com/dperique/invaders/internal/core"
)

// Saver persists options edited in the menu. The platform layer backs it
// with the user options file.
type Saver interface {
	SaveOptions(Options) error
}

// Menu fields, in display order.
const (
	fieldMissileSpeed = iota
	fieldLives
	fieldSpeedIncrement
	fieldCount
)

// Menu is the modal options editor. It owns a working copy of the options
// while open; the game it overlays is frozen by the platform layer. Closing
// the menu persists the working copy through the Saver.
type Menu struct {
	opts     Options
	selected int
	saver    Saver
	saveErr  error
}

// NewMenu creates a menu editing the given options. saver may be nil, in
// which case closing the menu discards nothing but persists nothing either.
func NewMenu(opts Options, saver Saver) *Menu {
	return &Menu{opts: opts.Clamped(), saver: saver}
}

// Options returns the current working copy.
func (m *Menu) Options() Options {
	return m.opts
}

// Selected returns the index of the highlighted field.
func (m *Menu) Selected() int {
	return m.selected
}

// SaveErr returns the error from the save triggered by the closing input,
// or nil. A failed save never blocks closing.
func (m *Menu) SaveErr() error {
	return m.saveErr
}

// Handle applies one frame of input to the menu. It returns true when the
// menu is done: confirm and escape both persist the working copy and close.
// Selection wraps around; value adjustments clamp at their bounds. Any
// other input is ignored.
func (m *Menu) Handle(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionConfirm) || in.Has(core.ActionBack):
		if m.saver != nil {
			m.saveErr = m.saver.SaveOptions(m.opts)
		}
		return true
	case in.Has(core.ActionUp):
		m.selected = (m.selected + fieldCount - 1) % fieldCount
	case in.Has(core.ActionDown):
		m.selected = (m.selected + 1) % fieldCount
	case in.Has(core.ActionLeft):
		m.adjust(-1)
	case in.Has(core.ActionRight):
		m.adjust(+1)
	}
	return false
}

// adjust steps the selected field by delta increments, clamping at the
// field's bounds.
func (m *Menu) adjust(delta int) {
	switch m.selected {
	case fieldMissileSpeed:
		m.opts.MissileSpeed = core.ClampF(m.opts.MissileSpeed+float64(delta), MinMissileSpeed, MaxMissileSpeed)
	case fieldLives:
		m.opts.Lives = core.Clamp(m.opts.Lives+delta, MinLives, MaxLives)
	case fieldSpeedIncrement:
		v := roundStep(m.opts.InvaderSpeedIncrement + float64(delta)*0.1)
		m.opts.InvaderSpeedIncrement = core.ClampF(v, MinSpeedIncrement, MaxSpeedIncrement)
	}
}

// Render draws the menu panel centered on the screen, over whatever the
// game drew underneath.
func (m *Menu) Render(s *core.Screen) {
	const panelW, panelH = 42, 10
	px := (s.Width() - panelW) / 2
	py := (s.Height() - panelH) / 2

	s.DrawBox(core.NewRect(px, py, panelW, panelH), core.ColorCyan)
	s.DrawTextCentered(py+1, "OPTIONS", core.ColorBrightYellow)

	rows := []struct {
		label string
		value string
	}{
		{"Missile Speed", fmt.Sprintf("%.1f", m.opts.MissileSpeed)},
		{"Lives", fmt.Sprintf("%d", m.opts.Lives)},
		{"Speed Increment", fmt.Sprintf("%.1f", m.opts.InvaderSpeedIncrement)},
	}
	for i, row := range rows {
		y := py + 3 + i
		color := core.ColorWhite
		if i == m.selected {
			color = core.ColorBrightYellow
			s.DrawTextColor(px+2, y, "▸", core.ColorBrightYellow)
		}
		s.DrawTextColor(px+4, y, row.label, color)
		s.DrawTextColor(px+panelW-6-len(row.value), y, "◀ "+row.value, color)
		s.DrawTextColor(px+panelW-3, y, "▶", color)
	}

	s.DrawTextColor(px+4, py+panelH-3, "↑/↓ select   ←/→ adjust", core.ColorGray)
	s.DrawTextColor(px+4, py+panelH-2, "enter/esc save and close", core.ColorGray)
}
