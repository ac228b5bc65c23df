package options

import (
	"errors"
	"strings"
	"testing"

	"github.com/dperique/invaders/internal/core"
)

// recordingSaver captures the options passed to SaveOptions.
type recordingSaver struct {
	saved    []Options
	failWith error
}

func (r *recordingSaver) SaveOptions(o Options) error {
	r.saved = append(r.saved, o)
	return r.failWith
}

func press(a core.Action) core.InputFrame {
	frame := core.NewInputFrame()
	frame.Set(a)
	return frame
}

func TestMenuSelectionWrapsAround(t *testing.T) {
	m := NewMenu(Default(), nil)

	if m.Selected() != 0 {
		t.Fatalf("initial selection = %d, expected 0", m.Selected())
	}

	// Down cycles through every field and wraps back to the first.
	for i := 1; i <= fieldCount; i++ {
		m.Handle(press(core.ActionDown))
		expected := i % fieldCount
		if m.Selected() != expected {
			t.Fatalf("after %d downs, selection = %d, expected %d", i, m.Selected(), expected)
		}
	}

	// Up from the first field wraps to the last.
	m.Handle(press(core.ActionUp))
	if m.Selected() != fieldCount-1 {
		t.Errorf("up from first field should wrap to %d, got %d", fieldCount-1, m.Selected())
	}
}

func TestMenuAdjustMissileSpeed(t *testing.T) {
	m := NewMenu(Default(), nil)

	m.Handle(press(core.ActionRight))
	if got := m.Options().MissileSpeed; got != 11.0 {
		t.Errorf("after right, MissileSpeed = %v, expected 11.0", got)
	}
	m.Handle(press(core.ActionLeft))
	m.Handle(press(core.ActionLeft))
	if got := m.Options().MissileSpeed; got != 9.0 {
		t.Errorf("after two lefts, MissileSpeed = %v, expected 9.0", got)
	}
}

func TestMenuAdjustClampsAtBounds(t *testing.T) {
	m := NewMenu(Default(), nil)

	// Select the lives field and push past the maximum: 3 -> 4 -> 5,
	// then further presses stay at 5.
	m.Handle(press(core.ActionDown))
	for i := 0; i < 3; i++ {
		m.Handle(press(core.ActionRight))
	}
	if got := m.Options().Lives; got != MaxLives {
		t.Errorf("Lives = %d, expected clamp at %d", got, MaxLives)
	}

	// And past the minimum.
	for i := 0; i < 10; i++ {
		m.Handle(press(core.ActionLeft))
	}
	if got := m.Options().Lives; got != MinLives {
		t.Errorf("Lives = %d, expected clamp at %d", got, MinLives)
	}
}

func TestMenuAdjustSpeedIncrementSteps(t *testing.T) {
	m := NewMenu(Default(), nil)

	m.Handle(press(core.ActionDown))
	m.Handle(press(core.ActionDown))

	// 1.2 + 0.1 must land exactly on 1.3, not 1.3000000000000003.
	m.Handle(press(core.ActionRight))
	if got := m.Options().InvaderSpeedIncrement; got != 1.3 {
		t.Errorf("InvaderSpeedIncrement = %v, expected exactly 1.3", got)
	}

	// Pushing far past the maximum clamps at 2.0.
	for i := 0; i < 20; i++ {
		m.Handle(press(core.ActionRight))
	}
	if got := m.Options().InvaderSpeedIncrement; got != MaxSpeedIncrement {
		t.Errorf("InvaderSpeedIncrement = %v, expected clamp at %v", got, MaxSpeedIncrement)
	}
}

func TestMenuConfirmSavesAndCloses(t *testing.T) {
	saver := &recordingSaver{}
	m := NewMenu(Default(), saver)

	m.Handle(press(core.ActionRight)) // missile speed 10 -> 11

	if done := m.Handle(press(core.ActionConfirm)); !done {
		t.Fatal("confirm should close the menu")
	}
	if len(saver.saved) != 1 {
		t.Fatalf("expected exactly one save, got %d", len(saver.saved))
	}
	if saver.saved[0].MissileSpeed != 11.0 {
		t.Errorf("saved MissileSpeed = %v, expected the edited 11.0", saver.saved[0].MissileSpeed)
	}
	if m.SaveErr() != nil {
		t.Errorf("SaveErr = %v, expected nil", m.SaveErr())
	}
}

func TestMenuEscapeAlsoSavesAndCloses(t *testing.T) {
	saver := &recordingSaver{}
	m := NewMenu(Default(), saver)

	if done := m.Handle(press(core.ActionBack)); !done {
		t.Fatal("escape should close the menu")
	}
	if len(saver.saved) != 1 {
		t.Errorf("escape should persist the options, got %d saves", len(saver.saved))
	}
}

func TestMenuSaveFailureStillCloses(t *testing.T) {
	saver := &recordingSaver{failWith: errors.New("disk full")}
	m := NewMenu(Default(), saver)

	if done := m.Handle(press(core.ActionConfirm)); !done {
		t.Fatal("a failed save must not keep the menu open")
	}
	if m.SaveErr() == nil {
		t.Error("SaveErr should report the failed save")
	}
}

func TestMenuIgnoresUnrelatedInput(t *testing.T) {
	m := NewMenu(Default(), nil)
	before := m.Options()

	for _, a := range []core.Action{core.ActionShoot, core.ActionRestart, core.ActionPause, core.ActionNone} {
		if done := m.Handle(press(a)); done {
			t.Errorf("%v should not close the menu", a)
		}
	}
	if m.Options() != before {
		t.Errorf("unrelated input changed options: %+v", m.Options())
	}
	if m.Selected() != 0 {
		t.Errorf("unrelated input moved the selection to %d", m.Selected())
	}
}

func TestMenuNilSaverCloses(t *testing.T) {
	m := NewMenu(Default(), nil)
	if done := m.Handle(press(core.ActionConfirm)); !done {
		t.Error("menu without a saver should still close on confirm")
	}
}

func TestMenuStartsFromClampedOptions(t *testing.T) {
	m := NewMenu(Options{MissileSpeed: 99, Lives: 0, InvaderSpeedIncrement: 0}, nil)
	expected := Options{MissileSpeed: 20.0, Lives: 1, InvaderSpeedIncrement: 1.0}
	if m.Options() != expected {
		t.Errorf("menu should clamp its working copy, got %+v", m.Options())
	}
}

func TestMenuRenderShowsValues(t *testing.T) {
	s := core.NewScreen(80, 24)
	m := NewMenu(Default(), nil)
	m.Render(s)

	out := s.String()
	for _, want := range []string{"OPTIONS", "Missile Speed", "Lives", "Speed Increment", "10.0", "1.2"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered menu should contain %q", want)
		}
	}
}
