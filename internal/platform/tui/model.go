package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dperique/invaders/internal/core"
	"github.com/dperique/invaders/internal/invaders"
	"github.com/dperique/invaders/internal/options"
	"github.com/dperique/invaders/internal/storage"
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	game        *invaders.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	menu        *options.Menu // non-nil while the options menu is open
	optionsPath string
	quitting    bool
	runSaved    bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model wrapping its own game instance.
// optionsPath may be empty to use the default lookup chain.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, optionsPath string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := invaders.New()
	game.SetOptionsPath(optionsPath)
	if store != nil {
		game.SetScoreKeeper(NewStoreScoreKeeper(store))
	}

	return Model{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		inputFrame:  core.NewInputFrame(),
		optionsPath: optionsPath,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState fills in on the first tick

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// The options menu is modal: while it is open every action goes to it
	// and the simulation stays frozen.
	if m.menu != nil {
		if action != core.ActionNone {
			frame := core.NewInputFrame()
			frame.Set(action)
			if m.menu.Handle(frame) {
				m.menu = nil
			}
		}
		return m, nil
	}

	if action == core.ActionMenu {
		m.openMenu()
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// openMenu loads the current options from disk and opens the menu over
// the game. Saved changes apply from the next reset.
func (m *Model) openMenu() {
	opts, err := options.Load(m.optionsPath)
	if err != nil {
		opts = options.Default()
	}
	m.menu = options.NewMenu(opts, optionsSaver{path: m.optionsPath})
}

// handleResize processes window resize events. The simulation runs in a
// fixed logical space, so a resize only changes the projection.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.menu != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the finished run once per game over
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the session continues regardless
			m.store.SaveRun(invaders.GameID, m.gameState.Score, m.gameState.Wave)
		}
		m.runSaved = true
	}
	// A restart brings the state back to playing; arm the save again.
	if !m.gameState.GameOver {
		m.runSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// renderFrame draws the game and, when open, the options menu on top.
func (m *Model) renderFrame() {
	m.game.Render(m.screen)
	if m.menu != nil {
		m.menu.Render(m.screen)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderFrame()

	dir := filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", invaders.GameID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderFrame()
	return RenderScreen(m.screen)
}

// optionsSaver writes menu edits to the options file.
type optionsSaver struct {
	path string
}

func (s optionsSaver) SaveOptions(o options.Options) error {
	path := s.path
	if path == "" {
		path = options.DefaultPath()
	}
	return options.Save(path, o)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(store *storage.Store, cfg core.RuntimeConfig, optionsPath string) error {
	model := NewModel(store, cfg, optionsPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
