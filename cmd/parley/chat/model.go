// Package chat provides the interactive TUI chat surface for parley: the
// Bubble Tea model, command registry and dispatch, transcript rendering,
// and the palette overlay.
package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"parley/cmd/parley/ui"
	"parley/internal/config"
	"parley/internal/logging"
	"parley/internal/notify"
	"parley/internal/tokens"
	"parley/internal/version"
)

// Responder produces assistant replies. The chat surface treats it as an
// external collaborator; replies arrive asynchronously as messages.
type Responder interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

// ViewMode determines which component currently owns the keyboard.
type ViewMode int

const (
	ChatView ViewMode = iota
	PaletteView
)

// Model is the main model for the interactive chat interface.
type Model struct {
	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	palette  *ui.Palette
	styles   ui.Styles
	renderer *glamour.TermRenderer

	viewMode ViewMode

	// Collaborators
	cfg       *config.Config
	cfgPath   string
	notifier  *notify.Notifier
	responder Responder
	log       *logging.Logger

	// Transcript state
	history   []Message
	budget    *tokens.Budget
	isLoading bool

	// Terminal state
	width  int
	height int
	ready  bool
	err    error
}

// New creates the chat model. The notifier may be nil when stdout is not a
// terminal; responder must not be nil.
func New(cfg *config.Config, cfgPath string, notifier *notify.Notifier, responder Responder) Model {
	ta := textarea.New()
	ta.Placeholder = "Message parley ( / for commands )"
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))

	palette := ui.NewPalette(styles, "Commands", cfg.UI.PaletteHeight)
	palette.SetCandidates(PaletteCandidates())

	return Model{
		textarea:  ta,
		spinner:   sp,
		palette:   palette,
		styles:    styles,
		cfg:       cfg,
		cfgPath:   cfgPath,
		notifier:  notifier,
		responder: responder,
		log:       logging.Get(logging.CategoryUI),
		budget:    tokens.NewBudget(cfg.UI.TokenBudget),
		history: []Message{{
			Role:    RoleAssistant,
			Content: "Hi! I'm **parley** " + version.Version + ". Type a message, or press Ctrl+K for commands.",
			Time:    time.Now(),
		}},
	}
}

// Init starts the cursor blink and spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// applyConfig applies a hot-reloaded config to the running UI.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.styles = ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	m.palette = ui.NewPalette(m.styles, "Commands", cfg.UI.PaletteHeight)
	m.palette.SetCandidates(PaletteCandidates())
	m.budget.Max = cfg.UI.TokenBudget
	if m.notifier != nil {
		m.notifier.SetEnabled(cfg.Notifications.Enabled)
	}
	logging.ReloadConfig(cfg.Logging)
	m.initRenderer()
	m.refreshViewport()
}

// initRenderer builds the glamour renderer for the current width. Glamour
// needs the wrap width up front, so this reruns on resize.
func (m *Model) initRenderer() {
	if !m.cfg.UI.Markdown {
		m.renderer = nil
		return
	}
	style := "light"
	if m.styles.Theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(m.contentWidth()),
	)
	if err != nil {
		m.log.Warn("glamour init failed: %v", err)
		m.renderer = nil
		return
	}
	m.renderer = r
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}
