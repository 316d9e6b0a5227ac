package chat

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"parley/internal/bugreport"
	"parley/internal/config"
	"parley/internal/tokens"
	"parley/internal/version"
)

// assistantReplyMsg delivers an asynchronous responder result.
type assistantReplyMsg struct {
	content string
	err     error
}

// ConfigReloadedMsg is injected by the program runner when the config
// watcher delivers a new config.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

const replyTimeout = 120 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 2)

		vpHeight := msg.Height - m.textarea.Height() - 3
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.initRenderer()
		m.refreshViewport()
		return m, nil

	case tea.FocusMsg:
		if m.notifier != nil {
			m.notifier.SetFocused(true)
		}
		return m, nil

	case tea.BlurMsg:
		if m.notifier != nil {
			m.notifier.SetFocused(false)
		}
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Cfg)
		m.log.Info("config reloaded into UI")
		return m, nil

	case assistantReplyMsg:
		m.isLoading = false
		if msg.err != nil {
			m.err = msg.err
			m.history = append(m.history, Message{
				Role:    RoleSystem,
				Content: "Error: " + msg.err.Error(),
				Time:    time.Now(),
			})
		} else {
			m.budget.Add(msg.content)
			m.history = append(m.history, Message{
				Role:    RoleAssistant,
				Content: msg.content,
				Time:    time.Now(),
			})
			if m.notifier != nil {
				m.notifier.Notify("parley", "Reply ready")
			}
		}
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.viewMode == PaletteView {
			return m.updatePalette(msg)
		}
		return m.updateChat(msg)
	}

	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd)
}

// updatePalette handles keys while the command palette owns the keyboard.
func (m Model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.closePalette()
		return m, nil

	case tea.KeyUp, tea.KeyCtrlP:
		m.palette.MoveUp()
		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		m.palette.MoveDown()
		return m, nil

	case tea.KeyEnter:
		selected := m.palette.Selected()
		if selected == nil {
			return m, nil
		}
		m.closePalette()
		return m.executeCommand(selected.Value, "")

	case tea.KeyBackspace:
		if q := m.palette.Query(); q != "" {
			m.palette.SetQuery(q[:len(q)-1])
		} else {
			m.closePalette()
		}
		return m, nil

	case tea.KeySpace:
		m.palette.SetQuery(m.palette.Query() + " ")
		return m, nil

	case tea.KeyRunes:
		m.palette.SetQuery(m.palette.Query() + string(msg.Runes))
		return m, nil
	}
	return m, nil
}

// updateChat handles keys for the main chat surface.
func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key(msg) == m.cfg.Keys.Quit || msg.Type == tea.KeyCtrlC:
		m.log.Info("quit requested")
		return m, tea.Quit

	case key(msg) == m.cfg.Keys.OpenPalette:
		m.openPalette()
		return m, nil

	case key(msg) == "/" && strings.TrimSpace(m.textarea.Value()) == "":
		// A leading slash in an empty composer is a command, so jump
		// straight into the palette.
		m.openPalette()
		return m, nil

	case msg.Type == tea.KeyEnter && !msg.Alt:
		return m.submit()
	}

	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd)
}

func key(msg tea.KeyMsg) string {
	return msg.String()
}

func (m *Model) openPalette() {
	m.viewMode = PaletteView
	m.palette.SetQuery("")
	m.palette.SetCandidates(PaletteCandidates())
	m.log.Debug("palette opened")
}

func (m *Model) closePalette() {
	m.viewMode = ChatView
	m.palette.SetQuery("")
}

// submit sends the composed input: slash commands dispatch locally,
// everything else goes to the responder.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" || m.isLoading {
		return m, nil
	}
	m.textarea.Reset()

	if name, rest, ok := ParseCommand(input); ok {
		return m.executeCommand(name, rest)
	}

	m.budget.Add(input)
	m.history = append(m.history, Message{Role: RoleUser, Content: input, Time: time.Now()})
	m.isLoading = true
	m.err = nil
	m.refreshViewport()
	m.log.Debug("prompt submitted, %d estimated tokens used", m.budget.Used())
	return m, tea.Batch(m.replyCmd(input), m.spinner.Tick)
}

func (m Model) replyCmd(prompt string) tea.Cmd {
	responder := m.responder
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		content, err := responder.Reply(ctx, prompt)
		return assistantReplyMsg{content: content, err: err}
	}
}

// executeCommand dispatches a slash command from the composer or palette.
func (m Model) executeCommand(name, rest string) (tea.Model, tea.Cmd) {
	cmd := FindCommand(name)
	if cmd == nil {
		m.appendSystem(fmt.Sprintf("Unknown command %s. Try /help.", name))
		return m, nil
	}

	switch cmd.Name {
	case "/quit":
		return m, tea.Quit

	case "/clear":
		m.history = nil
		m.budget = tokens.NewBudget(m.cfg.UI.TokenBudget)
		m.err = nil
		m.refreshViewport()
		m.log.Info("transcript cleared")
		return m, nil

	case "/help":
		m.appendSystem(m.helpText())
		return m, nil

	case "/usage":
		contents := make([]string, 0, len(m.history))
		for _, msg := range m.history {
			contents = append(contents, msg.Content)
		}
		m.appendSystem(fmt.Sprintf("Estimated tokens: %d used, %d remaining (budget %d). Transcript: ~%d.",
			m.budget.Used(), m.budget.Remaining(), m.budget.Max, tokens.EstimateAll(contents...)))
		return m, nil

	case "/theme":
		return m.switchTheme(rest)

	case "/notify":
		return m.toggleNotify(rest)

	case "/bug":
		report := bugreport.New(rest, version.Version, envTerm(), m.err)
		report.Repo = m.cfg.BugReport.Repo
		m.appendSystem("Open this link to file a bug report:\n\n" + report.URL())
		return m, nil
	}

	m.appendSystem(fmt.Sprintf("Command %s is not wired yet.", cmd.Name))
	return m, nil
}

func (m *Model) switchTheme(name string) (tea.Model, tea.Cmd) {
	switch name {
	case "light", "dark", "auto":
	case "":
		// Cycle light -> dark -> light; auto resolves to the detected one.
		if m.styles.Theme.IsDark {
			name = "light"
		} else {
			name = "dark"
		}
	default:
		m.appendSystem(fmt.Sprintf("Unknown theme %q. Use light, dark, or auto.", name))
		return *m, nil
	}
	m.cfg.UI.Theme = name
	if err := m.cfg.Save(m.cfgPath); err != nil {
		m.log.Warn("failed to persist theme: %v", err)
	}
	m.applyConfig(m.cfg)
	m.appendSystem("Theme set to " + name + ".")
	return *m, nil
}

func (m *Model) toggleNotify(arg string) (tea.Model, tea.Cmd) {
	switch arg {
	case "on":
		m.cfg.Notifications.Enabled = true
	case "off":
		m.cfg.Notifications.Enabled = false
	case "":
		m.cfg.Notifications.Enabled = !m.cfg.Notifications.Enabled
	default:
		m.appendSystem(fmt.Sprintf("Unknown argument %q. Use on or off.", arg))
		return *m, nil
	}
	if m.notifier != nil {
		m.notifier.SetEnabled(m.cfg.Notifications.Enabled)
	}
	if err := m.cfg.Save(m.cfgPath); err != nil {
		m.log.Warn("failed to persist notification setting: %v", err)
	}
	state := "off"
	if m.cfg.Notifications.Enabled {
		state = "on"
	}
	m.appendSystem("Desktop notifications " + state + ".")
	return *m, nil
}

func (m *Model) appendSystem(content string) {
	m.history = append(m.history, Message{Role: RoleSystem, Content: content, Time: time.Now()})
	m.refreshViewport()
}

func envTerm() string {
	return os.Getenv("TERM")
}

func (m Model) helpText() string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, cat := range []CommandCategory{CategoryCore, CategorySession, CategorySystem} {
		sb.WriteString("\n" + cat.String() + "\n")
		for _, cmd := range CommandsByCategory(cat) {
			sb.WriteString(fmt.Sprintf("  %-24s %s\n", cmd.Usage, cmd.Description))
		}
	}
	sb.WriteString("\nCtrl+K opens the command palette.")
	return sb.String()
}
