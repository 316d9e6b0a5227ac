package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"parley/cmd/parley/ui"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing…"
	}

	var sb strings.Builder
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.textarea.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusBar())

	base := sb.String()
	if m.viewMode == PaletteView {
		return ui.Compose(base, m.palette.View(), m.width, m.height, ui.PlaceCenter)
	}
	return base
}

// refreshViewport re-renders the transcript into the viewport and scrolls to
// the newest message.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m Model) renderHistory() string {
	var sb strings.Builder

	for _, msg := range NormalizeMessages(m.history) {
		switch msg.Role {
		case RoleUser:
			userStyle := m.styles.Bold.Foreground(m.styles.Theme.Primary)
			sb.WriteString(userStyle.Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.Content))
			sb.WriteString("\n\n")

		case RoleSystem:
			sb.WriteString(m.styles.Muted.Render(msg.Content))
			sb.WriteString("\n\n")

		default: // assistant
			assistantStyle := m.styles.Bold.Foreground(m.styles.Theme.Accent)
			sb.WriteString(assistantStyle.Render("parley") + "\n")
			sb.WriteString(m.safeRenderMarkdown(msg.Content))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery. Glamour panics on
// some malformed input; a plain-text transcript beats a dead UI.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

func (m Model) statusBar() string {
	left := "Ctrl+K commands · Enter send"
	if m.isLoading {
		left = m.spinner.View() + " thinking…"
	}

	right := fmt.Sprintf("~%d tokens", m.budget.Used())
	if m.budget.Exceeded() {
		right = m.styles.Error.Render(right + " (over budget)")
	}

	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}
