package chat

import (
	"strings"
	"time"
)

// Role identifies who produced a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single transcript entry.
type Message struct {
	Role    Role
	Content string
	Time    time.Time
}

// NormalizeContent canonicalizes message text for display: CRLF to LF,
// trailing whitespace stripped per line, and outer blank lines removed.
func NormalizeContent(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// NormalizeMessages prepares a transcript for rendering: content is
// normalized, empty messages are dropped, and consecutive same-role messages
// are merged so interrupted streams render as one block. The input slice is
// not modified.
func NormalizeMessages(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		content := NormalizeContent(m.Content)
		if content == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Role == m.Role {
			out[n-1].Content += "\n\n" + content
			continue
		}
		m.Content = content
		out = append(out, m)
	}
	return out
}
