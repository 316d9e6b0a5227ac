package chat

import (
	"strings"

	"parley/internal/options"
)

// CommandCategory represents a logical grouping of commands.
type CommandCategory int

const (
	CategoryCore    CommandCategory = iota // Essential commands everyone should know
	CategorySession                        // Transcript and session operations
	CategorySystem                         // Configuration and diagnostics
)

// String returns the category name.
func (c CommandCategory) String() string {
	names := []string{"Core", "Session", "System"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// CommandInfo holds metadata about a slash command.
type CommandInfo struct {
	Name        string          // Primary command name (e.g., "/help")
	Aliases     []string        // Alternative names (e.g., ["/h", "/?"])
	Description string          // Short description shown in the palette
	Usage       string          // Example usage
	Category    CommandCategory // Which category this belongs to
}

// CommandRegistry holds all registered commands with their metadata.
var CommandRegistry = []CommandInfo{
	{
		Name:        "/help",
		Aliases:     []string{"/h", "/?"},
		Description: "Show help and command reference",
		Usage:       "/help",
		Category:    CategoryCore,
	},
	{
		Name:        "/quit",
		Aliases:     []string{"/exit", "/q"},
		Description: "Exit parley",
		Usage:       "/quit",
		Category:    CategoryCore,
	},
	{
		Name:        "/clear",
		Description: "Clear the transcript",
		Usage:       "/clear",
		Category:    CategorySession,
	},
	{
		Name:        "/usage",
		Description: "Show estimated token usage",
		Usage:       "/usage",
		Category:    CategorySession,
	},
	{
		Name:        "/theme",
		Description: "Switch theme (auto, light, dark)",
		Usage:       "/theme [light|dark|auto]",
		Category:    CategorySystem,
	},
	{
		Name:        "/notify",
		Description: "Toggle desktop notifications",
		Usage:       "/notify [on|off]",
		Category:    CategorySystem,
	},
	{
		Name:        "/bug",
		Aliases:     []string{"/report"},
		Description: "File a bug report on GitHub",
		Usage:       "/bug [title]",
		Category:    CategorySystem,
	},
}

// FindCommand looks up a command by name or alias.
func FindCommand(name string) *CommandInfo {
	for i := range CommandRegistry {
		cmd := &CommandRegistry[i]
		if cmd.Name == name {
			return cmd
		}
		for _, alias := range cmd.Aliases {
			if alias == name {
				return cmd
			}
		}
	}
	return nil
}

// CommandsByCategory returns commands filtered by category.
func CommandsByCategory(category CommandCategory) []CommandInfo {
	var result []CommandInfo
	for _, cmd := range CommandRegistry {
		if cmd.Category == category {
			result = append(result, cmd)
		}
	}
	return result
}

// PaletteCandidates converts the registry to palette options. The command
// name is the unique key; the label carries name and description for fuzzy
// matching on either.
func PaletteCandidates() []options.Option {
	opts := make([]options.Option, 0, len(CommandRegistry))
	for _, cmd := range CommandRegistry {
		opts = append(opts, options.Option{
			Label: cmd.Name + "  " + cmd.Description,
			Value: cmd.Name,
		})
	}
	return opts
}

// ParseCommand splits a slash-command line into its name and argument rest.
// Returns ok=false for lines that are not commands.
func ParseCommand(input string) (name, rest string, ok bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", "", false
	}
	name, rest, _ = strings.Cut(input, " ")
	return name, strings.TrimSpace(rest), true
}
