// Package bugreport builds prefilled GitHub issue URLs so users can file a
// bug without leaving the terminal. The URL carries version and platform
// details plus a truncated error excerpt; nothing is sent anywhere until the
// user opens it.
package bugreport

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// Repo is the issue tracker the report URL points at.
const Repo = "https://github.com/parley-cli/parley"

// Browsers reject very long URLs; keep the whole thing comfortably under the
// common 8K limit by capping the embedded error excerpt.
const maxErrorChars = 2000

// Report holds the fields embedded in a bug-report URL.
type Report struct {
	ID       string // Correlation ID echoed in the issue body
	Title    string
	Version  string
	Terminal string // $TERM at the time of the report
	Error    string // Error text or panic excerpt, may be empty
	Repo     string // Issue tracker override; empty means Repo constant
}

// New creates a report with a fresh correlation ID.
func New(title, version, terminal string, err error) Report {
	r := Report{
		ID:       uuid.NewString(),
		Title:    title,
		Version:  version,
		Terminal: terminal,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// URL returns the GitHub new-issue URL with title and body prefilled.
func (r Report) URL() string {
	repo := strings.TrimSuffix(r.Repo, "/")
	if repo == "" {
		repo = Repo
	}
	q := url.Values{}
	q.Set("title", r.title())
	q.Set("body", r.body())
	q.Set("labels", "bug")
	return repo + "/issues/new?" + q.Encode()
}

func (r Report) title() string {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = "Bug report"
	}
	return title
}

func (r Report) body() string {
	var sb strings.Builder

	sb.WriteString("**Describe the bug**\n\n\n\n")
	sb.WriteString("**Environment**\n")
	fmt.Fprintf(&sb, "- Version: %s\n", orUnknown(r.Version))
	fmt.Fprintf(&sb, "- OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&sb, "- Terminal: %s\n", orUnknown(r.Terminal))
	fmt.Fprintf(&sb, "- Report ID: %s\n", r.ID)

	if r.Error != "" {
		sb.WriteString("\n**Error output**\n```\n")
		sb.WriteString(Truncate(r.Error, maxErrorChars))
		sb.WriteString("\n```\n")
	}

	return sb.String()
}

// Truncate caps s at max bytes, appending a marker when content was cut.
// Truncation happens on a rune boundary so the excerpt stays valid UTF-8.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n… (truncated)"
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
