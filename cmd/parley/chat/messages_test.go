package chat

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "hello", want: "hello"},
		{name: "crlf to lf", in: "a\r\nb", want: "a\nb"},
		{name: "bare cr to lf", in: "a\rb", want: "a\nb"},
		{name: "trailing spaces per line", in: "a  \nb\t", want: "a\nb"},
		{name: "outer blank lines removed", in: "\n\nbody\n\n", want: "body"},
		{name: "inner blank lines kept", in: "a\n\nb", want: "a\n\nb"},
		{name: "whitespace only becomes empty", in: "   \r\n\t  ", want: ""},
		{name: "empty stays empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeContent(tt.in))
		})
	}
}

func TestNormalizeMessagesDropsEmpty(t *testing.T) {
	now := time.Now()
	in := []Message{
		{Role: RoleUser, Content: "hi", Time: now},
		{Role: RoleAssistant, Content: "   \n  ", Time: now},
		{Role: RoleAssistant, Content: "hello", Time: now},
	}

	got := NormalizeMessages(in)
	want := []Message{
		{Role: RoleUser, Content: "hi", Time: now},
		{Role: RoleAssistant, Content: "hello", Time: now},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeMessagesMergesSameRole(t *testing.T) {
	now := time.Now()
	in := []Message{
		{Role: RoleAssistant, Content: "part one", Time: now},
		{Role: RoleAssistant, Content: "part two", Time: now.Add(time.Second)},
		{Role: RoleUser, Content: "ok", Time: now.Add(2 * time.Second)},
	}

	got := NormalizeMessages(in)
	assert.Len(t, got, 2)
	assert.Equal(t, "part one\n\npart two", got[0].Content)
	assert.Equal(t, now, got[0].Time, "merged block keeps the first timestamp")
	assert.Equal(t, RoleUser, got[1].Role)
}

func TestNormalizeMessagesDoesNotMutateInput(t *testing.T) {
	in := []Message{{Role: RoleUser, Content: "a  "}, {Role: RoleUser, Content: "b"}}
	_ = NormalizeMessages(in)
	assert.Equal(t, "a  ", in[0].Content)
}

func TestNormalizeMessagesEmpty(t *testing.T) {
	assert.Empty(t, NormalizeMessages(nil))
	assert.Empty(t, NormalizeMessages([]Message{{Role: RoleUser, Content: "  "}}))
}
