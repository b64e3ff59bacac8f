package todo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Todo
	}{
		{
			name:    "single annotation with line number",
			content: "# Notes\n\nsome text\n\nTODO:Pay rent@due(2024-01-01)\n",
			want:    []Todo{{Text: "Pay rent", Due: "2024-01-01", Line: 5}},
		},
		{
			name:    "surrounding text on the line",
			content: "- [ ] TODO: Call the bank @due(2024-06-01) before noon\n",
			want:    []Todo{{Text: "Call the bank", Due: "2024-06-01", Line: 1}},
		},
		{
			name:    "no due segment yields nothing",
			content: "TODO:Buy milk\n",
			want:    nil,
		},
		{
			name:    "malformed date shape yields nothing",
			content: "TODO:Buy milk@due(2024-1-1)\n",
			want:    nil,
		},
		{
			name:    "empty text discarded",
			content: "TODO: @due(2024-01-01)\n",
			want:    nil,
		},
		{
			name:    "two annotations on one line take the first",
			content: "TODO:first@due(2024-01-01) TODO:second@due(2024-02-02)\n",
			want:    []Todo{{Text: "first", Due: "2024-01-01", Line: 1}},
		},
		{
			name:    "multiple lines",
			content: "TODO:one@due(2024-01-01)\nplain line\nTODO:two@due(2024-02-02)\n",
			want: []Todo{
				{Text: "one", Due: "2024-01-01", Line: 1},
				{Text: "two", Due: "2024-02-02", Line: 3},
			},
		},
		{
			// The textual shape is calendar-validated later; extraction
			// captures it verbatim.
			name:    "impossible calendar date still extracted",
			content: "TODO:ghost@due(2024-02-30)\n",
			want:    []Todo{{Text: "ghost", Due: "2024-02-30", Line: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, tt.content)
			got, err := ParseFile(path)
			require.NoError(t, err)

			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Text, got[i].Text)
				assert.Equal(t, want.Due, got[i].Due)
				assert.Equal(t, want.Line, got[i].Line)
				assert.Equal(t, path, got[i].File)
			}
		})
	}
}

func TestParseFileUnreadable(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestSource(t *testing.T) {
	td := Todo{Text: "x", Due: "2024-01-01", File: "/home/me/notes.md", Line: 5}
	assert.Equal(t, "/home/me/notes.md:5", td.Source())
	assert.Equal(t, "notes.md", td.Basename())
}
