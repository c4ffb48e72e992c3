package stack

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root, rel string, contents []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, contents, 0o644))
}

// newTestWriter pins the clock so document titles are assertable.
func newTestWriter(root string) *Writer {
	w := NewWriter(root, nil)
	w.now = func() time.Time {
		return time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)
	}
	return w
}

func TestWriterProducesTitledDocument(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "routes/a.py", []byte("print('a')\n"))
	writeFixture(t, root, "routes/b.py", []byte("print('b')\n"))

	outPath := filepath.Join(t.TempDir(), "out", "source_stack.md")
	err := newTestWriter(root).Write(Document{
		Title: "Source Stack",
		Path:  outPath,
		Files: []string{"routes/a.py", "routes/b.py"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "# Source Stack — generated 2026-08-23 14:30:00\n"))
	assert.Contains(t, text, "---\nFILE: routes/a.py\n---\n\nprint('a')\n")
	assert.Contains(t, text, "---\nFILE: routes/b.py\n---\n\nprint('b')\n")
	assert.Less(t, strings.Index(text, "routes/a.py"), strings.Index(text, "routes/b.py"))
}

func TestWriterCreatesOutputDirectory(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "app.py", []byte("app\n"))

	outPath := filepath.Join(t.TempDir(), "deeply", "nested", "stack.md")
	err := newTestWriter(root).Write(Document{Title: "Root Stack", Path: outPath, Files: []string{"app.py"}})
	require.NoError(t, err)
	assert.FileExists(t, outPath)
}

func TestWriterInlinesErrorNoteForMissingFile(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "routes/a.py", []byte("still here\n"))

	// routes/gone.py was selected moments ago but has since disappeared.
	outPath := filepath.Join(t.TempDir(), "stack.md")
	err := newTestWriter(root).Write(Document{
		Title: "Source Stack",
		Path:  outPath,
		Files: []string{"routes/gone.py", "routes/a.py"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "FILE: routes/gone.py")
	assert.Contains(t, text, "[error reading file:")
	assert.Contains(t, text, "still here")
}

func TestWriterOmitsBinaryContents(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "static/img.png", []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01, 0x02})
	writeFixture(t, root, "static/site.js", []byte("let x = 1;\n"))

	outPath := filepath.Join(t.TempDir(), "stack.md")
	err := newTestWriter(root).Write(Document{
		Title: "Source Stack",
		Path:  outPath,
		Files: []string{"static/img.png", "static/site.js"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "[binary file omitted]")
	assert.NotContains(t, text, "\x00")
	assert.Contains(t, text, "let x = 1;")
}

func TestIsBinaryFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		contents []byte
		want     bool
	}{
		{"plain text", []byte("hello world\n"), false},
		{"empty file", nil, false},
		{"null byte", []byte{'a', 0, 'b'}, true},
		{"mostly non-printable", []byte{1, 2, 3, 4, 5, 'a'}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_"))
			require.NoError(t, os.WriteFile(path, tt.contents, 0o644))

			got, err := isBinaryFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
