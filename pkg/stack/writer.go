package stack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Document describes one markdown stack to write: a title, the destination
// path, and the ordered list of files (relative to Root) to inline.
type Document struct {
	Title string
	Path  string
	Files []string
}

// Writer concatenates selected files into markdown stack documents. It
// never modifies the source tree; all writes go to the document path.
type Writer struct {
	root   string
	now    func() time.Time
	logger *zap.Logger
}

// NewWriter returns a Writer reading sources relative to root.
func NewWriter(root string, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{root: root, now: time.Now, logger: logger}
}

// Write produces the stack document. A file that cannot be read gets an
// inline error note and the run continues: the selection was taken moments
// earlier against a live tree, so individual files may have moved or
// changed permissions. Binary files are noted but never inlined.
func (w *Writer) Write(doc Document) error {
	if err := os.MkdirAll(filepath.Dir(doc.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(doc.Path)
	if err != nil {
		return fmt.Errorf("failed to create stack document: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			w.logger.Error("Failed to close stack document", zap.String("path", doc.Path), zap.Error(cerr))
		}
	}()

	writer := bufio.NewWriter(out)
	fmt.Fprintf(writer, "# %s — generated %s\n", doc.Title, w.now().Format("2006-01-02 15:04:05"))

	for _, rel := range doc.Files {
		writeHeader(writer, rel)
		w.writeContents(writer, rel)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush stack document: %w", err)
	}

	w.logger.Info("Wrote stack document",
		zap.String("path", doc.Path),
		zap.Int("files", len(doc.Files)))
	return nil
}

// writeHeader emits the horizontal-rule-delimited section header naming the
// file's relative path.
func writeHeader(writer io.Writer, rel string) {
	fmt.Fprintf(writer, "\n---\nFILE: %s\n---\n\n", rel)
}

// writeContents inlines one file verbatim, or a note when it cannot or
// should not be inlined.
func (w *Writer) writeContents(writer *bufio.Writer, rel string) {
	path := filepath.Join(w.root, filepath.FromSlash(rel))

	binary, err := isBinaryFile(path)
	if err != nil {
		w.logger.Warn("Failed to read selected file", zap.String("file", rel), zap.Error(err))
		fmt.Fprintf(writer, "[error reading file: %v]\n", err)
		return
	}
	if binary {
		w.logger.Warn("Skipping binary file contents", zap.String("file", rel))
		fmt.Fprintf(writer, "[binary file omitted]\n")
		return
	}

	src, err := os.Open(path)
	if err != nil {
		w.logger.Warn("Failed to open selected file", zap.String("file", rel), zap.Error(err))
		fmt.Fprintf(writer, "[error reading file: %v]\n", err)
		return
	}
	defer src.Close()

	if _, err := io.Copy(writer, src); err != nil {
		w.logger.Warn("Failed to copy file contents", zap.String("file", rel), zap.Error(err))
		fmt.Fprintf(writer, "\n[error reading file: %v]\n", err)
		return
	}
	writer.WriteByte('\n')
}
