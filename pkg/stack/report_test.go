package stack

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/capitalart/ezy/pkg/selection"
)

func TestReportListsFilesWithCount(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Report(&buf, "Source files", selection.Result{
		DirFiles:  []string{"routes/a.py", "routes/b.py"},
		RootFiles: []string{"app.py"},
	})

	out := buf.String()
	assert.Contains(t, out, "Source files: 3 files\n")
	assert.Contains(t, out, "  routes/a.py\n")
	assert.Contains(t, out, "  routes/b.py\n")
	assert.Contains(t, out, "  root files:\n")
	assert.Contains(t, out, "  app.py\n")
}

func TestReportEmptySelection(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Report(&buf, "Source files", selection.Result{})

	assert.Equal(t, "Source files: 0 files\n", buf.String())
}
