package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/capitalart/ezy/cmd"
	"github.com/capitalart/ezy/pkg/config"
	"github.com/capitalart/ezy/pkg/logging"
	"github.com/capitalart/ezy/pkg/stack"
	"github.com/capitalart/ezy/pkg/version"
)

func main() {
	logger, err := logging.Setup(config.DebugEnabled(), "ezy", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	err = cmd.Execute(logger)
	syncLogger(logger)

	if err != nil {
		// An empty selection in write mode gets its own exit status so
		// callers can tell "nothing matched" from a hard failure.
		var empty *stack.EmptySelectionError
		if errors.As(err, &empty) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// syncLogger flushes the logger, but only when stderr can actually be
// synced: syncing a terminal stderr returns "invalid argument" on some
// platforms and is not worth reporting.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
