package stack

import "fmt"

// EmptySelectionError reports that a write-mode run matched no files in
// either the directory scan or the root-file list. It is a user-visible
// failure with its own exit status, not a crash; listing mode reports the
// same situation as "0 files" and succeeds.
type EmptySelectionError struct {
	Root string // The selection root that produced no matches
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("no files matched under %q: nothing to write", e.Root)
}
