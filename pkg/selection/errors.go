package selection

import "fmt"

// ConfigurationError reports an unusable selection root. It is the only
// fatal condition a selection run can produce; everything else is a
// silent skip that shrinks the result.
type ConfigurationError struct {
	Root   string // The root path as given by the caller
	Reason string // Why the root cannot be used
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid selection root %q: %s", e.Root, e.Reason)
}
