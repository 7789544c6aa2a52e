package grass

import (
	"fmt"
	"strings"
)

// ModuleError reports a GRASS module that exited with a non-zero status.
type ModuleError struct {
	Module string
	Code   int
	// Stderr holds the last part of the module's error output.
	Stderr string
}

func (e *ModuleError) Error() string {
	msg := fmt.Sprintf("module %s exited with status %d", e.Module, e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}
