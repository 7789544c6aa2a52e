// Package environ holds the environment mapping handed to every GRASS module
// invocation. The mapping is built once per run and then only read.
package environ

import (
	"os"
	"sort"
	"strings"
)

// OverwriteVar makes GRASS modules replace existing output maps instead of
// refusing to run.
const OverwriteVar = "GRASS_OVERWRITE"

// Env maps environment variable names to values.
type Env map[string]string

// FromOS copies the current process environment.
func FromOS() Env {
	return FromList(os.Environ())
}

// FromList parses "KEY=VALUE" entries. Entries without "=" are ignored and a
// later duplicate wins, matching how the process environment resolves them.
func FromList(entries []string) Env {
	env := make(Env, len(entries))
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// Clone returns an independent copy.
func (e Env) Clone() Env {
	out := make(Env, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// EnableOverwrite sets GRASS_OVERWRITE=1.
func (e Env) EnableOverwrite() {
	e[OverwriteVar] = "1"
}

// Overwrite reports whether GRASS_OVERWRITE is set to 1.
func (e Env) Overwrite() bool {
	return e[OverwriteVar] == "1"
}

// List renders the mapping as sorted "KEY=VALUE" entries suitable for
// exec.Cmd.Env.
func (e Env) List() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e[k])
	}
	return out
}
