// Package registry maps GRASS module names, as used in the first label of a
// pipeline `step` block, to the Go handlers that turn the step's arguments
// into a grass.Operation.
//
// Each handler owns a typed input struct with `hcl` tags. The registry only
// stores the constructor and build function; decoding happens in the planner
// so that every step is checked before any module runs.
package registry
