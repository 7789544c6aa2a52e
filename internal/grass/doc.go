// Package grass is the boundary to the GRASS GIS engine.
//
// An Operation names a GRASS module together with its flags and key=value
// parameters. An Engine runs operations against the engine's own dataset
// store; grasschain never reads or writes map data itself. Two engines are
// provided:
//
//   - CommandEngine runs each module as a subprocess, either straight from
//     PATH (inside an existing GRASS session) or through "grass --exec" for a
//     configured mapset.
//
//   - Recorder runs nothing. It records calls and prints the command lines,
//     which is what --dry-run and the tests use.
//
// A module that exits non-zero is reported as a *ModuleError.
package grass
