// Package executor runs a planned pipeline against a GRASS engine.
//
// Tasks run strictly one after another on the caller's goroutine, in the
// order they were planned. The first failing task ends the run; the tasks
// after it are never handed to the engine. There are no retries and no
// rollback: whatever the failed module left in the GRASS database stays there.
package executor
