// Package app contains the core application logic. It wires the logger, the
// module registry, the pipeline model and the GRASS engine together, and
// defines the run lifecycle: prepare the environment, plan every step, then
// execute the plan. It is decoupled from any specific entrypoint like a CLI.
package app
