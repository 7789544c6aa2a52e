// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model parses grasschain pipeline files into Go structures.
//
// A pipeline file is HCL with two kinds of top-level blocks:
//
//   - locals: literal values shared by the steps, referenced as local.<name>.
//
//   - step "<module>" "<name>": one GRASS module invocation. The first label
//     is the GRASS module (g.region, r.resamp.stats, ...), the second a name
//     unique within the pipeline. The step's `arguments` block is kept as a
//     raw hcl.Body; it is decoded later against the Go input struct that the
//     module's handler registers.
//
// Steps keep the order in which they appear. When a pipeline spans several
// files, the files are read in lexical order.
package model
