// Package beanscope reports on the managed surface of a component graph.
//
// The repository is organized as a small set of explicit collaborators:
//
//   - managed: how components declare inspectable members, either via the
//     Describer capability interface or an explicit declaration table, plus
//     the reflective shape resolution shared by both.
//   - graph: the object-graph side of the join. Bind component instances in
//     your composition root; the graph exposes the distinct classes and their
//     resolved managed members.
//   - registry: the management-registry side of the join. An in-memory
//     registry of (class name, canonical name) registrations with a snapshot
//     QueryAll read.
//   - inspect: the join itself. Build produces an immutable, sorted,
//     deduplicated set of records; Print renders the aligned four-column
//     table (NAME, METHOD/ATTRIBUTE, TYPE, DESCRIPTION).
//   - columnfmt: the padded column printer.
//   - cmd/beanscope: a CLI that builds the same report from a YAML manifest
//     instead of live Go values.
//
// Wiring stays explicit: nothing walks struct fields or resolves
// dependencies. Components declare what they expose, the composition root
// binds and registers them, and the inspector joins the two snapshots.
//
// Start with examples/basic for end-to-end wiring style.
package beanscope
