// Package tools provides ready-made tools for agents: file reading and
// writing, shell execution, HTTP fetching, clock access, and wrapping one
// agent as a tool of another. Oversized outputs are truncated per tool so
// a single result cannot flood the model's context.
package tools
