// Package report renders command results as terminal tables followed by
// detail sections. Every renderer writes to an io.Writer and takes its
// colors from internal/ui, so tests disable color and compare plain text.
package report
