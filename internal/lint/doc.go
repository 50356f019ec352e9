// Package lint checks compose files against the homelab house style.
//
// The checks are text based. Compose files are scanned line by line rather
// than parsed as YAML, so only the consistent space indentation produced by
// the usual editors is supported. Tabs, flow mappings and anchors are not
// understood and simply yield fewer extracted properties.
package lint
