// Package zlog is a small structured logger for the zemacscore command
// line driver: level-filtered, field-tagged lines written to an io.Writer.
// No third-party logging library appears anywhere in this project's
// dependency lineage, so this stays stdlib-only like its ancestor.
package zlog
