// Package config defines the tunables a core.Core is constructed with:
// undo-history depth, the buffer's initial capacity floor, and which
// syntax.Table preset the scanner uses. Values are plain data; loading them
// from TOML lives in the loader subpackage so this package stays free of
// I/O concerns.
package config
