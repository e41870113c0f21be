// Package loader reads config.Settings from TOML files, bytes, or an
// io.Reader. Values the TOML sets apply over config.Default(); fields it
// does not set keep their default values.
package loader
