package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/copyleftdev/zemacs/internal/config"
)

// FromTOML reads Settings from the TOML file at path, starting from
// config.Default() and overriding whichever fields the file sets. A
// missing file is not an error: the defaults are returned unchanged.
func FromTOML(path string) (config.Settings, error) {
	return FromTOMLFS(DefaultFS(), path)
}

// FromTOMLFS is FromTOML with an injectable FileSystem, for tests.
func FromTOMLFS(fsys FileSystem, path string) (config.Settings, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return config.Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return FromTOMLBytes(data)
}

// FromTOMLBytes parses raw TOML bytes into Settings, layered over
// config.Default().
func FromTOMLBytes(data []byte) (config.Settings, error) {
	settings := config.Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return config.Settings{}, &ParseError{Path: "<bytes>", Message: err.Error(), Err: err}
	}
	return settings, nil
}

// FromTOMLReader parses TOML read from r into Settings, layered over
// config.Default().
func FromTOMLReader(r io.Reader) (config.Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return config.Settings{}, fmt.Errorf("reading config: %w", err)
	}
	return FromTOMLBytes(data)
}
