package config

// Settings configures one core.Core instance.
type Settings struct {
	// MaxUndoSteps caps the number of undo groups retained by the history.
	// Non-positive values fall back to undo.DefaultMaxUndoSteps.
	MaxUndoSteps int `toml:"max_undo_steps"`

	// MinCapacity is the initial byte capacity requested for the buffer.
	// A value below gapbuffer.MinCapacity is raised to that floor.
	MinCapacity int `toml:"min_capacity"`

	// SyntaxPreset selects the syntax.Table the scanner uses: "standard"
	// (the default, s-expression aware) or "text" (whitespace-only).
	SyntaxPreset string `toml:"syntax_preset"`
}

// Default returns the settings a Core is built with when the caller
// supplies none of its own.
func Default() Settings {
	return Settings{
		MaxUndoSteps: 1000,
		MinCapacity:  1024,
		SyntaxPreset: "standard",
	}
}
