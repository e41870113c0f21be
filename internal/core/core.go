package core

import (
	"sync"

	"github.com/copyleftdev/zemacs/internal/config"
	"github.com/copyleftdev/zemacs/internal/gapbuffer"
	"github.com/copyleftdev/zemacs/internal/syntax"
	"github.com/copyleftdev/zemacs/internal/undo"
)

// Core combines a buffer, an undo history, and a syntax table behind one
// mutex. It is the unit of construction config.Settings describes.
type Core struct {
	mu     sync.Mutex
	buf    *gapbuffer.Buffer
	undo   *undo.Manager
	table  *syntax.Table
	preset string
}

// New creates a Core from settings. An unrecognized SyntaxPreset falls back
// to the standard table; callers that need to surface that as an error
// should resolve the preset themselves via syntax.NewTableForPreset first.
func New(settings config.Settings) *Core {
	table, err := syntax.NewTableForPreset(settings.SyntaxPreset)
	if err != nil {
		table = syntax.NewStandardTable()
	}

	return &Core{
		buf:    gapbuffer.New(settings.MinCapacity),
		undo:   undo.NewManager(settings.MaxUndoSteps),
		table:  table,
		preset: settings.SyntaxPreset,
	}
}

// Insert inserts text at pos. pos must lie in [0, Len()].
func (c *Core) Insert(pos int, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pos < 0 || pos > c.buf.Len() {
		return gapbuffer.ErrOffsetOutOfRange
	}

	c.buf.InsertString(pos, text)
	c.undo.RecordInsert(pos, len(text))
	return nil
}

// Delete removes up to n bytes starting at pos. n is clamped down to
// Len()-pos; deleting past the end of the buffer is not an error. pos
// itself must lie in [0, Len()].
func (c *Core) Delete(pos, n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	l := c.buf.Len()
	if pos < 0 || pos > l {
		return gapbuffer.ErrOffsetOutOfRange
	}
	if n <= 0 {
		return nil
	}
	if n > l-pos {
		n = l - pos
	}

	victim := make([]byte, n)
	c.buf.CopyAt(pos, n, victim)
	c.undo.RecordDelete(pos, victim)
	c.buf.Delete(pos, n)
	return nil
}

// BeginGroup opens a new undo group, grouping subsequent Insert/Delete calls
// into one undo/redo step.
func (c *Core) BeginGroup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.undo.BeginGroup()
}

// EndGroup closes the currently open undo group.
func (c *Core) EndGroup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.undo.EndGroup()
}

// Undo reverses the most recent undo group, if any, and reports whether one
// was available.
func (c *Core) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.undo.Undo(c.buf)
}

// Redo reapplies the most recently undone group, if any, and reports
// whether one was available.
func (c *Core) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.undo.Redo(c.buf)
}

// RegisterMarker registers a new marker at pos with the given insertion
// tie-break behavior.
func (c *Core) RegisterMarker(pos int, advance bool) *gapbuffer.Marker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.RegisterMarker(pos, advance)
}

// UnregisterMarker stops tracking m.
func (c *Core) UnregisterMarker(m *gapbuffer.Marker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.UnregisterMarker(m)
}

// ScanSexp returns the position immediately after the s-expression starting
// at or after pos, per the core's configured syntax table.
func (c *Core) ScanSexp(pos int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return syntax.ScanSexp(c.buf, c.table, pos)
}

// ScanSexpN applies ScanSexp n times in sequence starting at pos.
func (c *Core) ScanSexpN(pos, n int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return syntax.ScanSexpN(c.buf, c.table, pos, n)
}

// Bytes returns a freshly allocated copy of the buffer's current content.
func (c *Core) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Bytes()
}

// Len returns the buffer's current logical length.
func (c *Core) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Len()
}

// Revision returns a counter that increments once per edit that actually
// changes the buffer's content.
func (c *Core) Revision() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Revision()
}

// UndoDepth returns the number of groups currently on the undo stack.
func (c *Core) UndoDepth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.undo.UndoDepth()
}

// RedoDepth returns the number of groups currently on the redo stack.
func (c *Core) RedoDepth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.undo.RedoDepth()
}

// MarkerCount returns the number of markers currently registered.
func (c *Core) MarkerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.MarkerCount()
}
