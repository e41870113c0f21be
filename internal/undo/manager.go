package undo

// DefaultMaxUndoSteps is the undo stack depth a Manager uses when
// constructed with a non-positive cap.
const DefaultMaxUndoSteps = 1000

// Manager is a two-stack undo/redo history over edit primitives.
//
// Manager is not safe for concurrent use; callers sharing one across
// goroutines must provide their own synchronization.
type Manager struct {
	undoStack []Group
	redoStack []Group

	current  *Group
	grouping bool
	maxSteps int
}

// NewManager creates a Manager capped at maxSteps undo groups. A non-positive
// maxSteps falls back to DefaultMaxUndoSteps.
func NewManager(maxSteps int) *Manager {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxUndoSteps
	}
	return &Manager{maxSteps: maxSteps}
}

// BeginGroup starts a new open group. It is a no-op if a group is already
// open.
func (m *Manager) BeginGroup() {
	if m.grouping {
		return
	}
	m.grouping = true
	m.current = &Group{}
}

// EndGroup closes the open group. If it is non-empty, it is pushed onto the
// undo stack and the redo stack is cleared. An empty or absent group is
// discarded without touching the redo stack.
func (m *Manager) EndGroup() {
	if !m.grouping {
		return
	}
	m.grouping = false

	g := m.current
	m.current = nil
	if g == nil || g.empty() {
		return
	}

	m.pushUndo(*g)
	m.redoStack = nil
}

// CancelGroup discards the open group without recording it. Edits already
// applied to the buffer are unaffected; only the undo record is dropped.
func (m *Manager) CancelGroup() {
	m.grouping = false
	m.current = nil
}

// IsGrouping reports whether a group is currently open.
func (m *Manager) IsGrouping() bool {
	return m.grouping
}

// RecordInsert appends an InsertEntry to the open group, opening one
// implicitly if none is in progress.
func (m *Manager) RecordInsert(pos, length int) {
	m.ensureGroup()
	m.current.Entries = append(m.current.Entries, InsertEntry{Pos: pos, Len: length})
}

// RecordDelete copies text into manager-owned storage and appends a
// DeleteEntry to the open group, opening one implicitly if none is in
// progress. Callers must call this after copying the text to be deleted but
// before actually deleting it from the buffer, so the recorded bytes are
// authoritative.
func (m *Manager) RecordDelete(pos int, text []byte) {
	m.ensureGroup()
	owned := make([]byte, len(text))
	copy(owned, text)
	m.current.Entries = append(m.current.Entries, DeleteEntry{Pos: pos, Text: owned})
}

func (m *Manager) ensureGroup() {
	if !m.grouping {
		m.BeginGroup()
	}
}

func (m *Manager) pushUndo(g Group) {
	m.undoStack = append(m.undoStack, g)
	if len(m.undoStack) > m.maxSteps {
		excess := len(m.undoStack) - m.maxSteps
		m.undoStack = m.undoStack[excess:]
	}
}

// Undo pops the most recent undo group, if any, and applies its inverse to
// buf, pushing the resulting inverse group onto the redo stack. Reports
// whether a group was available to undo.
func (m *Manager) Undo(buf buffer) bool {
	if len(m.undoStack) == 0 {
		return false
	}

	g := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	inverse := g.applyInverse(buf)
	m.redoStack = append(m.redoStack, inverse)
	return true
}

// Redo is the symmetric counterpart of Undo: it pops the most recent redo
// group and applies its inverse, pushing the result back onto the undo
// stack.
func (m *Manager) Redo(buf buffer) bool {
	if len(m.redoStack) == 0 {
		return false
	}

	g := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]

	inverse := g.applyInverse(buf)
	m.undoStack = append(m.undoStack, inverse)
	return true
}

// CanUndo reports whether Undo would do anything.
func (m *Manager) CanUndo() bool {
	return len(m.undoStack) > 0
}

// CanRedo reports whether Redo would do anything.
func (m *Manager) CanRedo() bool {
	return len(m.redoStack) > 0
}

// UndoDepth returns the number of groups on the undo stack.
func (m *Manager) UndoDepth() int {
	return len(m.undoStack)
}

// RedoDepth returns the number of groups on the redo stack.
func (m *Manager) RedoDepth() int {
	return len(m.redoStack)
}

// MaxSteps returns the configured undo stack cap.
func (m *Manager) MaxSteps() int {
	return m.maxSteps
}

// SetMaxSteps changes the cap, trimming the oldest groups if the stack is
// already deeper than the new limit.
func (m *Manager) SetMaxSteps(maxSteps int) {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxUndoSteps
	}
	m.maxSteps = maxSteps
	if len(m.undoStack) > maxSteps {
		excess := len(m.undoStack) - maxSteps
		m.undoStack = m.undoStack[excess:]
	}
}

// Clear discards all undo/redo history and any open group.
func (m *Manager) Clear() {
	m.undoStack = nil
	m.redoStack = nil
	m.grouping = false
	m.current = nil
}
