package undo

// Group is an ordered sequence of Entry values that undo and redo together
// as one atomic, user-visible edit.
type Group struct {
	Entries []Entry
}

func (g *Group) empty() bool {
	return len(g.Entries) == 0
}

// buffer is the subset of *gapbuffer.Buffer the undo manager needs. Defined
// locally to avoid a hard dependency from this package's core algorithm on
// the concrete buffer type's full surface.
type buffer interface {
	Insert(pos int, text []byte)
	Delete(pos, n int)
	CopyAt(pos, n int, out []byte)
}

// applyInverse replays the inverse of every entry in g, in reverse entry
// order, against buf, and returns a new Group holding the inverse entries
// (in the order they were applied) suitable for pushing onto the opposite
// stack.
func (g *Group) applyInverse(buf buffer) Group {
	inverse := Group{Entries: make([]Entry, 0, len(g.Entries))}

	for i := len(g.Entries) - 1; i >= 0; i-- {
		switch e := g.Entries[i].(type) {
		case InsertEntry:
			text := make([]byte, e.Len)
			buf.CopyAt(e.Pos, e.Len, text)
			buf.Delete(e.Pos, e.Len)
			inverse.Entries = append(inverse.Entries, DeleteEntry{Pos: e.Pos, Text: text})

		case DeleteEntry:
			buf.Insert(e.Pos, e.Text)
			inverse.Entries = append(inverse.Entries, InsertEntry{Pos: e.Pos, Len: len(e.Text)})

		case MarkerMoveEntry:
			// Reserved, never produced; nothing to invert.
		}
	}

	return inverse
}
