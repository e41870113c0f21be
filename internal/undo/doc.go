// Package undo provides a two-stack undo/redo history over gap buffer edit
// primitives (insertions and deletions), not over higher-level commands.
//
// # Entries and groups
//
// An Entry records one primitive edit: an insertion records only its
// position and length (the bytes are still in the buffer and can be read
// back out if needed), while a deletion owns a copy of the bytes it removed,
// since those bytes are gone from the buffer the moment the deletion
// happens. A Group is an ordered sequence of entries that undo and redo as
// one atomic unit.
//
// # Grouping
//
//	m := undo.NewManager(1000)
//	m.BeginGroup()
//	buf.InsertString(0, "Hello")
//	m.RecordInsert(0, len("Hello"))
//	m.EndGroup()
//
//	m.Undo(buf) // removes "Hello"
//	m.Redo(buf) // reinserts it
//
// EndGroup clears the redo stack only when it actually pushes a non-empty
// group; beginning and ending an empty group defensively does not destroy
// redo history.
//
// # Safety cap
//
// Manager enforces a configurable maximum number of undo groups; pushing
// past the cap silently drops the oldest group.
package undo
