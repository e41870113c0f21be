// Package core wires a gapbuffer.Buffer, an undo.Manager, and a
// syntax.Table together behind one mutex, presenting the combined editing,
// history, and scanning surface as a single Core value.
//
// Core enforces the ordering the underlying packages require but do not
// enforce themselves: Delete always copies the victim bytes, records them
// with the undo manager, and only then removes them from the buffer, so the
// recorded undo entry is authoritative even if a later step were to fail.
package core
