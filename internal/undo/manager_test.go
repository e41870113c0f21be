package undo

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/copyleftdev/zemacs/internal/gapbuffer"
)

func TestUndoRedoIntegration(t *testing.T) {
	buf := gapbuffer.New(0)
	m := NewManager(0)

	m.BeginGroup()
	buf.InsertString(0, "Hello")
	m.RecordInsert(0, len("Hello"))
	m.EndGroup()

	m.BeginGroup()
	buf.InsertString(5, " World")
	m.RecordInsert(5, len(" World"))
	m.EndGroup()

	if got := string(buf.Bytes()); got != "Hello World" {
		t.Fatalf("got %q", got)
	}

	if !m.Undo(buf) {
		t.Fatal("expected undo to succeed")
	}
	if got := string(buf.Bytes()); got != "Hello" {
		t.Fatalf("after undo: got %q", got)
	}

	if !m.Redo(buf) {
		t.Fatal("expected redo to succeed")
	}
	if got := string(buf.Bytes()); got != "Hello World" {
		t.Fatalf("after redo: got %q", got)
	}

	m.BeginGroup()
	deleted := make([]byte, 5)
	buf.CopyAt(0, 5, deleted)
	m.RecordDelete(0, deleted)
	buf.Delete(0, 5)
	m.EndGroup()

	if got := string(buf.Bytes()); got != " World" {
		t.Fatalf("after delete: got %q", got)
	}

	if !m.Undo(buf) {
		t.Fatal("expected undo to succeed")
	}
	if got := string(buf.Bytes()); got != "Hello World" {
		t.Fatalf("after undoing delete: got %q", got)
	}
}

func TestEmptyGroupNotPushed(t *testing.T) {
	m := NewManager(0)
	m.BeginGroup()
	m.EndGroup()

	if m.CanUndo() {
		t.Error("empty group should not be pushed onto the undo stack")
	}
}

func TestEmptyEndGroupPreservesRedo(t *testing.T) {
	buf := gapbuffer.New(0)
	m := NewManager(0)

	m.BeginGroup()
	buf.InsertString(0, "x")
	m.RecordInsert(0, 1)
	m.EndGroup()

	m.Undo(buf)
	if !m.CanRedo() {
		t.Fatal("expected redo to be available before the defensive empty group")
	}

	m.BeginGroup()
	m.EndGroup()

	if !m.CanRedo() {
		t.Error("an empty group pushed defensively must not clear the redo stack")
	}
}

func TestNewEditAfterUndoClearsRedo(t *testing.T) {
	buf := gapbuffer.New(0)
	m := NewManager(0)

	m.BeginGroup()
	buf.InsertString(0, "a")
	m.RecordInsert(0, 1)
	m.EndGroup()

	m.Undo(buf)
	if !m.CanRedo() {
		t.Fatal("expected redo available")
	}

	m.BeginGroup()
	buf.InsertString(0, "b")
	m.RecordInsert(0, 1)
	m.EndGroup()

	if m.CanRedo() {
		t.Error("a fresh edit after undo must clear the redo stack")
	}
}

func TestSafetyCapDropsOldest(t *testing.T) {
	buf := gapbuffer.New(0)
	m := NewManager(3)

	for i := 0; i < 5; i++ {
		m.BeginGroup()
		buf.InsertString(buf.Len(), "x")
		m.RecordInsert(buf.Len()-1, 1)
		m.EndGroup()
	}

	if m.UndoDepth() != 3 {
		t.Fatalf("got undo depth %d, want 3", m.UndoDepth())
	}
}

func TestUndoFuzz(t *testing.T) {
	const iterations = 1000

	rng := rand.New(rand.NewSource(7))
	buf := gapbuffer.New(0)
	m := NewManager(0)

	shadow := [][]byte{{}}
	depth := 0 // number of undos currently applied, i.e. undo_depth into shadow from the tip

	apply := func() {
		p := rng.Intn(buf.Len() + 1)
		text := []byte{byte('a' + rng.Intn(26))}

		if depth > 0 {
			shadow = shadow[:len(shadow)-depth]
			depth = 0
		}

		m.BeginGroup()
		buf.Insert(p, text)
		m.RecordInsert(p, len(text))
		m.EndGroup()

		shadow = append(shadow, append([]byte{}, buf.Bytes()...))
	}

	for i := 0; i < iterations; i++ {
		switch rng.Intn(3) {
		case 0:
			apply()
		case 1:
			if m.Undo(buf) {
				depth++
			}
		case 2:
			if m.Redo(buf) {
				depth--
			}
		}

		want := shadow[len(shadow)-1-depth]
		if got := buf.Bytes(); !bytes.Equal(got, want) {
			t.Fatalf("iteration %d: got %q, want %q", i, got, want)
		}
	}
}
