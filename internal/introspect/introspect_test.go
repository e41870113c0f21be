package introspect

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/copyleftdev/zemacs/internal/config"
	"github.com/copyleftdev/zemacs/internal/core"
)

func TestDump(t *testing.T) {
	c := core.New(config.Default())
	if err := c.Insert(0, "hello"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	dump, err := Dump(c)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}

	if got := gjson.GetBytes(dump, "buffer.text").String(); got != "hello" {
		t.Errorf("buffer.text = %q, want hello", got)
	}
	if got := gjson.GetBytes(dump, "buffer.length").Int(); got != 5 {
		t.Errorf("buffer.length = %d, want 5", got)
	}
	if got := gjson.GetBytes(dump, "buffer.revision").Int(); got != int64(c.Revision()) {
		t.Errorf("buffer.revision = %d, want %d", got, c.Revision())
	}
	if got := gjson.GetBytes(dump, "history.undo_depth").Int(); got != int64(c.UndoDepth()) {
		t.Errorf("history.undo_depth = %d, want %d", got, c.UndoDepth())
	}
	if got := gjson.GetBytes(dump, "history.redo_depth").Int(); got != int64(c.RedoDepth()) {
		t.Errorf("history.redo_depth = %d, want %d", got, c.RedoDepth())
	}
}

func TestApplyPatchSingleOp(t *testing.T) {
	c := core.New(config.Default())

	err := ApplyPatch(c, []byte(`{"op":"insert","pos":0,"text":"hi"}`))
	if err != nil {
		t.Fatalf("apply patch: %v", err)
	}
	if got := string(c.Bytes()); got != "hi" {
		t.Errorf("got %q, want hi", got)
	}
}

func TestApplyPatchSequence(t *testing.T) {
	c := core.New(config.Default())

	patch := []byte(`[
		{"op":"begin_group"},
		{"op":"insert","pos":0,"text":"Hello"},
		{"op":"end_group"},
		{"op":"begin_group"},
		{"op":"insert","pos":5,"text":" World"},
		{"op":"end_group"},
		{"op":"undo"}
	]`)

	if err := ApplyPatch(c, patch); err != nil {
		t.Fatalf("apply patch: %v", err)
	}
	if got := string(c.Bytes()); got != "Hello" {
		t.Errorf("got %q, want Hello", got)
	}
}

func TestApplyPatchDelete(t *testing.T) {
	c := core.New(config.Default())
	if err := c.Insert(0, "Hello World"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	err := ApplyPatch(c, []byte(`{"op":"delete","pos":5,"len":6}`))
	if err != nil {
		t.Fatalf("apply patch: %v", err)
	}
	if got := string(c.Bytes()); got != "Hello" {
		t.Errorf("got %q, want Hello", got)
	}
}

func TestApplyPatchUnknownOp(t *testing.T) {
	c := core.New(config.Default())
	if err := ApplyPatch(c, []byte(`{"op":"frobnicate"}`)); err != ErrUnknownOp {
		t.Errorf("got %v, want ErrUnknownOp", err)
	}
}

func TestApplyPatchMissingField(t *testing.T) {
	c := core.New(config.Default())
	if err := ApplyPatch(c, []byte(`{"op":"insert","pos":0}`)); err != ErrMalformedPatch {
		t.Errorf("got %v, want ErrMalformedPatch", err)
	}
}

func TestApplyPatchInvalidJSON(t *testing.T) {
	c := core.New(config.Default())
	if err := ApplyPatch(c, []byte(`not json`)); err != ErrMalformedPatch {
		t.Errorf("got %v, want ErrMalformedPatch", err)
	}
}

func TestDumpPatchRoundTrip(t *testing.T) {
	c := core.New(config.Default())
	c.BeginGroup()
	if err := c.Insert(0, "hello"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	c.EndGroup()

	dump, err := Dump(c)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if got := gjson.GetBytes(dump, "buffer.text").String(); got != "hello" {
		t.Fatalf("buffer.text = %q, want hello", got)
	}

	patch := []byte(`[{"op":"begin_group"},{"op":"insert","pos":5,"text":" world"},{"op":"end_group"}]`)
	if err := ApplyPatch(c, patch); err != nil {
		t.Fatalf("apply patch: %v", err)
	}

	dump, err = Dump(c)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if got := gjson.GetBytes(dump, "buffer.text").String(); got != "hello world" {
		t.Fatalf("buffer.text = %q, want hello world", got)
	}

	if !c.Undo() {
		t.Fatal("expected undo to succeed")
	}
	if got := string(c.Bytes()); got != "hello" {
		t.Errorf("after undo: got %q, want hello", got)
	}
}

func TestFilterDump(t *testing.T) {
	c := core.New(config.Default())
	if err := c.Insert(0, "abc"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	dump, err := Dump(c)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}

	filtered, err := FilterDump(dump, "history.*")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	if gjson.GetBytes(filtered, "buffer").Exists() {
		t.Error("filtered dump should not contain buffer")
	}
	if !gjson.GetBytes(filtered, "history.undo_depth").Exists() {
		t.Error("filtered dump should contain history.undo_depth")
	}
	if !gjson.GetBytes(filtered, "history.redo_depth").Exists() {
		t.Error("filtered dump should contain history.redo_depth")
	}
}
