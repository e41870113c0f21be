package introspect

import (
	"github.com/tidwall/sjson"

	"github.com/copyleftdev/zemacs/internal/core"
)

// Dump serializes a snapshot of c as nested JSON:
//
//	{"buffer":{"text":"...","length":N,"revision":N},
//	 "history":{"undo_depth":N,"redo_depth":N}}
//
// The "buffer" object is a BufferView and "history" a HistoryView.
func Dump(c *core.Core) ([]byte, error) {
	var (
		out []byte
		err error
	)

	out, err = sjson.SetBytes(out, "buffer.text", string(c.Bytes()))
	if err != nil {
		return nil, err
	}
	out, err = sjson.SetBytes(out, "buffer.length", c.Len())
	if err != nil {
		return nil, err
	}
	out, err = sjson.SetBytes(out, "buffer.revision", c.Revision())
	if err != nil {
		return nil, err
	}
	out, err = sjson.SetBytes(out, "history.undo_depth", c.UndoDepth())
	if err != nil {
		return nil, err
	}
	out, err = sjson.SetBytes(out, "history.redo_depth", c.RedoDepth())
	if err != nil {
		return nil, err
	}

	return out, nil
}
