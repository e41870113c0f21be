package introspect

import (
	"github.com/tidwall/gjson"

	"github.com/copyleftdev/zemacs/internal/core"
)

// ApplyPatch replays a small JSON vocabulary of edits against c. patchJSON
// is either a single operation object or a JSON array of them, applied in
// order:
//
//	{"op":"insert","pos":0,"text":"foo"}
//	{"op":"delete","pos":0,"len":3}
//	{"op":"begin_group"}
//	{"op":"end_group"}
//	{"op":"undo"}
//	{"op":"redo"}
//
// Operations are not implicitly grouped; a patch that should undo as one
// step must bracket its edits with explicit begin_group/end_group entries.
func ApplyPatch(c *core.Core, patchJSON []byte) error {
	if !gjson.ValidBytes(patchJSON) {
		return ErrMalformedPatch
	}

	root := gjson.ParseBytes(patchJSON)
	if root.IsArray() {
		for _, op := range root.Array() {
			if err := applyOp(c, op); err != nil {
				return err
			}
		}
		return nil
	}
	return applyOp(c, root)
}

func applyOp(c *core.Core, op gjson.Result) error {
	if !op.IsObject() {
		return ErrMalformedPatch
	}

	opField := op.Get("op")
	if !opField.Exists() {
		return ErrMalformedPatch
	}

	switch opField.String() {
	case "insert":
		text := op.Get("text")
		if !text.Exists() {
			return ErrMalformedPatch
		}
		return c.Insert(int(op.Get("pos").Int()), text.String())

	case "delete":
		length := op.Get("len")
		if !length.Exists() {
			return ErrMalformedPatch
		}
		return c.Delete(int(op.Get("pos").Int()), int(length.Int()))

	case "begin_group":
		c.BeginGroup()
		return nil

	case "end_group":
		c.EndGroup()
		return nil

	case "undo":
		c.Undo()
		return nil

	case "redo":
		c.Redo()
		return nil

	default:
		return ErrUnknownOp
	}
}
