package introspect

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/match"
	"github.com/tidwall/sjson"
)

// FilterDump returns a copy of dump (as produced by Dump) containing only
// the leaf fields whose dotted path matches globPattern, e.g. "history.*"
// keeps "history.undo_depth" and "history.redo_depth" but drops the whole
// "buffer" object. Matched paths are rebuilt at their original nesting, so
// filtering "history.*" still yields {"history":{"undo_depth":N,
// "redo_depth":N}}, not a flattened object.
func FilterDump(dump []byte, globPattern string) ([]byte, error) {
	if !gjson.ValidBytes(dump) {
		return nil, ErrMalformedPatch
	}

	var (
		out []byte
		err error
	)

	walkLeaves(gjson.ParseBytes(dump), "", func(path string, value gjson.Result) bool {
		if !match.Match(path, globPattern) {
			return true
		}
		out, err = sjson.SetRawBytes(out, path, []byte(value.Raw))
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []byte("{}")
	}

	return out, nil
}

// walkLeaves visits every leaf (non-object) value reachable from result,
// calling visit with its dotted path built up from prefix. It stops early
// if visit returns false.
func walkLeaves(result gjson.Result, prefix string, visit func(path string, value gjson.Result) bool) bool {
	if !result.IsObject() {
		return visit(prefix, result)
	}

	cont := true
	result.ForEach(func(key, value gjson.Result) bool {
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		cont = walkLeaves(value, path, visit)
		return cont
	})
	return cont
}
