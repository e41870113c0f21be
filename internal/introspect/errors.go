package introspect

import "errors"

var (
	// ErrUnknownOp is returned when a patch operation's "op" field names
	// something other than insert, delete, undo, redo, begin_group, or
	// end_group.
	ErrUnknownOp = errors.New("introspect: unknown patch operation")

	// ErrMalformedPatch is returned when a patch is not a JSON object or
	// array of JSON objects, or an operation is missing a required field.
	// FilterDump also returns it when the dump it is given is not valid JSON.
	ErrMalformedPatch = errors.New("introspect: malformed patch")
)
