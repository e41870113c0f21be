// Package introspect exposes a core.Core's state as JSON for external
// tooling: Dump serializes a snapshot, ApplyPatch replays a small JSON patch
// vocabulary of edits against a live Core, and FilterDump narrows a
// previously taken dump down to fields matching a glob pattern.
//
// This is deliberately not a wire protocol: it has no framing, no request
// IDs, and no transport. Whatever RPC layer sits in front of a Core is free
// to wrap these functions however it likes.
package introspect
