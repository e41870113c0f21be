// Package gapbuffer provides a byte-addressed gap buffer, the storage layer
// underneath a ZEMACS text buffer.
//
// A gap buffer is a contiguous byte array with an interior unused region (the
// "gap"). Editing at a position costs only the work of moving the gap there;
// bursts of localized edits are nearly free once the gap is in place. This is
// the classic data structure behind editors like early Emacs implementations,
// and is chosen here over a rope or piece table for its simplicity and its
// excellent behavior on the common case of sequential typing.
//
// Basic usage:
//
//	buf := gapbuffer.New(0)
//	buf.Insert(0, []byte("World"))
//	buf.Insert(0, []byte("Hello "))
//	buf.Insert(5, []byte(","))
//	fmt.Println(string(buf.Bytes())) // "Hello, World"
//
// Markers are positional references registered with a buffer; they are kept
// semantically stable across edits performed anywhere else in the buffer. See
// [Marker] and [Buffer.RegisterMarker].
//
// Buffer is not safe for concurrent use. Callers that need to share one
// across goroutines must provide their own synchronization (see
// github.com/copyleftdev/zemacs/internal/core for a mutex-guarded facade).
package gapbuffer
