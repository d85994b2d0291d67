// Package errs defines the sentinel errors returned by squeeze packages.
//
// Errors are wrapped with additional context using fmt.Errorf("%w: ..."), so
// callers should match them with errors.Is:
//
//	values, err := encoding.ReadDeltaArray(reader)
//	if errors.Is(err, errs.ErrOutOfData) {
//	    // truncated stream
//	}
package errs

import "errors"

// Bit stream errors.
var (
	// ErrInvalidBitCount is returned when a read asks for 0 or more than 32 bits,
	// or a write asks for more than 64 bits.
	ErrInvalidBitCount = errors.New("invalid bit count")

	// ErrOutOfData is returned when a reader has fewer bits left than requested.
	ErrOutOfData = errors.New("bit stream out of data")
)

// Codec errors.
var (
	// ErrGammaZero is returned when gamma-encoding zero, which has no gamma code.
	ErrGammaZero = errors.New("gamma code is undefined for zero")

	// ErrValueTooLarge is returned when a value needs more than 30 bits.
	ErrValueTooLarge = errors.New("value exceeds 30 bits")

	// ErrNotMonotonic is returned when a monotonic array is not strictly increasing.
	ErrNotMonotonic = errors.New("array is not strictly increasing")

	// ErrCorruptStream is returned when decoded data cannot have been produced by an encoder.
	ErrCorruptStream = errors.New("corrupt bit stream")

	// ErrEmptyPayload is returned when decoding an empty byte slice.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Postings index errors.
var (
	// ErrInvalidTerm is returned when adding an empty term.
	ErrInvalidTerm = errors.New("invalid term")

	// ErrTermNotFound is returned when querying a term that is not in the index.
	ErrTermNotFound = errors.New("term not found")

	// ErrBuilderFinished is returned when using a builder after a successful Finish.
	ErrBuilderFinished = errors.New("builder already finished")

	// ErrUnresolvedCollision is returned when two distinct terms hash to the same ID.
	ErrUnresolvedCollision = errors.New("term hash collision")
)
