// Package errs defines the sentinel errors shared across quadfit packages.
//
// Callers can match these with errors.Is after call sites wrap them with
// additional context.
package errs

import "errors"

var (
	// ErrIndexOutOfRange is returned by indexed sample access when the
	// index is not less than the number of accumulated points.
	ErrIndexOutOfRange = errors.New("sample index out of range")

	// ErrLengthMismatch is returned when paired x/y slices differ in length.
	ErrLengthMismatch = errors.New("x and y slice lengths mismatch")

	// ErrInvalidHeaderSize is returned when a snapshot is shorter than its
	// fixed-size header.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidMagic is returned when a snapshot does not start with the
	// quadfit magic number.
	ErrInvalidMagic = errors.New("invalid snapshot magic number")

	// ErrUnsupportedVersion is returned when a snapshot was written by an
	// unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrChecksumMismatch is returned when a snapshot payload fails its
	// checksum validation.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrInvalidPayloadSize is returned when a snapshot payload does not
	// match the point count declared in its header.
	ErrInvalidPayloadSize = errors.New("invalid snapshot payload size")
)
