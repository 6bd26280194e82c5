package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyInput is returned when an operation needs at least one element and got none.
	ErrEmptyInput = zerr.New("no such element")

	// ErrIndexOutOfRange is returned when an index falls outside [0, length).
	ErrIndexOutOfRange = zerr.New("index out of range")

	// ErrEntitiesReadFailed is returned when an entity file cannot be read.
	ErrEntitiesReadFailed = zerr.New("failed to read entity file")

	// ErrEntitiesParseFailed is returned when an entity file is not valid YAML.
	ErrEntitiesParseFailed = zerr.New("failed to parse entity file")

	// ErrUnsupportedVersion is returned when an entity file declares an unknown format version.
	ErrUnsupportedVersion = zerr.New("unsupported entity file version")

	// ErrInvalidEntityID is returned when an entity identifier is not a valid UUID.
	ErrInvalidEntityID = zerr.New("invalid entity id")

	// ErrInvalidTimestamp is returned when a creation timestamp is missing or not RFC 3339.
	ErrInvalidTimestamp = zerr.New("invalid creation timestamp")

	// ErrInvalidNumber is returned when a value cannot be parsed as a decimal number.
	ErrInvalidNumber = zerr.New("invalid number")

	// ErrUnknownEncoding is returned when an unsupported message encoding is requested.
	ErrUnknownEncoding = zerr.New("unknown encoding")
)
