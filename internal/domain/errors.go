package domain

import "errors"

var (
	// ErrNotFound is returned when a project or node no longer exists.
	ErrNotFound = errors.New("not found")
	// ErrShapeMismatch is returned when a node is added to a project whose
	// shape has no collection for it.
	ErrShapeMismatch = errors.New("project shape does not allow this node")
	ErrEmptyTitle    = errors.New("title must not be empty")
	// ErrInvalidVideoURL is returned for links that carry no YouTube video id.
	ErrInvalidVideoURL = errors.New("invalid YouTube URL")
	ErrInvalidDate     = errors.New("date must use YYYY-MM-DD format")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidRef      = errors.New("invalid node reference")
)
