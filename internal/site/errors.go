package site

import "errors"

var (
	// ErrMissingFile means an expected site document is absent. The caller
	// skips that document and continues with the rest of the run.
	ErrMissingFile = errors.New("file not found")

	// ErrMalformedDocument means a document is missing the structural
	// markers an operation needs (e.g. the <ul>...</ul> entry block).
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnknownGame means a game identifier outside the fixed game set.
	ErrUnknownGame = errors.New("unknown game")
)
