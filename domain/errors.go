package domain

import "errors"

// ErrBoardNotFound is returned by repositories and services for unknown board IDs.
var ErrBoardNotFound = errors.New("board not found")
