package domain

import "errors"

var (
	// ErrNotFound is returned when no project matches the given id.
	ErrNotFound = errors.New("project not found")

	// ErrForbidden is returned when the requester does not own the project.
	ErrForbidden = errors.New("not allowed to modify this project")

	// ErrDuplicateName is returned when another project already uses the
	// name (case-insensitively).
	ErrDuplicateName = errors.New("project name already exists")

	// ErrTransient is returned by the injected fault hook to simulate an
	// unreliable backend. No state changes when it fires.
	ErrTransient = errors.New("transient backend failure")
)
