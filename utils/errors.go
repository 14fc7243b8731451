package utils

import "errors"

// Error kinds shared by every layer. Callers wrap them with context
// (fmt.Errorf("%w: ...")) and classify with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
	ErrAlreadyMember    = errors.New("user is already a member of the group")
	ErrGroupFull        = errors.New("group is full")
	ErrStoreUnavailable = errors.New("store unavailable")
)
