package starlog

import "errors"

// ErrAlreadyExists is returned when the target experiment file (or one of its
// plot files) is already present on disk. The call writes nothing; the caller
// must pick different identifiers or remove the file manually.
var ErrAlreadyExists = errors.New("already exists")

// IsAlreadyExists reports whether err is (or wraps) ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
