// Package errortypes defines the errors reported by the parser and renderer.
package errortypes

import "errors"

// ErrFilePos extends the error interface to add details on the file position where the error occurred.
type ErrFilePos interface {
	error
	File() string
	Line() int
	Col() int
}

// IsErrFilePos identifies whether or not the provided error, or an error it
// wraps, is of the ErrFilePos type.
// Wrapped errors are unwrapped via errors.Unwrap.
func IsErrFilePos(err error) bool {
	return ToErrFilePos(err) != nil
}

// ToErrFilePos converts the input error to an ErrFilePos if possible, or nil if not.
// If IsErrFilePos returns true, this will not return nil.
func ToErrFilePos(err error) ErrFilePos {
	if err == nil {
		return nil
	}
	var out ErrFilePos
	if errors.As(err, &out) {
		return out
	}
	return nil
}
