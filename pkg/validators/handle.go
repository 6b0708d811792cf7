package validators

import (
	"errors"
	"regexp"
)

var (
	ErrHandleEmpty   = errors.New("no handle provided")
	ErrHandleTooLong = errors.New("handle is too long")
	ErrHandleInvalid = errors.New("handle may only contain letters, digits and underscores")

	// Handles end up in URLs so the charset stays strict
	handleRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

func HandleValidator(h string) error {
	if h == "" {
		return ErrHandleEmpty
	}

	if len(h) > 30 {
		return ErrHandleTooLong
	}

	if !handleRegex.MatchString(h) {
		return ErrHandleInvalid
	}

	return nil
}
