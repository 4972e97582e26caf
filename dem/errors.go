package dem

import (
	"errors"
	"fmt"
)

// Error kinds returned by ReadGrid. Use errors.Is to test for them.
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrArchiveCorrupt    = errors.New("archive corrupt")
	ErrMemberUnreadable  = errors.New("member unreadable")
	ErrHeaderMalformed   = errors.New("header malformed")
	ErrPayloadTruncated  = errors.New("payload truncated")
	ErrGridIncomplete    = errors.New("grid incomplete")
	ErrGridSizeMismatch  = errors.New("grid size mismatch")
	ErrNoDataEncountered = errors.New("nodata value encountered")
)

// MemberError attaches the name of the responsible source member to an error.
type MemberError struct {
	Name string
	Err  error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *MemberError) Unwrap() error {
	return e.Err
}

func memberError(name string, err error) error {
	if err == nil {
		return nil
	}
	var me *MemberError
	if errors.As(err, &me) {
		return err
	}
	return &MemberError{Name: name, Err: err}
}
