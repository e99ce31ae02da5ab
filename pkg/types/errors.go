package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a command failure
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindParse
	KindAlreadyExists
	KindNotFound
	KindUnknownCommand
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindAlreadyExists:
		return "already exists"
	case KindNotFound:
		return "not found"
	case KindUnknownCommand:
		return "unknown command"
	default:
		return "none"
	}
}

// Error is a command failure carrying its kind and the line reported to the user.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is
var (
	ErrParse          = &Error{Kind: KindParse}
	ErrAlreadyExists  = &Error{Kind: KindAlreadyExists}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrUnknownCommand = &Error{Kind: KindUnknownCommand}
)

// NewError creates an error of the given kind with a formatted message
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or KindNone
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}
