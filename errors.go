package sitter

import (
	"fmt"
	"strings"
)

// Error codes. Every compilation failure is a schema-authoring defect of one
// of these kinds, reported to the caller rather than aborting the process.
const (
	MalformedLeafError = iota + 1
	DuplicateRuleError
	MissingRootError
	AmbiguousRootError
	EmptyNonterminalError
	UnsupportedItemError
	BadDocumentError
	IncludeCycleError
)

// Error is a structured compilation error: a code identifying the kind of
// defect and the path of the schema entity it was detected on.
type Error struct {
	Code    int
	Path    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an Error, prefixing the message with the entity path when
// one is known.
func NewError(code int, path, msg string) *Error {
	if path != "" {
		msg = path + ": " + msg
	}
	return &Error{Code: code, Path: path, Message: msg}
}

// FormatError is NewError with printf-style message formatting.
func FormatError(code int, path, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, path, msg)
}

// ErrorList aggregates the failures of independent grammar groups, so one
// compilation run can report every broken group instead of stopping at the
// first.
type ErrorList []*Error

func (list ErrorList) Error() string {
	msgs := make([]string, len(list))
	for i, e := range list {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
