package domain

import (
	"errors"
	"fmt"
)

// ErrNoSource signals that the incoming reference does not describe any
// ingestible source; the caller should fall back to its entry form.
var ErrNoSource = errors.New("no ingestible source in reference")

// ErrorKind is a coarse-grained categorization for errors. The presentation
// boundary branches on it to pick a recovery affordance.
type ErrorKind string

const (
	KindMalformedData ErrorKind = "malformed_data"
	KindNotFound      ErrorKind = "not_found"
	KindUnauthorized  ErrorKind = "unauthorized"
	KindTransport     ErrorKind = "transport"
)

// MalformedReason identifies which structural rule the source data broke.
type MalformedReason string

const (
	TooManyQuadrants      MalformedReason = "TOO_MANY_QUADRANTS"
	LessThanFourQuadrants MalformedReason = "LESS_THAN_FOUR_QUADRANTS"
	TooManyRings          MalformedReason = "TOO_MANY_RINGS"
	MissingHeaders        MalformedReason = "MISSING_HEADERS"
	MissingContent        MalformedReason = "MISSING_CONTENT"
)

// malformedMessages is the user-facing copy per reason. The presentation
// layer displays these verbatim, so they must not change casually.
var malformedMessages = map[MalformedReason]string{
	TooManyQuadrants:      "There are more than 4 quadrant names listed in your data. Check the column your quadrants are entered in.",
	LessThanFourQuadrants: "There are less than 4 quadrant names listed in your data. Check the column your quadrants are entered in.",
	TooManyRings:          "More than 4 rings are listed in your data. Check the column your rings are entered in.",
	MissingHeaders:        `Document is missing one or more required headers or they are misspelled. Check that your document contains headers for "name", "ring", "quadrant", "isNew", "description".`,
	MissingContent:        "Document is missing content.",
}

// MalformedDataError reports source data that breaks a structural invariant.
type MalformedDataError struct {
	Reason MalformedReason
}

func (e *MalformedDataError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if msg, ok := malformedMessages[e.Reason]; ok {
		return msg
	}
	return string(e.Reason)
}

// SheetNotFoundError reports that the referenced document does not exist.
type SheetNotFoundError struct {
	SheetID string
}

func (e *SheetNotFoundError) Error() string {
	return "Oops! We can't find the document you've entered. Can you check the URL?"
}

// UnauthorizedError reports an authenticated fetch rejected by the source.
// Identity is the account the rejected attempt was made with, for display in
// the switch-account affordance.
type UnauthorizedError struct {
	Identity string
}

func (e *UnauthorizedError) Error() string {
	return "You are not authorized to view this document. Try a different account that has access to it."
}

// OpError wraps an underlying error with operation context and a kind. It
// covers the transport taxonomy and any infra failure that is not one of the
// dedicated error types above.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant URL or file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf classifies any pipeline error into the taxonomy. Errors that carry
// no explicit classification are transport failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var malformed *MalformedDataError
	if errors.As(err, &malformed) {
		return KindMalformedData
	}
	var notFound *SheetNotFoundError
	if errors.As(err, &notFound) {
		return KindNotFound
	}
	var unauthorized *UnauthorizedError
	if errors.As(err, &unauthorized) {
		return KindUnauthorized
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindTransport
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
