package split

import (
	"errors"
	"fmt"
)

// Kind identifies a validation failure category.
type Kind string

const (
	// KindMalformedAmount means an amount string did not parse as a
	// non-negative exact decimal
	KindMalformedAmount Kind = "malformed_amount"

	// KindEmptySplit means no shares were provided
	KindEmptySplit Kind = "empty_split"

	// KindDuplicateParticipant means a user id appears more than once
	KindDuplicateParticipant Kind = "duplicate_participant"

	// KindPaidMismatch means the paid shares do not sum to the total cost
	KindPaidMismatch Kind = "paid_mismatch"

	// KindOwedMismatch means the owed shares do not sum to the total cost
	KindOwedMismatch Kind = "owed_mismatch"

	// KindCallerExcluded means the acting user is not in the split
	KindCallerExcluded Kind = "caller_excluded"
)

var errNegativeAmount = errors.New("amount is negative")

// Error is a structured validation failure. All kinds are recoverable by
// the caller supplying corrected input; none are fatal.
type Error struct {
	Kind     Kind
	Field    string
	UserID   int64
	Expected string
	Got      string
	Message  string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Is matches errors of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// IsKind reports whether err is a validation error of the given kind.
func IsKind(err error, kind Kind) bool {
	var verr *Error
	if !errors.As(err, &verr) {
		return false
	}
	return verr.Kind == kind
}

func malformedAmount(field string, userID int64, value string) *Error {
	msg := fmt.Sprintf("%s %q is not a valid non-negative decimal amount", field, value)
	if userID != 0 {
		msg = fmt.Sprintf("%s for user %d: %s", field, userID, msg)
	}
	return &Error{
		Kind:    KindMalformedAmount,
		Field:   field,
		UserID:  userID,
		Got:     value,
		Message: msg,
	}
}

func emptySplit() *Error {
	return &Error{
		Kind:    KindEmptySplit,
		Message: "at least one participant share is required",
	}
}

func duplicateParticipant(userID int64) *Error {
	return &Error{
		Kind:    KindDuplicateParticipant,
		UserID:  userID,
		Message: fmt.Sprintf("user %d appears more than once in the split", userID),
	}
}

func paidMismatch(expected, got string) *Error {
	return &Error{
		Kind:     KindPaidMismatch,
		Expected: expected,
		Got:      got,
		Message:  fmt.Sprintf("total paid (%s) must equal expense cost (%s)", got, expected),
	}
}

func owedMismatch(expected, got string) *Error {
	return &Error{
		Kind:     KindOwedMismatch,
		Expected: expected,
		Got:      got,
		Message:  fmt.Sprintf("total owed (%s) must equal expense cost (%s)", got, expected),
	}
}

func callerExcluded(userID int64) *Error {
	return &Error{
		Kind:    KindCallerExcluded,
		UserID:  userID,
		Message: fmt.Sprintf("your user id (%d) must be included in the split", userID),
	}
}
