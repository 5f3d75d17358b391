package reservation

import "errors"

// Reason classifies a domain error. All domain failures share one error type;
// the reason code is what callers branch on.
type Reason string

const (
	ReasonBadPhone     Reason = "bad_phone"
	ReasonBadPartySize Reason = "bad_party_size"
	ReasonBadDate      Reason = "bad_date"
	ReasonBadTime      Reason = "bad_time"
	ReasonBadTable     Reason = "bad_table"
	ReasonBadID        Reason = "bad_id"
	ReasonTableBooked  Reason = "table_booked"
	ReasonIDTaken      Reason = "id_taken"
	ReasonNotFound     Reason = "not_found"
	ReasonAuditFailed  Reason = "audit_failed"
)

// Error is the single domain error kind raised by the engine.
type Error struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func domainErr(reason Reason, msg string) *Error {
	return &Error{Reason: reason, Message: msg}
}

// IsReason reports whether err is a domain error carrying the given reason.
func IsReason(err error, r Reason) bool {
	var de *Error
	return errors.As(err, &de) && de.Reason == r
}
