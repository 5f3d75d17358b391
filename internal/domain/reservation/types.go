package reservation

import "fmt"

// TableStatus reports the occupancy of one table slot.
type TableStatus struct {
	Index  int
	Booked bool
}

// Reservation is one booked seating. The engine owns every instance;
// callers only ever see copies.
type Reservation struct {
	ID           string
	CustomerName string
	PhoneNumber  string
	PartySize    int
	Date         string // YYYY-MM-DD
	Time         string // HH:MM, 24-hour
	TableNumber  int    // zero-based index into the table pool
}

// Update describes a partial change to a reservation. A nil field means
// "leave unchanged".
type Update struct {
	ID          *string
	Name        *string
	Phone       *string
	PartySize   *int
	Date        *string
	Time        *string
	TableNumber *int
}

// Clock is the "now" reference used by date/time validation. It is plain
// configuration, not the wall clock, so behavior is deterministic.
type Clock struct {
	Today  string // YYYY-MM-DD
	Hour   int
	Minute int
}

// Stamp renders the reference instant as an audit timestamp.
func (c Clock) Stamp() string {
	return fmt.Sprintf("%s %02d:%02d:00", c.Today, c.Hour, c.Minute)
}

// Actor identifies who is performing an engine operation, for the audit trail.
type Actor struct {
	Role string
	Name string
}

// AuditRecord is one entry emitted per successful mutating operation.
type AuditRecord struct {
	Timestamp string
	ActorRole string
	ActorName string
	Action    string
	Details   string
}

// AuditSink is the output port the engine writes audit records to.
// Implementations must preserve emission order.
type AuditSink interface {
	Append(rec AuditRecord) error
}
