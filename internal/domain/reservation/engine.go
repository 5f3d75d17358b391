// Package reservation holds the table/reservation state machine and its
// validation rules. The engine is the single authoritative owner of table
// occupancy and the live reservation collection: after every operation the
// booked tables correspond one-to-one with live reservations, ids are
// unique, and failed calls leave state untouched.
package reservation

import "fmt"

// Engine owns the table pool and the reservation collection. It is built for
// a single interactive caller; wrap calls in a mutex if that ever changes.
type Engine struct {
	tables       []bool // true = available
	reservations []Reservation
	nextID       int
	clock        Clock
	audit        AuditSink
}

// NewEngine returns an engine with tableCount available tables.
func NewEngine(tableCount int, clock Clock, sink AuditSink) *Engine {
	tables := make([]bool, tableCount)
	for i := range tables {
		tables[i] = true
	}
	return &Engine{tables: tables, nextID: 1, clock: clock, audit: sink}
}

// TableCount returns the size of the fixed table pool.
func (e *Engine) TableCount() int { return len(e.tables) }

// Availability returns the status of every table in index order.
func (e *Engine) Availability() []TableStatus {
	out := make([]TableStatus, len(e.tables))
	for i, free := range e.tables {
		out[i] = TableStatus{Index: i, Booked: !free}
	}
	return out
}

// HasReservations reports whether the customer holds at least one live
// reservation.
func (e *Engine) HasReservations(customer string) bool {
	for _, r := range e.reservations {
		if r.CustomerName == customer {
			return true
		}
	}
	return false
}

// ReservationsFor returns copies of every live reservation held by the
// customer. An empty result is a normal outcome, not an error.
func (e *Engine) ReservationsFor(customer string) []Reservation {
	var out []Reservation
	for _, r := range e.reservations {
		if r.CustomerName == customer {
			out = append(out, r)
		}
	}
	return out
}

// IDExists reports whether some live reservation carries id, ignoring the
// reservation whose id equals exclude. The exclusion supports update's
// collision check against every record but the one being updated.
func (e *Engine) IDExists(id, exclude string) bool {
	for _, r := range e.reservations {
		if r.ID == id && r.ID != exclude {
			return true
		}
	}
	return false
}

// Reserve books a table for the customer. Validation is fail-fast in a fixed
// order: phone, party size, date, time, table range, table free. On success
// the reservation gets a freshly minted id and the occupied index is
// returned.
func (e *Engine) Reserve(actor Actor, customer, phone string, partySize int, date, timeOfDay string, table int) (int, error) {
	if !ValidPhone(phone) {
		return 0, domainErr(ReasonBadPhone, "Invalid phone number format. Use XXX-XXX-XXXX.")
	}
	if !ValidPartySize(partySize) {
		return 0, domainErr(ReasonBadPartySize, "Party size must be at least 1.")
	}
	if !ValidDate(date, e.clock) {
		return 0, domainErr(ReasonBadDate, "Invalid date format (use YYYY-MM-DD) or date is in the past.")
	}
	if !ValidTime(timeOfDay, date, e.clock) {
		return 0, domainErr(ReasonBadTime, "Invalid time format (use HH:MM) or time is in the past for today.")
	}
	if table < 0 || table >= len(e.tables) {
		return 0, domainErr(ReasonBadTable, fmt.Sprintf("Invalid table number. Must be between 1 and %d.", len(e.tables)))
	}
	if !e.tables[table] {
		return 0, domainErr(ReasonTableBooked, "Selected table is already booked.")
	}

	id := e.mintID()
	e.tables[table] = false
	e.reservations = append(e.reservations, Reservation{
		ID:           id,
		CustomerName: customer,
		PhoneNumber:  phone,
		PartySize:    partySize,
		Date:         date,
		Time:         timeOfDay,
		TableNumber:  table,
	})

	details := fmt.Sprintf("#%d for %d on %s at %s", table+1, partySize, date, timeOfDay)
	if err := e.emit(actor, "Reserved table", details); err != nil {
		return 0, err
	}
	return table, nil
}

// Cancel removes the reservation matching both id and customer and frees its
// table. The customer match is an ownership check: knowing an id is not
// enough to cancel someone else's booking. Every record matching both keys
// is removed, though id uniqueness implies at most one.
func (e *Engine) Cancel(actor Actor, id, customer string) error {
	if !ValidReservationID(id) {
		return domainErr(ReasonBadID, "Invalid reservation ID format. Use 'ID <number>A', e.g., ID 1A.")
	}
	table := -1
	for _, r := range e.reservations {
		if r.ID == id && r.CustomerName == customer {
			table = r.TableNumber
			break
		}
	}
	if table < 0 {
		return domainErr(ReasonNotFound, "No reservation to cancel.")
	}

	e.tables[table] = true
	kept := e.reservations[:0]
	for _, r := range e.reservations {
		if r.ID == id && r.CustomerName == customer {
			continue
		}
		kept = append(kept, r)
	}
	e.reservations = kept

	return e.emit(actor, "Cancelled reservation", id)
}

// Update applies a partial change to the reservation matching id and
// customer. All validations run before any field is written; the only state
// touched on a failing call is the provisional table free during
// reassignment, which is reverted before returning.
func (e *Engine) Update(actor Actor, id, customer string, upd Update) error {
	if !ValidReservationID(id) {
		return domainErr(ReasonBadID, "Invalid reservation ID format. Use 'ID <number>A', e.g., ID 1A.")
	}
	idx := -1
	for i, r := range e.reservations {
		if r.ID == id && r.CustomerName == customer {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domainErr(ReasonNotFound, "No reservation to update.")
	}

	if upd.ID != nil {
		if !ValidReservationID(*upd.ID) {
			return domainErr(ReasonBadID, "Invalid new reservation ID format. Use 'ID <number>A', e.g., ID 1A.")
		}
		if e.IDExists(*upd.ID, id) {
			return domainErr(ReasonIDTaken, "New reservation ID already exists. Choose a different ID.")
		}
	}
	if upd.Phone != nil && !ValidPhone(*upd.Phone) {
		return domainErr(ReasonBadPhone, "Invalid phone number format. Use XXX-XXX-XXXX.")
	}
	if upd.PartySize != nil && !ValidPartySize(*upd.PartySize) {
		return domainErr(ReasonBadPartySize, "Party size must be at least 1.")
	}
	if upd.Date != nil && !ValidDate(*upd.Date, e.clock) {
		return domainErr(ReasonBadDate, "Invalid date format (use YYYY-MM-DD) or date is in the past.")
	}
	if upd.Time != nil {
		// The not-in-past-for-today check runs against the incoming date when
		// one was supplied, otherwise against the reference date.
		effDate := e.clock.Today
		if upd.Date != nil {
			effDate = *upd.Date
		}
		if !ValidTime(*upd.Time, effDate, e.clock) {
			return domainErr(ReasonBadTime, "Invalid time format (use HH:MM) or time is in the past for today.")
		}
	}

	rec := &e.reservations[idx]
	if upd.TableNumber != nil {
		newTable := *upd.TableNumber
		if newTable < 0 || newTable >= len(e.tables) {
			return domainErr(ReasonBadTable, "Invalid new table index.")
		}
		oldTable := rec.TableNumber
		e.tables[oldTable] = true
		if !e.tables[newTable] {
			e.tables[oldTable] = false // revert the provisional free
			return domainErr(ReasonTableBooked, "Selected table is already booked.")
		}
		e.tables[newTable] = false
		rec.TableNumber = newTable
	}
	if upd.ID != nil {
		rec.ID = *upd.ID
	}
	if upd.Name != nil {
		rec.CustomerName = *upd.Name
	}
	if upd.Phone != nil {
		rec.PhoneNumber = *upd.Phone
	}
	if upd.PartySize != nil {
		rec.PartySize = *upd.PartySize
	}
	if upd.Date != nil {
		rec.Date = *upd.Date
	}
	if upd.Time != nil {
		rec.Time = *upd.Time
	}

	return e.emit(actor, "Updated reservation", id)
}

// mintID mints the next "ID <n>A" identifier, skipping values a caller has
// already placed on a live reservation via update.
func (e *Engine) mintID() string {
	for {
		id := fmt.Sprintf("ID %dA", e.nextID)
		e.nextID++
		if !e.IDExists(id, "") {
			return id
		}
	}
}

func (e *Engine) emit(actor Actor, action, details string) error {
	rec := AuditRecord{
		Timestamp: e.clock.Stamp(),
		ActorRole: actor.Role,
		ActorName: actor.Name,
		Action:    action,
		Details:   details,
	}
	if err := e.audit.Append(rec); err != nil {
		return &Error{Reason: ReasonAuditFailed, Message: "audit log unavailable: " + err.Error(), Err: err}
	}
	return nil
}
