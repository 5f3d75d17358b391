package cli

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/example/tablekeeper/internal/credstore"
	"github.com/example/tablekeeper/internal/domain/reservation"
	"github.com/example/tablekeeper/internal/domain/user"
)

func (s *Session) reserveFlow(actor reservation.Actor) error {
	if !user.Role(actor.Role).Can(user.CapReserve) {
		s.printf("Not permitted.\n")
		return nil
	}
	const failAction = "Failed to reserve table"

	phone, err := s.promptValid("Enter your phone number (e.g., 123-456-7890): ",
		"Invalid phone number format. Use XXX-XXX-XXXX.", failAction, actor, reservation.ValidPhone)
	if err != nil {
		return err
	}

	partySize, err := s.promptPartySize("Enter party size (must be at least 1): ", failAction, actor)
	if err != nil {
		return err
	}

	date, err := s.promptValid("Enter reservation date (e.g., YYYY-MM-DD, must be on or after "+s.clock.Today+"): ",
		"Invalid date format (use YYYY-MM-DD) or date is in the past.", failAction, actor,
		func(v string) bool { return reservation.ValidDate(v, s.clock) })
	if err != nil {
		return err
	}

	timeLabel := fmt.Sprintf("Enter reservation time (e.g., HH:MM in 24-hour format, must be after %02d:%02d if today): ", s.clock.Hour, s.clock.Minute)
	timeOfDay, err := s.promptValid(timeLabel,
		"Invalid time format (use HH:MM) or time is in the past for today.", failAction, actor,
		func(v string) bool { return reservation.ValidTime(v, date, s.clock) })
	if err != nil {
		return err
	}

	table, err := s.promptTable(failAction, actor)
	if err != nil {
		return err
	}

	idx, err := s.engine.Reserve(actor, actor.Name, phone, partySize, date, timeOfDay, table)
	if err != nil {
		s.printf("Error: %s\n", err)
		s.logFailure(actor, failAction, err.Error())
		s.printf("Reservation failed. Returning to menu.\n")
		return nil
	}
	s.printf("Reserved Table #%d successfully!\n", idx+1)
	return nil
}

func (s *Session) promptPartySize(label, failAction string, actor reservation.Actor) (int, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		n, ok := reservation.ParseMenuChoice(line, 1, math.MaxInt)
		if !ok {
			s.printf("Error: Invalid party size. Must be a single number >= 1 (e.g., 2, not 2a, 2.1, or 2 2).\n")
			s.logFailure(actor, failAction, "Invalid party size.")
			continue
		}
		return n, nil
	}
}

func (s *Session) promptTable(failAction string, actor reservation.Actor) (int, error) {
	n := s.engine.TableCount()
	for {
		s.printf("Available tables:\n")
		s.printAvailability()
		line, err := s.prompt(fmt.Sprintf("Enter table number to reserve (1-%d): ", n))
		if err != nil {
			return 0, err
		}
		choice, ok := reservation.ParseMenuChoice(line, 1, n)
		if !ok {
			s.printf("Error: Invalid table number. Must be a single number between 1 and %d (e.g., 1, not 1a, 1.1, or 1 1).\n", n)
			s.logFailure(actor, failAction, "Invalid table number.")
			continue
		}
		return choice - 1, nil
	}
}

// updateFlow walks through the optional fields of an update. The operator
// types "0" to keep a field; that becomes a nil field on the engine's Update
// so the literal value is never ambiguous.
func (s *Session) updateFlow(actor reservation.Actor, customer string) error {
	const failAction = "Failed to update reservation"

	id, err := s.promptValid("Enter reservation ID to update (e.g., ID 1A): ",
		"Invalid reservation ID format. Use 'ID <number>A', e.g., ID 1A.", failAction, actor,
		reservation.ValidReservationID)
	if err != nil {
		return err
	}

	s.printReservations(customer)

	var upd reservation.Update

	for {
		line, perr := s.prompt("Enter new ID (e.g., ID 2A, or 0 to keep current): ")
		if perr != nil {
			return perr
		}
		if line == "0" {
			break
		}
		if !reservation.ValidReservationID(line) {
			s.printf("Error: Invalid new reservation ID format. Use 'ID <number>A', e.g., ID 1A.\n")
			s.logFailure(actor, failAction, "Invalid new reservation ID format.")
			continue
		}
		if s.engine.IDExists(line, id) {
			s.printf("Error: New reservation ID already exists. Choose a different ID.\n")
			s.logFailure(actor, failAction, "New reservation ID already exists.")
			continue
		}
		upd.ID = &line
		break
	}

	name, err := s.prompt("Enter new name (or 0 to keep current): ")
	if err != nil {
		return err
	}
	if name != "0" {
		upd.Name = &name
	}

	for {
		line, perr := s.prompt("Enter new phone number (e.g., 123-456-7890, or 0 to keep current): ")
		if perr != nil {
			return perr
		}
		if line == "0" {
			break
		}
		if !reservation.ValidPhone(line) {
			s.printf("Error: Invalid phone number format. Use XXX-XXX-XXXX.\n")
			s.logFailure(actor, failAction, "Invalid phone number format.")
			continue
		}
		upd.Phone = &line
		break
	}

	for {
		line, perr := s.prompt("Enter new party size (must be at least 1, or 0 to keep current): ")
		if perr != nil {
			return perr
		}
		if line == "0" {
			break
		}
		n, ok := reservation.ParseMenuChoice(line, 1, math.MaxInt)
		if !ok {
			s.printf("Error: Invalid party size. Must be a single number >= 1 (e.g., 2, not 2a, 2.1, or 2 2).\n")
			s.logFailure(actor, failAction, "Invalid party size.")
			continue
		}
		upd.PartySize = &n
		break
	}

	for {
		line, perr := s.prompt("Enter new date (e.g., YYYY-MM-DD, must be on or after " + s.clock.Today + ", or 0 to keep current): ")
		if perr != nil {
			return perr
		}
		if line == "0" {
			break
		}
		if !reservation.ValidDate(line, s.clock) {
			s.printf("Error: Invalid date format (use YYYY-MM-DD) or date is in the past.\n")
			s.logFailure(actor, failAction, "Invalid date format or date is in the past.")
			continue
		}
		upd.Date = &line
		break
	}

	for {
		line, perr := s.prompt(fmt.Sprintf("Enter new time (e.g., HH:MM in 24-hour format, must be after %02d:%02d if today, or 0 to keep current): ", s.clock.Hour, s.clock.Minute))
		if perr != nil {
			return perr
		}
		if line == "0" {
			break
		}
		effDate := s.clock.Today
		if upd.Date != nil {
			effDate = *upd.Date
		}
		if !reservation.ValidTime(line, effDate, s.clock) {
			s.printf("Error: Invalid time format (use HH:MM) or time is in the past for today.\n")
			s.logFailure(actor, failAction, "Invalid time format or time is in the past.")
			continue
		}
		upd.Time = &line
		break
	}

	n := s.engine.TableCount()
	for {
		s.printf("Table options: 0 to keep current, or enter a specific table number (1-%d):\n", n)
		s.printAvailability()
		line, perr := s.prompt("Choice: ")
		if perr != nil {
			return perr
		}
		choice, ok := reservation.ParseMenuChoice(line, 0, n)
		if !ok {
			s.printf("Error: Invalid table choice. Must be a single number between 0 and %d (e.g., 1, not 1a, 1.1, or 1 1).\n", n)
			s.logFailure(actor, failAction, "Invalid table choice.")
			continue
		}
		if choice != 0 {
			idx := choice - 1
			upd.TableNumber = &idx
		}
		break
	}

	confirmed, err := s.confirmYes("Confirm update? Yes or No: ")
	if err != nil {
		return err
	}
	if !confirmed {
		s.printf("Update cancelled.\n")
		return nil
	}

	if err := s.engine.Update(actor, id, customer, upd); err != nil {
		s.printf("Error: %s\n", err)
		s.logFailure(actor, failAction, err.Error())
		s.printf("Update failed. Returning to menu.\n")
		return nil
	}
	s.printf("Reservation updated successfully.\n")
	return nil
}

func (s *Session) cancelFlow(actor reservation.Actor, customer string) error {
	const failAction = "Failed to cancel reservation"
	for {
		id, err := s.prompt("Enter reservation ID to cancel (e.g., ID 1A): ")
		if err != nil {
			return err
		}
		s.printReservations(customer)

		confirmed, err := s.confirmYes("Confirm cancellation? Yes or No: ")
		if err != nil {
			return err
		}
		if !confirmed {
			s.printf("Cancellation aborted.\n")
			return nil
		}

		if err := s.engine.Cancel(actor, id, customer); err != nil {
			s.printf("Error: %s\n", err)
			s.logFailure(actor, failAction, err.Error())
			s.printf("Please try again.\n")
			continue
		}
		s.printf("Reservation cancelled.\n")
		return nil
	}
}

func (s *Session) adminCancelFlow(actor reservation.Actor) error {
	customer, err := s.prompt("Enter customer name: ")
	if err != nil {
		return err
	}
	if !s.engine.HasReservations(customer) {
		s.printf("No reservations found for this customer.\n")
		return nil
	}

	id, err := s.prompt("Enter reservation ID to cancel (e.g., ID 1A): ")
	if err != nil {
		return err
	}
	if err := s.engine.Cancel(actor, id, customer); err != nil {
		s.printf("Error: %s\n", err)
		s.logFailure(actor, "Failed to cancel reservation", err.Error())
		return nil
	}
	s.printf("Reservation cancelled successfully.\n")
	return nil
}

func (s *Session) createReceptionistFlow(ctx context.Context, actor reservation.Actor) error {
	if !user.Role(actor.Role).Can(user.CapCreateReceptionist) {
		s.printf("Not permitted.\n")
		return nil
	}

	var username string
	for {
		u, err := s.prompt("Enter new receptionist username: ")
		if err != nil {
			return err
		}
		taken, err := s.store.Exists(ctx, user.RoleReceptionist, u)
		if err != nil {
			return err
		}
		if taken {
			s.printf("Username already exists. Please choose a different username.\n")
			continue
		}
		username = u
		break
	}

	password, err := s.prompt("Enter password: ")
	if err != nil {
		return err
	}
	if err := s.store.Create(ctx, user.RoleReceptionist, username, password); err != nil {
		if errors.Is(err, credstore.ErrExists) {
			s.printf("Username already exists. Please choose a different username.\n")
			return nil
		}
		return err
	}
	s.printf("Receptionist account created.\n")
	return nil
}
