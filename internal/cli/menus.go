package cli

import (
	"context"

	"github.com/example/tablekeeper/internal/domain/reservation"
	"github.com/example/tablekeeper/internal/domain/user"
)

func (s *Session) customerMenu(ctx context.Context, actor reservation.Actor) error {
	for {
		choice, err := s.promptChoice("\n[Customer Menu - "+actor.Name+"]\n1. View My Reservations\n2. Reserve Table\n3. View Availability\n4. Update Reservation\n5. Cancel Reservation\n6. Exit\nChoice: ", 1, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			s.printReservations(actor.Name)
		case 2:
			err = s.reserveFlow(actor)
		case 3:
			s.printAvailability()
		case 4:
			if !s.engine.HasReservations(actor.Name) {
				s.printf("No reservations.\n")
				break
			}
			err = s.updateFlow(actor, actor.Name)
		case 5:
			if !s.engine.HasReservations(actor.Name) {
				s.printf("No reservations.\n")
				break
			}
			err = s.cancelFlow(actor, actor.Name)
		case 6:
			out, cerr := s.confirmYes("Logout? Yes or No: ")
			if cerr != nil {
				return cerr
			}
			if out {
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) receptionistMenu(actor reservation.Actor) error {
	for {
		choice, err := s.promptChoice("\n[Receptionist Menu - "+actor.Name+"]\n1. View Logs\n2. View Table Availability\n3. Exit\nChoice: ", 1, 3)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			s.printLogs(actor)
		case 2:
			s.printAvailability()
		case 3:
			out, cerr := s.confirmYes("Logout? Yes or No: ")
			if cerr != nil {
				return cerr
			}
			if out {
				return nil
			}
		}
	}
}

func (s *Session) adminMenu(ctx context.Context, actor reservation.Actor) error {
	for {
		choice, err := s.promptChoice("\n[Admin Menu - "+actor.Name+"]\n1. View Logs\n2. View Table Availability\n3. Update Reservation\n4. Cancel Reservation\n5. Create Receptionist Account\n6. Exit\nChoice: ", 1, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			s.printLogs(actor)
		case 2:
			s.printAvailability()
		case 3:
			customer, perr := s.prompt("Enter customer name: ")
			if perr != nil {
				return perr
			}
			if !s.engine.HasReservations(customer) {
				s.printf("No reservations found for this customer.\n")
				break
			}
			err = s.updateFlow(actor, customer)
		case 4:
			err = s.adminCancelFlow(actor)
		case 5:
			err = s.createReceptionistFlow(ctx, actor)
		case 6:
			out, cerr := s.confirmYes("Logout? Yes or No: ")
			if cerr != nil {
				return cerr
			}
			if out {
				return nil
			}
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) printAvailability() {
	for _, t := range s.engine.Availability() {
		status := "AVAILABLE"
		if t.Booked {
			status = "BOOKED"
		}
		s.printf("Table %d is %s\n", t.Index+1, status)
	}
}

func (s *Session) printReservations(customer string) {
	s.printf("\n--- Reservations for %s ---\n", customer)
	rs := s.engine.ReservationsFor(customer)
	if len(rs) == 0 {
		s.printf("No reservation to view.\n")
		return
	}
	for _, r := range rs {
		s.printf("ID: %s, Name: %s, Contact: %s, Party Size: %d, Date: %s, Time: %s, Table: %d\n",
			r.ID, r.CustomerName, r.PhoneNumber, r.PartySize, r.Date, r.Time, r.TableNumber+1)
	}
}

func (s *Session) printLogs(actor reservation.Actor) {
	if !user.Role(actor.Role).Can(user.CapViewLogs) {
		s.printf("Not permitted.\n")
		return
	}
	lines, err := s.sink.Lines()
	if err != nil {
		s.printf("Unable to open log file.\n")
		s.log.Error("read audit log failed", "err", err)
		return
	}
	s.printf("--- System Logs ---\n\n")
	for _, line := range lines {
		s.printf("%s\n", line)
	}
}
