// Package cli holds the cobra command tree and the interactive menu session.
// Everything here is presentation: input is validated and converted at this
// boundary, then handed to the reservation engine as plain scalars.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/example/tablekeeper/internal/credstore"
	"github.com/example/tablekeeper/internal/domain/reservation"
	"github.com/example/tablekeeper/internal/domain/user"
)

// auditLog is the session's view of the audit sink: the engine-facing append
// port plus ordered retrieval for the view-logs menus.
type auditLog interface {
	reservation.AuditSink
	Lines() ([]string, error)
}

// Session drives one interactive run: role selection, login, and the
// role-scoped menu loops.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	engine *reservation.Engine
	store  credstore.Store
	sink   auditLog
	clock  reservation.Clock
	log    *slog.Logger
}

// NewSession wires a session over the given reader/writer pair.
func NewSession(in io.Reader, out io.Writer, engine *reservation.Engine, store credstore.Store, sink auditLog, clock reservation.Clock, log *slog.Logger) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		engine: engine,
		store:  store,
		sink:   sink,
		clock:  clock,
		log:    log,
	}
}

// Run loops on role selection until the operator exits. Exhausted input ends
// the session cleanly.
func (s *Session) Run(ctx context.Context) error {
	for {
		choice, err := s.promptChoice("\n[Role Selection]\n1. Admin\n2. Receptionist\n3. Customer\n4. Exit\nChoose role: ", 1, 4)
		if err != nil {
			return endSession(err)
		}

		switch choice {
		case 1:
			err = s.adminLogin(ctx)
		case 2:
			err = s.receptionistLogin(ctx)
		case 3:
			err = s.customerEntry(ctx)
		case 4:
			return nil
		}
		if err != nil {
			return endSession(err)
		}
	}
}

func endSession(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) adminLogin(ctx context.Context) error {
	for {
		username, err := s.prompt("Enter Admin username: ")
		if err != nil {
			return err
		}
		password, err := s.prompt("Enter Admin password: ")
		if err != nil {
			return err
		}
		if err := s.store.Authenticate(ctx, user.RoleAdmin, username, password); err != nil {
			s.printf("Invalid admin credentials. Please try again.\n")
			continue
		}
		actor := reservation.Actor{Role: string(user.RoleAdmin), Name: username}
		s.logLogin(actor)
		return s.adminMenu(ctx, actor)
	}
}

func (s *Session) receptionistLogin(ctx context.Context) error {
	for {
		username, err := s.prompt("Enter Receptionist username: ")
		if err != nil {
			return err
		}
		password, err := s.prompt("Enter password: ")
		if err != nil {
			return err
		}
		if err := s.store.Authenticate(ctx, user.RoleReceptionist, username, password); err != nil {
			s.printf("Invalid receptionist credentials. Please try again.\n")
			continue
		}
		actor := reservation.Actor{Role: string(user.RoleReceptionist), Name: username}
		s.logLogin(actor)
		return s.receptionistMenu(actor)
	}
}

func (s *Session) customerEntry(ctx context.Context) error {
	choice, err := s.promptChoice("\n1. Create Customer Account\n2. Login to Customer Account\nChoice: ", 1, 2)
	if err != nil {
		return err
	}

	var username string
	switch choice {
	case 1:
		username, err = s.createCustomerAccount(ctx)
	case 2:
		username, err = s.customerLogin(ctx)
	}
	if err != nil {
		return err
	}

	actor := reservation.Actor{Role: string(user.RoleCustomer), Name: username}
	s.logLogin(actor)
	return s.customerMenu(ctx, actor)
}

func (s *Session) createCustomerAccount(ctx context.Context) (string, error) {
	var username string
	for {
		u, err := s.prompt("Enter username: ")
		if err != nil {
			return "", err
		}
		taken, err := s.store.Exists(ctx, user.RoleCustomer, u)
		if err != nil {
			return "", err
		}
		if taken {
			s.printf("Account already exists. Please choose a different username.\n")
			continue
		}
		username = u
		break
	}
	password, err := s.prompt("Enter password: ")
	if err != nil {
		return "", err
	}
	if err := s.store.Create(ctx, user.RoleCustomer, username, password); err != nil {
		return "", err
	}
	s.printf("Customer account created.\n")
	return username, nil
}

func (s *Session) customerLogin(ctx context.Context) (string, error) {
	for {
		username, err := s.prompt("Enter username: ")
		if err != nil {
			return "", err
		}
		password, err := s.prompt("Enter password: ")
		if err != nil {
			return "", err
		}
		if err := s.store.Authenticate(ctx, user.RoleCustomer, username, password); err != nil {
			s.printf("Invalid credentials. Please try again.\n")
			continue
		}
		return username, nil
	}
}

// logLogin and logFailure write CLI-originated audit entries (logins and
// failed actions). Append errors here are diagnostics, not session killers.
func (s *Session) logLogin(actor reservation.Actor) {
	s.appendAudit(actor, "Logged in", "")
}

func (s *Session) logFailure(actor reservation.Actor, action, msg string) {
	s.appendAudit(actor, action, "Error: "+msg)
}

func (s *Session) appendAudit(actor reservation.Actor, action, details string) {
	rec := reservation.AuditRecord{
		Timestamp: s.clock.Stamp(),
		ActorRole: actor.Role,
		ActorName: actor.Name,
		Action:    action,
		Details:   details,
	}
	if err := s.sink.Append(rec); err != nil {
		s.log.Error("audit append failed", "action", action, "err", err)
	}
}
