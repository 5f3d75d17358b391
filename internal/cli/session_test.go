package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/tablekeeper/internal/credstore"
	"github.com/example/tablekeeper/internal/domain/reservation"
	"github.com/example/tablekeeper/internal/domain/user"
)

type memStore struct {
	passwords map[string]string
}

func newMemStore() *memStore {
	return &memStore{passwords: make(map[string]string)}
}

func key(role user.Role, username string) string {
	return string(role) + "/" + username
}

func (m *memStore) Create(_ context.Context, role user.Role, username, password string) error {
	k := key(role, username)
	if _, ok := m.passwords[k]; ok {
		return credstore.ErrExists
	}
	m.passwords[k] = password
	return nil
}

func (m *memStore) Authenticate(_ context.Context, role user.Role, username, password string) error {
	stored, ok := m.passwords[key(role, username)]
	if !ok {
		return credstore.ErrNotFound
	}
	if stored != password {
		return credstore.ErrBadCredentials
	}
	return nil
}

func (m *memStore) Exists(_ context.Context, role user.Role, username string) (bool, error) {
	_, ok := m.passwords[key(role, username)]
	return ok, nil
}

type memAudit struct {
	actions []string
	lines   []string
}

func (m *memAudit) Append(rec reservation.AuditRecord) error {
	m.actions = append(m.actions, rec.Action)
	m.lines = append(m.lines, rec.Action+" "+rec.Details)
	return nil
}

func (m *memAudit) Lines() ([]string, error) {
	return m.lines, nil
}

var sessionClock = reservation.Clock{Today: "2025-05-19", Hour: 22, Minute: 19}

func runScript(t *testing.T, store credstore.Store, sink *memAudit, script string) (*reservation.Engine, string) {
	t.Helper()
	engine := reservation.NewEngine(10, sessionClock, sink)
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess := NewSession(strings.NewReader(script), &out, engine, store, sink, sessionClock, logger)
	require.NoError(t, sess.Run(context.Background()))
	return engine, out.String()
}

func TestCustomerSignupAndReserve(t *testing.T) {
	script := strings.Join([]string{
		"3",            // role: customer
		"1",            // create account
		"alice",        // username
		"pw",           // password
		"2",            // menu: reserve table
		"555-123-4567", // phone
		"2",            // party size
		"2025-05-20",   // date
		"18:00",        // time
		"1",            // table 1
		"1",            // menu: view my reservations
		"6",            // menu: exit
		"Yes",          // confirm logout
		"4",            // role selection: exit
	}, "\n") + "\n"

	sink := &memAudit{}
	engine, out := runScript(t, newMemStore(), sink, script)

	assert.Contains(t, out, "Customer account created.")
	assert.Contains(t, out, "Reserved Table #1 successfully!")
	assert.Contains(t, out, "ID: ID 1A")
	assert.True(t, engine.Availability()[0].Booked)
	assert.Contains(t, sink.actions, "Logged in")
	assert.Contains(t, sink.actions, "Reserved table")
}

func TestCustomerInvalidInputRetries(t *testing.T) {
	script := strings.Join([]string{
		"3",            // role: customer
		"1",            // create account
		"bob",          // username
		"pw",           // password
		"2",            // menu: reserve table
		"not-a-phone",  // rejected
		"555-987-6543", // accepted
		"2a",           // rejected party size
		"3",            // accepted
		"2025-05-18",   // past date, rejected
		"2025-05-21",   // accepted
		"25:00",        // rejected time
		"19:30",        // accepted
		"11",           // rejected table number
		"2",            // accepted
		"6",            // menu: exit
		"yes",          // confirm logout
		"4",            // role selection: exit
	}, "\n") + "\n"

	sink := &memAudit{}
	engine, out := runScript(t, newMemStore(), sink, script)

	assert.Contains(t, out, "Error: Invalid phone number format. Use XXX-XXX-XXXX.")
	assert.Contains(t, out, "Error: Invalid party size.")
	assert.Contains(t, out, "Error: Invalid date format (use YYYY-MM-DD) or date is in the past.")
	assert.Contains(t, out, "Error: Invalid time format (use HH:MM) or time is in the past for today.")
	assert.Contains(t, out, "Error: Invalid table number.")
	assert.Contains(t, out, "Reserved Table #2 successfully!")
	assert.True(t, engine.Availability()[1].Booked)
	assert.Contains(t, sink.lines, "Failed to reserve table Error: Invalid phone number format. Use XXX-XXX-XXXX.")
}

func TestAdminCreatesReceptionistAndViewsLogs(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Create(context.Background(), user.RoleAdmin, "admin", "admin123"))

	script := strings.Join([]string{
		"1",        // role: admin
		"admin",    // username
		"admin123", // password
		"5",        // create receptionist
		"rec1",     // username
		"pw",       // password
		"1",        // view logs
		"6",        // exit
		"Yes",      // confirm logout
		"4",        // role selection: exit
	}, "\n") + "\n"

	sink := &memAudit{}
	_, out := runScript(t, store, sink, script)

	assert.Contains(t, out, "Receptionist account created.")
	assert.Contains(t, out, "--- System Logs ---")
	ok, err := store.Exists(context.Background(), user.RoleReceptionist, "rec1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReceptionistMenu(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Create(context.Background(), user.RoleReceptionist, "rec", "pw"))

	script := strings.Join([]string{
		"2",   // role: receptionist
		"rec", // username
		"pw",  // password
		"2",   // view availability
		"3",   // exit
		"Yes", // confirm logout
		"4",   // role selection: exit
	}, "\n") + "\n"

	sink := &memAudit{}
	_, out := runScript(t, store, sink, script)

	assert.Contains(t, out, "Table 1 is AVAILABLE")
	assert.Contains(t, out, "Table 10 is AVAILABLE")
}

func TestInvalidRoleChoiceRetries(t *testing.T) {
	sink := &memAudit{}
	_, out := runScript(t, newMemStore(), sink, "9\n4\n")
	assert.Contains(t, out, "Invalid choice.")
}

func TestSessionEndsCleanlyOnEOF(t *testing.T) {
	sink := &memAudit{}
	_, _ = runScript(t, newMemStore(), sink, "")
}
