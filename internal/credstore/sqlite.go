package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/example/tablekeeper/internal/domain/user"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS accounts (
	role TEXT NOT NULL,
	username TEXT NOT NULL,
	password_bcrypt TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (role, username)
);
`

// SQLiteStore is the embedded-database Store implementation.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the account database at path and applies the
// schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open account db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply account schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// HashPassword bcrypt-hashes a plaintext password.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// Create adds an account. Usernames are unique per role.
func (s *SQLiteStore) Create(ctx context.Context, role user.Role, username, password string) error {
	taken, err := s.Exists(ctx, role, username)
	if err != nil {
		return err
	}
	if taken {
		return ErrExists
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO accounts (role, username, password_bcrypt, created_at) VALUES (?, ?, ?, ?)`,
		string(role), username, string(hash), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// Authenticate verifies a role/username/password triple.
func (s *SQLiteStore) Authenticate(ctx context.Context, role user.Role, username, password string) error {
	row := s.db.QueryRowContext(ctx,
		`SELECT password_bcrypt FROM accounts WHERE role=? AND username=?`,
		string(role), username,
	)
	var hash string
	if err := row.Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("look up account: %w", err)
	}
	if !CheckPassword([]byte(hash), password) {
		return ErrBadCredentials
	}
	return nil
}

// Exists reports whether an account exists for the role and username.
func (s *SQLiteStore) Exists(ctx context.Context, role user.Role, username string) (bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE role=? AND username=?)`,
		string(role), username,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("look up account: %w", err)
	}
	return exists, nil
}

// EnsureAdmin seeds the configured admin account when missing. The password
// is not rewritten for an existing admin so a changed config value never
// silently rotates credentials.
func (s *SQLiteStore) EnsureAdmin(ctx context.Context, username, password string) error {
	err := s.Create(ctx, user.RoleAdmin, username, password)
	if errors.Is(err, ErrExists) {
		return nil
	}
	return err
}
