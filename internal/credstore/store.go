// Package credstore stores role-scoped login accounts. Passwords are kept as
// bcrypt hashes; accounts survive restarts, reservation state deliberately
// does not.
package credstore

import (
	"context"
	"errors"

	"github.com/example/tablekeeper/internal/domain/user"
)

var (
	// ErrNotFound means no account exists for that role and username.
	ErrNotFound = errors.New("account not found")
	// ErrExists means the username is already taken within the role.
	ErrExists = errors.New("username already exists")
	// ErrBadCredentials means the password did not match.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Store is the account gate consulted before a session is constructed. The
// reservation engine never touches it.
type Store interface {
	Create(ctx context.Context, role user.Role, username, password string) error
	Authenticate(ctx context.Context, role user.Role, username, password string) error
	Exists(ctx context.Context, role user.Role, username string) (bool, error)
}
