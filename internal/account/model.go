package account

import (
	"time"

	"github.com/gofrs/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is a registered identity. Secret holds the bcrypt hash of the
// password; the stored JSON keeps the original app's "password" field name.
// Accounts are append-only: there is no update or delete path.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Secret    string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the public projection of exactly one account. At most one
// session is persisted at a time; it is the sole authority for the current
// user.
type Session struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

func (a Account) Session() Session {
	return Session{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
