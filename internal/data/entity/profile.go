package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is one-to-one with an authenticated user. The identity provider
// owns it; this service only displays it.
type Profile struct {
	ID        uuid.UUID `db:"id"` // user id
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}
