package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session rows are issued by the external identity provider. This service
// only validates bearer tokens against them and revokes on sign-out.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
