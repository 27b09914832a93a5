package response

import (
	"time"

	"railway-booking/internal/data/entity"
)

type ProfileResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ProfileToResponse(profile *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        profile.ID.String(),
		FullName:  profile.FullName,
		Email:     profile.Email,
		Phone:     profile.Phone,
		CreatedAt: profile.CreatedAt,
	}
}
