package prayer

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusPrayed     Status = "prayed"
	StatusFollowedUp Status = "followed_up"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusPrayed, StatusFollowedUp:
		return Status(s), true
	}
	return "", false
}

const (
	maxNameLen   = 100
	maxPrayerLen = 2000
)

type PrayerRequest struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	PrayerRequest string    `json:"prayer_request"`
	Status        Status    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	UserID        *int      `json:"user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type SubmitRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	PrayerRequest string `json:"prayer_request"`
	UserID        *int   `json:"user_id,omitempty"`
}

// Validate checks field presence and length bounds. A non-empty result map
// means the submission must be rejected before anything is persisted or
// mailed.
func (r SubmitRequest) Validate() map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) > maxNameLen {
		errs["name"] = "Name must be 100 characters or fewer"
	}

	text := strings.TrimSpace(r.PrayerRequest)
	if text == "" {
		errs["prayer_request"] = "Prayer request is required"
	} else if len(text) > maxPrayerLen {
		errs["prayer_request"] = "Prayer request must be 2000 characters or fewer"
	}

	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			errs["email"] = "Email address is not valid"
		}
	}

	return errs
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}
