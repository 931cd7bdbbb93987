package prayer

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/scripturalzealous/zealous-api/internal/mail"
)

var ErrRateLimited = errors.New("too many prayer requests")

const (
	rateLimitMax    = 5
	rateLimitWindow = 60 * time.Second
)

type PrayerService struct {
	repo        PrayerRepo
	mail        *mail.Mailer
	limiter     *RateLimiter
	notifyEmail string
}

func NewPrayerService(repo PrayerRepo, mailer *mail.Mailer, notifyEmail string) PrayerService {
	return PrayerService{
		repo:        repo,
		mail:        mailer,
		limiter:     NewRateLimiter(rateLimitMax, rateLimitWindow),
		notifyEmail: notifyEmail,
	}
}

// Submit persists a validated request and dispatches the notification email.
// The caller validates fields first; Submit enforces the per-IP rate limit.
// Mail failures are logged and swallowed, the submission still succeeds.
func (s *PrayerService) Submit(ctx context.Context, req SubmitRequest, clientIP string) (*PrayerRequest, error) {
	if !s.limiter.Allow(clientIP) {
		return nil, ErrRateLimited
	}

	pr := PrayerRequest{
		ID:            uuid.New(),
		Name:          req.Name,
		PrayerRequest: req.PrayerRequest,
		Status:        StatusPending,
		UserID:        req.UserID,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, pr, req.Email); err != nil {
		log.Printf("failed to persist prayer request: %v", err)
		return nil, ErrInternalServer
	}

	data := map[string]interface{}{
		"Name":          req.Name,
		"Email":         req.Email,
		"PrayerRequest": req.PrayerRequest,
	}
	subject := "New Prayer Request from " + req.Name

	go func() {
		if err := s.mail.SendHTML(s.notifyEmail, subject, "prayer_request.html", data); err != nil {
			log.Printf("failed to send prayer request email: %v", err)
		}
	}()

	return &pr, nil
}

// RetryAfter reports the remaining wait for a rate-limited client.
func (s *PrayerService) RetryAfter(clientIP string) time.Duration {
	return s.limiter.RetryAfter(clientIP)
}

func (s *PrayerService) ListAll(ctx context.Context) ([]PrayerRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("failed to list prayer requests: %v", err)
		return nil, err
	}
	return requests, nil
}

func (s *PrayerService) ListMine(ctx context.Context, userID int) ([]PrayerRequest, error) {
	requests, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("failed to list prayer requests for user %d: %v", userID, err)
		return nil, err
	}
	return requests, nil
}

func (s *PrayerService) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *PrayerService) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	return s.repo.UpdateNotes(ctx, id, notes)
}

func (s *PrayerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
