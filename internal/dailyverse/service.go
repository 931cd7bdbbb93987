package dailyverse

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// VerseFetcher is what the service needs from the gateway; tests swap in a
// stub.
type VerseFetcher interface {
	FetchVerse(ctx context.Context, feelings []string, date string) (*DailyVerse, error)
}

type DailyVerseService struct {
	store    Store
	feelings FeelingsRepo
	gateway  VerseFetcher

	now func() time.Time // overridable in tests
}

func NewDailyVerseService(store Store, feelings FeelingsRepo, gateway VerseFetcher) DailyVerseService {
	return DailyVerseService{
		store:    store,
		feelings: feelings,
		gateway:  gateway,
		now:      time.Now,
	}
}

func userScope(userID int) string {
	return fmt.Sprintf("user:%d", userID)
}

func (s *DailyVerseService) today() string {
	return s.now().Format("2006-01-02")
}

// GetDailyVerse returns the verse of the day for the caller, generating and
// caching it on first request. Anonymous callers share one entry per day.
// Rate-limit and payment errors from the gateway propagate so the handler
// can pass the status through; anything else degrades to the fallback verse.
func (s *DailyVerseService) GetDailyVerse(ctx context.Context, userID *int, req DailyVerseRequest) (*DailyVerse, error) {
	date := req.Date
	if date == "" {
		date = s.today()
	}

	scope := ScopeAnonymous
	if userID != nil {
		scope = userScope(*userID)
	}

	if cached, err := s.store.Get(ctx, scope, date); err != nil {
		log.Printf("daily verse cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	feelings := req.UserFeelings
	if userID != nil {
		stored, err := s.feelings.List(ctx, *userID)
		if err != nil {
			log.Printf("failed to load feelings for user %d: %v", *userID, err)
		} else if len(stored) > 0 {
			feelings = stored
		}
	}

	verse, err := s.gateway.FetchVerse(ctx, feelings, date)
	if err != nil {
		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrPaymentRequired) {
			return nil, err
		}
		log.Printf("daily verse generation failed: %v", err)
		fallback := FallbackVerse
		return &fallback, nil
	}

	if err := s.store.Set(ctx, scope, date, *verse); err != nil {
		log.Printf("daily verse cache write failed: %v", err)
	}
	return verse, nil
}

// AddFeeling appends to the caller's rolling personalization window.
func (s *DailyVerseService) AddFeeling(ctx context.Context, userID int, feeling string) error {
	return s.feelings.Append(ctx, userID, feeling)
}

func (s *DailyVerseService) ListFeelings(ctx context.Context, userID int) ([]string, error) {
	return s.feelings.List(ctx, userID)
}

// RefreshShared pre-generates today's anonymous verse and drops cache rows
// from past days. Called by the scheduler.
func (s *DailyVerseService) RefreshShared(ctx context.Context) {
	today := s.today()

	if err := s.store.Prune(ctx, today); err != nil {
		log.Printf("failed to prune daily verse cache: %v", err)
	}

	if _, err := s.GetDailyVerse(ctx, nil, DailyVerseRequest{Date: today}); err != nil {
		log.Printf("failed to refresh shared daily verse: %v", err)
		return
	}
	log.Println("Shared daily verse refreshed")
}
