package prayer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitRequestValidateOK(t *testing.T) {
	req := SubmitRequest{
		Name:          "Jordan",
		Email:         "jordan@example.com",
		PrayerRequest: "Please pray for my family this week.",
	}
	assert.Empty(t, req.Validate())
}

func TestSubmitRequestValidateEmailOptional(t *testing.T) {
	req := SubmitRequest{
		Name:          "Jordan",
		PrayerRequest: "Please pray for my family this week.",
	}
	assert.Empty(t, req.Validate())
}

func TestSubmitRequestValidateMissingFields(t *testing.T) {
	errs := SubmitRequest{}.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "prayer_request")
}

func TestSubmitRequestValidateLengthBounds(t *testing.T) {
	req := SubmitRequest{
		Name:          strings.Repeat("a", 101),
		PrayerRequest: strings.Repeat("b", 3000),
	}
	errs := req.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "prayer_request")

	// Exactly at the bounds is fine.
	req = SubmitRequest{
		Name:          strings.Repeat("a", 100),
		PrayerRequest: strings.Repeat("b", 2000),
	}
	assert.Empty(t, req.Validate())
}

func TestSubmitRequestValidateBadEmail(t *testing.T) {
	req := SubmitRequest{
		Name:          "Jordan",
		Email:         "not-an-email",
		PrayerRequest: "Please pray for me.",
	}
	errs := req.Validate()
	assert.Contains(t, errs, "email")
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "prayed", "followed_up"} {
		got, ok := ParseStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, Status(valid), got)
	}

	_, ok := ParseStatus("archived")
	assert.False(t, ok)
}
