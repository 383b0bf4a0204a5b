package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusAccepted))
	assert.True(t, CanTransition(StatusPending, StatusDeclined))
	assert.True(t, CanTransition(StatusPending, StatusDeleted))

	// Terminal states admit no further change.
	for _, terminal := range []string{StatusAccepted, StatusDeclined, StatusDeleted} {
		for _, to := range []string{StatusPending, StatusAccepted, StatusDeclined, StatusDeleted} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}

	assert.False(t, CanTransition(StatusPending, StatusPending))
	assert.False(t, CanTransition(StatusPending, "archived"))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusAccepted, StatusDeclined, StatusDeleted} {
		assert.True(t, IsValidStatus(status))
	}
	assert.False(t, IsValidStatus("active"))
	assert.False(t, IsValidStatus(""))
}

func TestHasCapacity(t *testing.T) {
	assert.True(t, MentorshipProfile{Capacity: 3, MenteesCount: 2}.HasCapacity())
	assert.False(t, MentorshipProfile{Capacity: 3, MenteesCount: 3}.HasCapacity())
	assert.False(t, MentorshipProfile{Capacity: 0, MenteesCount: 0}.HasCapacity())
}

func TestRequestPayloadRoundTrip(t *testing.T) {
	respondedAt := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	message := "happy to help"
	payload := RequestPayload{
		Message:         "please mentor me",
		Goals:           []string{"Learn system design", "Grow into senior"},
		ResponseMessage: &message,
		RespondedAt:     &respondedAt,
	}

	raw, err := json.Marshal(datatypes.NewJSONType(payload))
	require.NoError(t, err)

	var decoded datatypes.JSONType[RequestPayload]
	require.NoError(t, json.Unmarshal(raw, &decoded))

	got := decoded.Data()
	assert.Equal(t, payload.Message, got.Message)
	assert.Equal(t, payload.Goals, got.Goals)
	require.NotNil(t, got.ResponseMessage)
	assert.Equal(t, message, *got.ResponseMessage)
	require.NotNil(t, got.RespondedAt)
	assert.True(t, respondedAt.Equal(*got.RespondedAt))
}
