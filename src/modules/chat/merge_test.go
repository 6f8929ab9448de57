package chat

import (
	"testing"
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id int, offset time.Duration) models.ChatMessage {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.ChatMessage{ID: id, Message: "m", CreatedAt: base.Add(offset)}
}

func TestMergeByTimestampOrders(t *testing.T) {
	fetched := []models.ChatMessage{msg(1, 0), msg(3, 2*time.Minute)}
	pushed := []models.ChatMessage{msg(2, time.Minute), msg(4, 3*time.Minute)}

	got := MergeByTimestamp(fetched, pushed)

	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.Before(got[i-1].CreatedAt))
	}
	assert.Equal(t, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID}, []int{1, 2, 3, 4})
}

func TestMergeByTimestampDedupes(t *testing.T) {
	fetched := []models.ChatMessage{msg(1, 0), msg(2, time.Minute)}
	// The same message can be both fetched and pushed.
	pushed := []models.ChatMessage{msg(2, time.Minute), msg(3, 2*time.Minute)}

	got := MergeByTimestamp(fetched, pushed)
	require.Len(t, got, 3)
}

func TestMergeByTimestampIdempotent(t *testing.T) {
	fetched := []models.ChatMessage{msg(2, time.Minute), msg(1, 0)}
	pushed := []models.ChatMessage{msg(3, 2*time.Minute)}

	once := MergeByTimestamp(fetched, pushed)
	twice := MergeByTimestamp(once, pushed)
	assert.Equal(t, once, twice)
}

func TestMergeByTimestampUnsavedMessagesKept(t *testing.T) {
	// Messages echoed over the socket before the insert commits have no id
	// yet; they must not be dropped as duplicates of each other.
	pushed := []models.ChatMessage{msg(0, time.Minute), msg(0, 2*time.Minute)}

	got := MergeByTimestamp(nil, pushed)
	require.Len(t, got, 2)
}

func TestMergeByTimestampEmpty(t *testing.T) {
	assert.Empty(t, MergeByTimestamp(nil, nil))
}
