package chat

import (
	"sort"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
)

// MergeByTimestamp combines a fetched history with messages that arrived
// over the socket into one chronological list. Pushed messages can arrive
// out of server-timestamp order under concurrent writers, so the merge
// dedupes by id and re-sorts instead of trusting arrival order. Safe to
// apply repeatedly whenever either source updates.
func MergeByTimestamp(fetched, pushed []models.ChatMessage) []models.ChatMessage {
	merged := make([]models.ChatMessage, 0, len(fetched)+len(pushed))
	seen := make(map[int]bool, len(fetched)+len(pushed))

	for _, msg := range fetched {
		if msg.ID != 0 && seen[msg.ID] {
			continue
		}
		seen[msg.ID] = true
		merged = append(merged, msg)
	}
	for _, msg := range pushed {
		if msg.ID != 0 && seen[msg.ID] {
			continue
		}
		if msg.ID != 0 {
			seen[msg.ID] = true
		}
		merged = append(merged, msg)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID < merged[j].ID
		}
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})

	return merged
}
