package gamification

import (
	"testing"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"

	"github.com/stretchr/testify/assert"
)

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 10, PointsFor("note_upload"))
	assert.Equal(t, 15, PointsFor("event_create"))
	assert.Equal(t, 5, PointsFor("event_rsvp"))
	assert.Equal(t, 0, PointsFor("unknown_action"))
	assert.Equal(t, 0, PointsFor(""))
}

func TestBadgesEarned(t *testing.T) {
	badges := []models.Badge{
		{ID: 1, Name: "Newcomer", MinPoints: 10},
		{ID: 2, Name: "Contributor", MinPoints: 50},
		{ID: 3, Name: "Campus Legend", MinPoints: 200},
	}

	assert.Empty(t, BadgesEarned(0, badges))
	assert.Equal(t, []int{1}, BadgesEarned(10, badges))
	assert.Equal(t, []int{1, 2}, BadgesEarned(75, badges))
	assert.Equal(t, []int{1, 2, 3}, BadgesEarned(500, badges))
	assert.Empty(t, BadgesEarned(100, nil))
}
