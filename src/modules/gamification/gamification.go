package gamification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/notifications"

	"github.com/codeGROOVE-dev/retry"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Points awarded per user action.
var actionPoints = map[string]int{
	"note_upload":        10,
	"event_create":       15,
	"event_rsvp":         5,
	"listing_create":     5,
	"issue_report":       5,
	"lostfound_post":     5,
	"tutorial_add":       5,
	"alumni_join":        10,
	"studybuddy_request": 5,
}

// PointsFor returns the point value of an action, 0 for unknown actions.
func PointsFor(action string) int {
	return actionPoints[action]
}

// Award records a point event for the action and mirrors it to the remote
// add_points procedure. Meant to run as a goroutine off the request path;
// failures are logged, never surfaced to the user.
func Award(userID uuid.UUID, action string) {
	amount := PointsFor(action)
	if amount == 0 {
		log.Printf("Unknown point action %q, skipping", action)
		return
	}

	db := database.DB
	event := models.PointEvent{
		UserID:     userID,
		Amount:     amount,
		ActionType: action,
		CreatedAt:  time.Now(),
	}
	if err := db.Create(&event).Error; err != nil {
		log.Println("Error recording point event:", err)
		return
	}

	if err := callAddPoints(context.Background(), userID.String(), amount, action); err != nil {
		log.Println("Error calling add_points RPC:", err)
	}

	awardBadges(userID)
}

// callAddPoints invokes the Supabase add_points procedure. The call crosses
// the network, so transient failures are retried with backoff.
func callAddPoints(ctx context.Context, userID string, amount int, action string) error {
	apiURL := os.Getenv("SUPABASE_URL")
	serviceKey := os.Getenv("SUPABASE_KEY")
	if apiURL == "" || serviceKey == "" {
		return fmt.Errorf("SUPABASE_URL or SUPABASE_KEY is not set in the environment variables")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"p_user_id":     userID,
		"p_amount":      amount,
		"p_action_type": action,
	})
	if err != nil {
		return fmt.Errorf("failed to encode RPC payload: %w", err)
	}

	requestURL := fmt.Sprintf("%s/rest/v1/rpc/add_points", apiURL)

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(payload))
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("apikey", serviceKey)
			req.Header.Set("Authorization", "Bearer "+serviceKey)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 500 {
				return fmt.Errorf("add_points failed with status: %s", resp.Status)
			}
			if resp.StatusCode >= 400 {
				return retry.Unrecoverable(fmt.Errorf("add_points rejected with status: %s", resp.Status))
			}
			return nil
		},
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.MaxDelay(30*time.Second),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("add_points retry %d: %v", n, err)
		}),
	)
}

// awardBadges grants any badge whose threshold the user's total now clears.
func awardBadges(userID uuid.UUID) {
	db := database.DB

	var total int
	if err := db.Model(&models.PointEvent{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		log.Println("Error summing points:", err)
		return
	}

	var badges []models.Badge
	if err := db.Find(&badges).Error; err != nil {
		log.Println("Error fetching badges:", err)
		return
	}

	names := make(map[int]string, len(badges))
	for _, badge := range badges {
		names[badge.ID] = badge.Name
	}

	for _, id := range BadgesEarned(total, badges) {
		result := db.Exec(
			"INSERT INTO user_badges (user_id, badge_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			userID, id,
		)
		if result.Error != nil {
			log.Println("Error granting badge:", result.Error)
			continue
		}
		if result.RowsAffected > 0 {
			notifications.Notify(userID, "badge", fmt.Sprintf("You earned the %s badge!", names[id]))
		}
	}
}

// BadgesEarned lists the badge IDs a point total qualifies for.
func BadgesEarned(total int, badges []models.Badge) []int {
	earned := []int{}
	for _, badge := range badges {
		if total >= badge.MinPoints {
			earned = append(earned, badge.ID)
		}
	}
	return earned
}

func GetPoints(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	var total int
	if err := db.Model(&models.PointEvent{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch points", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Points fetched successfully", fiber.Map{"points": total})
}

func GetBadges(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	var badges []models.Badge
	if err := db.Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ?", userID).
		Find(&badges).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch badges", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Badges fetched successfully", badges)
}

func GetLeaderboard(c *fiber.Ctx) error {
	db := database.DB

	limit := c.QueryInt("limit", 10)
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	type leaderboardEntry struct {
		UserID   uuid.UUID `json:"user_id"`
		FullName string    `json:"full_name"`
		College  string    `json:"college"`
		Points   int       `json:"points"`
	}

	var entries []leaderboardEntry
	query := `
		SELECT p.id AS user_id, p.full_name, p.college, COALESCE(SUM(pe.amount), 0) AS points
		FROM profiles p
		JOIN point_events pe ON pe.user_id = p.id
		GROUP BY p.id, p.full_name, p.college
		ORDER BY points DESC
		LIMIT ?
	`
	if err := db.Raw(query, limit).Scan(&entries).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch leaderboard", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Leaderboard fetched successfully", entries)
}
