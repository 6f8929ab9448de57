package tutorials

import (
	"log"
	"net/url"
	"strings"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/gamification"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ExtractVideoID pulls the 11-character video id out of the usual YouTube
// URL shapes (watch?v=, youtu.be/, embed/, shorts/). Returns "" when the
// URL is not recognizably YouTube.
func ExtractVideoID(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	switch host {
	case "youtu.be":
		return strings.Trim(parsed.Path, "/")
	case "youtube.com", "m.youtube.com":
		if id := parsed.Query().Get("v"); id != "" {
			return id
		}
		for _, prefix := range []string{"/embed/", "/shorts/"} {
			if strings.HasPrefix(parsed.Path, prefix) {
				rest := strings.TrimPrefix(parsed.Path, prefix)
				if i := strings.Index(rest, "/"); i >= 0 {
					rest = rest[:i]
				}
				return rest
			}
		}
	}
	return ""
}

type addInput struct {
	Title    string `json:"title" validate:"required"`
	Subject  string `json:"subject"`
	VideoURL string `json:"video_url" validate:"required,url"`
}

func AddTutorial(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	var profile models.Profile
	if err := db.Select("college", "college_key").Where("id = ?", userID).First(&profile).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", err)
	}

	input := new(addInput)
	if err := c.BodyParser(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing or invalid fields", err)
	}

	videoID := ExtractVideoID(input.VideoURL)
	if videoID == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Not a recognizable YouTube URL", nil)
	}

	tutorial := models.YoutubeTutorial{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      input.Title,
		Subject:    input.Subject,
		VideoURL:   input.VideoURL,
		VideoID:    videoID,
		College:    profile.College,
		CollegeKey: profile.CollegeKey,
	}

	if err := db.Create(&tutorial).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to add tutorial", err)
	}

	go gamification.Award(userID, "tutorial_add")

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Tutorial added successfully", tutorial)
}

func ListTutorials(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.YoutubeTutorial{}).Order("created_at desc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}
	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var tutorialList []models.YoutubeTutorial
	if err := query.Find(&tutorialList).Error; err != nil {
		log.Println("Error fetching tutorials:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch tutorials", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Tutorials fetched successfully", tutorialList)
}
