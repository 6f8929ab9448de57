package issues

import (
	"log"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/gamification"
	"github.com/bharathdoli/UpsideDown-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ReportIssue(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	var profile models.Profile
	if err := db.Select("college", "college_key").Where("id = ?", userID).First(&profile).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", err)
	}

	title := c.FormValue("title")
	if title == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Issue title is required", nil)
	}

	var imageURL string
	if image, err := c.FormFile("image"); err == nil {
		_, imageURL, err = utils.UploadToSupabaseStorage(database.BucketIssues, image)
		if err != nil {
			return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload issue image", err)
		}
	}

	issue := models.Issue{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		ImageURL:    imageURL,
		Status:      models.IssueStatusOpen,
		College:     profile.College,
		CollegeKey:  profile.CollegeKey,
	}

	if err := db.Create(&issue).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to report issue", err)
	}

	go gamification.Award(userID, "issue_report")

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Issue reported successfully", issue)
}

func ListIssues(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.Issue{}).Order("created_at desc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var issueList []models.Issue
	if err := query.Find(&issueList).Error; err != nil {
		log.Println("Error fetching issues:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch issues", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Issues fetched successfully", issueList)
}

// UpdateStatus moves an issue along open -> in_progress -> resolved.
func UpdateStatus(c *fiber.Ctx) error {
	db := database.DB
	issueID := c.Params("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	switch input.Status {
	case models.IssueStatusOpen, models.IssueStatusInProgress, models.IssueStatusResolved:
	default:
		return helpers.HandleError(c, fiber.StatusBadRequest, "Unknown issue status", nil)
	}

	result := db.Model(&models.Issue{}).Where("id = ?", issueID).Update("status", input.Status)
	if result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update issue status", result.Error)
	}
	if result.RowsAffected == 0 {
		return helpers.HandleError(c, fiber.StatusNotFound, "Issue not found", nil)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Issue status updated", fiber.Map{"status": input.Status})
}
