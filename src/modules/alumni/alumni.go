package alumni

import (
	"log"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/gamification"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createInput struct {
	GradYear    int    `json:"grad_year" validate:"required,gte=1950,lte=2100"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	LinkedinURL string `json:"linkedin_url"`
}

func CreateAlumniProfile(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	var profile models.Profile
	if err := db.Select("college", "college_key").Where("id = ?", userID).First(&profile).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", err)
	}

	input := new(createInput)
	if err := c.BodyParser(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing or invalid fields", err)
	}

	var existing models.AlumniProfile
	if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return helpers.HandleError(c, fiber.StatusConflict, "Alumni profile already exists", nil)
	}

	entry := models.AlumniProfile{
		ID:          uuid.New(),
		UserID:      userID,
		GradYear:    input.GradYear,
		Company:     input.Company,
		Role:        input.Role,
		LinkedinURL: input.LinkedinURL,
		College:     profile.College,
		CollegeKey:  profile.CollegeKey,
	}

	if err := db.Create(&entry).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create alumni profile", err)
	}

	go gamification.Award(userID, "alumni_join")

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Alumni profile created successfully", entry)
}

// ListAlumni returns alumni newest graduates first, optionally scoped to a
// college filter.
func ListAlumni(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.AlumniProfile{}).Order("grad_year desc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}

	var alumniList []models.AlumniProfile
	if err := query.Find(&alumniList).Error; err != nil {
		log.Println("Error fetching alumni:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch alumni", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Alumni fetched successfully", alumniList)
}
