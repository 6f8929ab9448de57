package lostfound

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

func CreatePost(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	var profile models.Profile
	if err := db.Select("college", "college_key").Where("id = ?", userID).First(&profile).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", err)
	}

	kind := c.FormValue("kind")
	if kind != models.LostFoundKindLost && kind != models.LostFoundKindFound {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Kind must be lost or found", nil)
	}
	title := c.FormValue("title")
	if title == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Post title is required", nil)
	}

	var imageURL string
	if image, err := c.FormFile("image"); err == nil {
		_, imageURL, err = utils.UploadToSupabaseStorage(database.BucketLostFound, image)
		if err != nil {
			return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload image", err)
		}
	}

	post := models.LostFoundPost{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Title:       title,
		Description: c.FormValue("description"),
		Location:    c.FormValue("location"),
		ImageURL:    imageURL,
		College:     profile.College,
		CollegeKey:  profile.CollegeKey,
	}

	if err := db.Create(&post).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create post", err)
	}

	go gamification.Award(userID, "lostfound_post")

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Post created successfully", post)
}

func ListPosts(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.LostFoundPost{}).Order("created_at desc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if c.Query("include_resolved") != "true" {
		query = query.Where("resolved = false")
	}

	var posts []models.LostFoundPost
	if err := query.Find(&posts).Error; err != nil {
		log.Println("Error fetching lost and found posts:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch posts", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Posts fetched successfully", posts)
}

// Resolve closes a post. Only the owner may do it.
func Resolve(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)
	postID := c.Params("id")

	result := db.Model(&models.LostFoundPost{}).
		Where("id = ? AND user_id = ?", postID, userID).
		Update("resolved", true)
	if result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to resolve post", result.Error)
	}
	if result.RowsAffected == 0 {
		return helpers.HandleError(c, fiber.StatusNotFound, "Post not found or not yours", nil)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Post resolved", nil)
}
