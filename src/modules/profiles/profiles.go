package profiles

import (
	"strconv"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	var profile models.Profile
	if err := db.Where("id = ?", userID).First(&profile).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", err)
	}
	profile.Password = ""

	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile retrieved successfully", profile)
}

// UpdateProfile updates the mutable parts of a profile. The college chosen
// at signup is immutable; a college field in the form is ignored.
func UpdateProfile(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	updates := map[string]interface{}{}
	if v := c.FormValue("full_name"); v != "" {
		updates["full_name"] = v
	}
	if v := c.FormValue("branch"); v != "" {
		updates["branch"] = v
	}
	if v := c.FormValue("semester"); v != "" {
		semester, err := strconv.Atoi(v)
		if err != nil {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid semester", err)
		}
		updates["semester"] = semester
	}

	file, err := c.FormFile("profile_photo")
	if err == nil {
		path, publicURL, err := utils.UploadToSupabaseStorage(database.BucketProfiles, file)
		if err != nil {
			return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload file to storage", err)
		}
		updates["profile_pic_url"] = publicURL
		updates["profile_pic_storage_path"] = path
	}

	if len(updates) > 0 {
		if result := db.Model(&models.Profile{}).Where("id = ?", userID).Updates(updates); result.Error != nil {
			return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update profile", result.Error)
		}
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile updated successfully", nil)
}

func UploadProfilePhoto(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("profile_photo")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "File upload failed", err)
	}

	path, publicURL, err := utils.UploadToSupabaseStorage(database.BucketProfiles, file)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload file to storage", err)
	}

	updates := map[string]interface{}{
		"profile_pic_url":          publicURL,
		"profile_pic_storage_path": path,
	}

	if result := db.Model(&models.Profile{}).Where("id = ?", userID).Updates(updates); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update profile photo metadata", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Profile photo updated successfully", fiber.Map{"profile_photo_url": publicURL})
}

// GetColleges builds the filter dropdown catalog: every signup college seen
// across all profiles, merged to one display entry per grouping key.
func GetColleges(c *fiber.Ctx) error {
	db := database.DB

	var rawNames []string
	if err := db.Model(&models.Profile{}).
		Where("college IS NOT NULL AND college <> ''").
		Order("created_at asc").
		Pluck("college", &rawNames).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch colleges", err)
	}

	catalog := college.BuildCatalog(rawNames)

	return helpers.HandleSuccess(c, fiber.StatusOK, "Colleges fetched successfully", catalog)
}
