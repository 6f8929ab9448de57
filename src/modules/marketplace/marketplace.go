package marketplace

import (
	"log"
	"strconv"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/gamification"
	"github.com/bharathdoli/UpsideDown-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateListing(c *fiber.Ctx) error {
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
	contactMethod := c.FormValue("contact_method")
	if title == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Listing title is required", nil)
	}
	if contactMethod == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "A contact method is required", nil)
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid price", err)
	}

	var imageURL string
	if image, err := c.FormFile("image"); err == nil {
		_, imageURL, err = utils.UploadToSupabaseStorage(database.BucketMarketplace, image)
		if err != nil {
			return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload listing image", err)
		}
	}

	listing := models.MarketplaceListing{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   c.FormValue("description"),
		Price:         price,
		Category:      c.FormValue("category"),
		ImageURL:      imageURL,
		ContactMethod: contactMethod,
		College:       profile.College,
		CollegeKey:    profile.CollegeKey,
	}

	if err := db.Create(&listing).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create listing", err)
	}

	go gamification.Award(userID, "listing_create")

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Listing created successfully", listing)
}

func ListListings(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.MarketplaceListing{}).Order("created_at desc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}
	if c.Query("include_sold") != "true" {
		query = query.Where("sold = false")
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var listings []models.MarketplaceListing
	if err := query.Find(&listings).Error; err != nil {
		log.Println("Error fetching listings:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch listings", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Listings fetched successfully", listings)
}

// MarkSold flips a listing to sold. Only the owner may do it.
func MarkSold(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)
	listingID := c.Params("id")

	result := db.Model(&models.MarketplaceListing{}).
		Where("id = ? AND user_id = ?", listingID, userID).
		Update("sold", true)
	if result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update listing", result.Error)
	}
	if result.RowsAffected == 0 {
		return helpers.HandleError(c, fiber.StatusNotFound, "Listing not found or not yours", nil)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Listing marked as sold", nil)
}
