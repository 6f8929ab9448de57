package notes

import (
	"fmt"
	"log"
	"strconv"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/gamification"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/notifications"
	"github.com/bharathdoli/UpsideDown-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateNote uploads a study note. The file goes to the notes bucket first;
// if the row insert then fails the blob is orphaned, which is accepted.
func CreateNote(c *fiber.Ctx) error {
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
	subject := c.FormValue("subject")
	if title == "" || subject == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Title and subject are required", nil)
	}
	semester, _ := strconv.Atoi(c.FormValue("semester"))

	file, err := c.FormFile("file")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Note file is required", err)
	}

	path, publicURL, err := utils.UploadToSupabaseStorage(database.BucketNotes, file)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload note file", err)
	}

	note := models.Note{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           title,
		Subject:         subject,
		Semester:        semester,
		Description:     c.FormValue("description"),
		FileURL:         publicURL,
		FileStoragePath: path,
		FileSize:        file.Size,
		College:         profile.College,
		CollegeKey:      profile.CollegeKey,
	}

	if err := db.Create(&note).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create note", err)
	}

	go gamification.Award(userID, "note_upload")
	go notifications.Notify(userID, "note", fmt.Sprintf("Your note %q is live", note.Title))

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Note uploaded successfully", note)
}

// ListNotes returns notes newest first, optionally scoped to the college
// selected in the ?college= query.
func ListNotes(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.Note{}).Order("created_at desc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}
	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var noteList []models.Note
	if err := query.Find(&noteList).Error; err != nil {
		log.Println("Error fetching notes:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch notes", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Notes fetched successfully", noteList)
}

func GetNote(c *fiber.Ctx) error {
	db := database.DB
	noteID := c.Params("id")

	var note models.Note
	if err := db.Where("id = ?", noteID).First(&note).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "Note not found", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Note details retrieved successfully", note)
}

// RegisterDownload bumps the download counter and hands back the file URL.
func RegisterDownload(c *fiber.Ctx) error {
	db := database.DB
	noteID := c.Params("id")

	var note models.Note
	if err := db.Where("id = ?", noteID).First(&note).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "Note not found", err)
	}

	if err := db.Model(&note).Update("downloads", note.Downloads+1).Error; err != nil {
		log.Println("Error bumping download count:", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Download registered", fiber.Map{"file_url": note.FileURL})
}
