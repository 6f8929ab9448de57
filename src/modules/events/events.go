package events

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/gamification"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/notifications"
	"github.com/bharathdoli/UpsideDown-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateEvent(c *fiber.Ctx) error {
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
		return helpers.HandleError(c, fiber.StatusBadRequest, "Event title is required", nil)
	}

	eventDate, err := time.Parse(time.RFC3339, c.FormValue("event_date"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid event_date, expected RFC3339", err)
	}

	var mediaURL string
	if media, err := c.FormFile("media"); err == nil {
		_, mediaURL, err = utils.UploadToSupabaseStorage(database.BucketEvents, media)
		if err != nil {
			return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload event media", err)
		}
	}

	event := models.Event{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            title,
		Description:      c.FormValue("description"),
		EventDate:        eventDate,
		Location:         c.FormValue("location"),
		Media:            mediaURL,
		OrganizerName:    c.FormValue("organizer_name"),
		OrganizerContact: c.FormValue("organizer_contact"),
		College:          profile.College,
		CollegeKey:       profile.CollegeKey,
	}

	if err := db.Create(&event).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create event", err)
	}

	go gamification.Award(userID, "event_create")

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Event created successfully", event)
}

// ListEvents returns upcoming events soonest first, optionally scoped to a
// college filter.
func ListEvents(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.Event{}).Order("event_date asc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}
	if c.Query("upcoming") == "true" {
		query = query.Where("event_date >= ?", time.Now())
	}

	var eventList []models.Event
	if err := query.Find(&eventList).Error; err != nil {
		log.Println("Error fetching events:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch events", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Events fetched successfully", eventList)
}

func GetEvent(c *fiber.Ctx) error {
	db := database.DB
	eventID := c.Params("id")

	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Event not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Event details retrieved successfully", event)
}

// RSVP registers the caller for an event. A second RSVP for the same event
// conflicts instead of double-counting.
func RSVP(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid event ID format", err)
	}

	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "Event not found", err)
	}

	var existing models.EventRSVP
	if err := db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&existing).Error; err == nil {
		return helpers.HandleError(c, fiber.StatusConflict, "Already registered for this event", nil)
	}

	rsvp := models.EventRSVP{EventID: eventID, UserID: userID}
	if err := db.Create(&rsvp).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to register RSVP", err)
	}

	if err := db.Model(&event).Update("attendee_count", event.AttendeeCount+1).Error; err != nil {
		log.Println("Error bumping attendee count:", err)
	}

	go gamification.Award(userID, "event_rsvp")
	go notifications.Notify(event.UserID, "rsvp", fmt.Sprintf("New RSVP for %q", event.Title))

	return helpers.HandleSuccess(c, fiber.StatusCreated, "RSVP registered successfully", rsvp)
}
