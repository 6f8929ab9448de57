package studybuddy

import (
	"log"
	"strconv"
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/gamification"
	"github.com/bharathdoli/UpsideDown-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type requestInput struct {
	Subject      string `json:"subject" validate:"required"`
	Availability string `json:"availability"`
	Contact      string `json:"contact" validate:"required"`
	Description  string `json:"description"`
}

func CreateRequest(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	var profile models.Profile
	if err := db.Select("college", "college_key").Where("id = ?", userID).First(&profile).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", err)
	}

	input := new(requestInput)
	if err := c.BodyParser(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing or invalid fields", err)
	}

	request := models.StudyBuddyRequest{
		ID:           uuid.New(),
		UserID:       userID,
		Subject:      input.Subject,
		Availability: input.Availability,
		Contact:      input.Contact,
		Description:  input.Description,
		College:      profile.College,
		CollegeKey:   profile.CollegeKey,
	}

	if err := db.Create(&request).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create request", err)
	}

	go gamification.Award(userID, "studybuddy_request")

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Study buddy request created", request)
}

func ListRequests(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.StudyBuddyRequest{}).Order("created_at desc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}
	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var requests []models.StudyBuddyRequest
	if err := query.Find(&requests).Error; err != nil {
		log.Println("Error fetching study buddy requests:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch requests", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Requests fetched successfully", requests)
}

func CreateGroup(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	var profile models.Profile
	if err := db.Select("college", "college_key").Where("id = ?", userID).First(&profile).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", err)
	}

	var input struct {
		Name        string `json:"name" validate:"required"`
		Subject     string `json:"subject"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(&input); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Missing or invalid fields", err)
	}

	group := models.StudyGroup{
		Name:        input.Name,
		Subject:     input.Subject,
		Description: input.Description,
		CreatedBy:   userID,
		College:     profile.College,
		CollegeKey:  profile.CollegeKey,
	}

	if err := db.Create(&group).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create group", err)
	}

	// Creator joins their own group automatically.
	member := models.StudyGroupMember{GroupID: group.ID, UserID: userID}
	if err := db.Create(&member).Error; err != nil {
		log.Println("Error adding creator to group:", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Study group created", group)
}

func ListGroups(c *fiber.Ctx) error {
	db := database.DB

	filter := college.FilterFromQuery(c.Query("college"))

	query := db.Model(&models.StudyGroup{}).Order("created_at desc")
	if !filter.IsAll() {
		query = query.Where("college_key = ?", filter.Key())
	}

	var groups []models.StudyGroup
	if err := query.Find(&groups).Error; err != nil {
		log.Println("Error fetching study groups:", err)
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch groups", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Groups fetched successfully", groups)
}

func JoinGroup(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	groupID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid group ID format", err)
	}

	var group models.StudyGroup
	if err := db.Where("id = ?", groupID).First(&group).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "Group not found", err)
	}

	var member models.StudyGroupMember
	if err := db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member).Error; err == nil {
		return helpers.HandleError(c, fiber.StatusConflict, "Already a member of this group", nil)
	}

	member = models.StudyGroupMember{GroupID: groupID, UserID: userID}
	if err := db.Create(&member).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to join group", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Joined the group successfully", member)
}

func LeaveGroup(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	groupID := c.Params("id")

	var member models.StudyGroupMember
	if err := db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "Not a member of this group", err)
	}

	if err := db.Where("group_id = ? AND user_id = ?", groupID, userID).Delete(&models.StudyGroupMember{}).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to leave group", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Left the group successfully", nil)
}

// GetGroupMessages returns the persisted chat for a group, oldest first,
// with sender names joined in.
func GetGroupMessages(c *fiber.Ctx) error {
	db := database.DB
	groupID := c.Params("id")

	type messageWithUser struct {
		ID        int       `json:"id"`
		GroupID   int       `json:"group_id"`
		UserID    uuid.UUID `json:"user_id"`
		FullName  string    `json:"full_name"`
		Message   string    `json:"message"`
		FileURL   string    `json:"file_url"`
		CreatedAt time.Time `json:"created_at"`
	}

	var messages []messageWithUser
	query := `
		SELECT m.id, m.group_id, m.user_id, p.full_name, m.message, m.file_url, m.created_at
		FROM group_messages m
		JOIN profiles p ON m.user_id = p.id
		WHERE m.group_id = ?
		ORDER BY m.created_at ASC
	`
	if err := db.Raw(query, groupID).Scan(&messages).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch messages", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Messages fetched successfully", messages)
}

// ShareGroupFile uploads a file to the group-files bucket and records it as
// a message in the group chat.
func ShareGroupFile(c *fiber.Ctx) error {
	db := database.DB
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	groupID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid group ID format", err)
	}

	var member models.StudyGroupMember
	if err := db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusForbidden, "Join the group before sharing files", err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "File is required", err)
	}

	_, publicURL, err := utils.UploadToSupabaseStorage(database.BucketGroupFiles, file)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload file", err)
	}

	message := models.GroupMessage{
		GroupID: groupID,
		UserID:  userID,
		Message: "Shared a file: " + file.Filename,
		FileURL: publicURL,
	}
	if err := db.Create(&message).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to record shared file", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "File shared successfully", message)
}
