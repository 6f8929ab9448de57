package notifications

import (
	"log"
	"sync"
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Store WebSocket connections per user
var notificationClients = make(map[*websocket.Conn]string)
var mu sync.Mutex
var notificationBroadcast = make(chan pushPayload, 64)

type pushPayload struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// WebSocketHandler keeps a client registered for pushes until it hangs up.
func WebSocketHandler(c *websocket.Conn) {
	userID := c.Query("user_id")

	mu.Lock()
	notificationClients[c] = userID
	mu.Unlock()

	log.Println("New WebSocket client connected for notifications")

	defer func() {
		mu.Lock()
		delete(notificationClients, c)
		mu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			log.Println("WebSocket client disconnected:", err)
			break
		}
	}
}

// BroadcastNotifications drains the broadcast channel and pushes each
// payload to the recipient's open sockets. Run once from main.
func BroadcastNotifications() {
	for payload := range notificationBroadcast {
		mu.Lock()
		for client, userID := range notificationClients {
			if userID != payload.UserID {
				continue
			}
			if err := client.WriteJSON(payload); err != nil {
				log.Println("Error sending notification:", err)
				client.Close()
				delete(notificationClients, client)
			}
		}
		mu.Unlock()
	}
}

// Notify records a notification row and pushes it to the recipient if they
// are connected. The push is best-effort; the row is the source of truth.
func Notify(userID uuid.UUID, category, message string) {
	db := database.DB

	notification := models.Notification{
		UserID:    userID,
		Message:   message,
		Category:  category,
		CreatedAt: time.Now(),
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Println("Error saving notification:", err)
		return
	}

	select {
	case notificationBroadcast <- pushPayload{UserID: userID.String(), Category: category, Message: message}:
	default:
		log.Println("Notification broadcast channel full, dropping push")
	}
}

func GetNotifications(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	var notifications []models.Notification
	if err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch notifications", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Notifications fetched successfully", notifications)
}

func MarkRead(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	result := db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to mark notification read", result.Error)
	}
	if result.RowsAffected == 0 {
		return helpers.HandleError(c, fiber.StatusNotFound, "Notification not found", nil)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Notification marked read", nil)
}
