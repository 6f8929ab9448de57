package chat

import (
	"log"
	"sync"
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/college"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/helpers"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// One chat room per college key; connections are grouped by the key so
// cosmetic spelling variants of the same college land in the same room.
var roomConnections = make(map[string][]*websocket.Conn)
var mu sync.Mutex

// WebSocketUpgrade guards the chat socket route.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebSocketConnHandler runs one college chat connection: join the room for
// the college in the path, persist every incoming message, echo it to the
// other members.
func WebSocketConnHandler(conn *websocket.Conn) {
	userIDStr := conn.Query("user_id")
	if userIDStr == "" {
		log.Println("user_id missing in WebSocket connection")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		log.Println("Error parsing userID:", err)
		return
	}

	roomKey := college.KeyOf(college.Prettify(conn.Params("college")))
	if roomKey == "" {
		log.Println("Cannot derive a college key for chat room:", conn.Params("college"))
		return
	}

	mu.Lock()
	roomConnections[roomKey] = append(roomConnections[roomKey], conn)
	mu.Unlock()

	defer conn.Close()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			log.Println("Error reading message:", err)
			break
		}

		message := &models.ChatMessage{
			CollegeKey: roomKey,
			UserID:     userID,
			Message:    string(msg),
			CreatedAt:  time.Now(),
		}

		go func() {
			if err := saveMessage(message); err != nil {
				log.Println("Error saving message to database:", err)
			}
		}()

		mu.Lock()
		for _, otherConn := range roomConnections[roomKey] {
			if otherConn == conn {
				continue
			}
			if err := otherConn.WriteMessage(msgType, msg); err != nil {
				log.Printf("Error sending message to %v: %v", otherConn.RemoteAddr(), err)
			}
		}
		mu.Unlock()
	}

	mu.Lock()
	for i, ws := range roomConnections[roomKey] {
		if ws == conn {
			roomConnections[roomKey] = append(roomConnections[roomKey][:i], roomConnections[roomKey][i+1:]...)
			break
		}
	}
	mu.Unlock()

	log.Println("WebSocket connection closed for chat room:", roomKey)
}

func saveMessage(message *models.ChatMessage) error {
	db := database.DB
	if result := db.Create(message); result.Error != nil {
		return result.Error
	}
	return nil
}

// GetMessages returns the chat history for a college room, oldest first.
func GetMessages(c *fiber.Ctx) error {
	db := database.DB

	roomKey := college.KeyOf(college.Prettify(c.Params("college")))
	if roomKey == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Cannot derive a college key", nil)
	}

	var messages []models.ChatMessage
	if err := db.Where("college_key = ?", roomKey).
		Order("created_at asc").
		Limit(200).
		Find(&messages).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch messages", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Messages fetched successfully", messages)
}
