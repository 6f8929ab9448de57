package studybuddy

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

var groupConnections = make(map[string][]*websocket.Conn)
var chatMu sync.Mutex

// GroupChatUpgrade guards the group chat socket route.
func GroupChatUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// GroupChatConnHandler runs one group chat connection: membership is
// checked on join, messages are persisted and echoed to the other members.
func GroupChatConnHandler(conn *websocket.Conn) {
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

	groupIDStr := conn.Params("id")
	groupID, err := strconv.Atoi(groupIDStr)
	if err != nil {
		log.Println("Error converting groupID to int:", err)
		return
	}

	db := database.DB
	var member models.StudyGroupMember
	if err := db.Where("group_id = ? AND user_id = ?", groupID, userID).First(&member).Error; err != nil {
		log.Printf("User %s is not a member of group %d, closing socket", userID, groupID)
		conn.Close()
		return
	}

	chatMu.Lock()
	groupConnections[groupIDStr] = append(groupConnections[groupIDStr], conn)
	chatMu.Unlock()

	defer conn.Close()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			log.Println("Error reading message:", err)
			break
		}

		message := &models.GroupMessage{
			GroupID:   groupID,
			UserID:    userID,
			Message:   string(msg),
			CreatedAt: time.Now(),
		}

		go func() {
			if err := db.Create(message).Error; err != nil {
				log.Println("Error saving group message to database:", err)
			}
		}()

		chatMu.Lock()
		for _, otherConn := range groupConnections[groupIDStr] {
			if otherConn == conn {
				continue
			}
			if err := otherConn.WriteMessage(msgType, msg); err != nil {
				log.Printf("Error sending message to %v: %v", otherConn.RemoteAddr(), err)
			}
		}
		chatMu.Unlock()
	}

	chatMu.Lock()
	for i, ws := range groupConnections[groupIDStr] {
		if ws == conn {
			groupConnections[groupIDStr] = append(groupConnections[groupIDStr][:i], groupConnections[groupIDStr][i+1:]...)
			break
		}
	}
	chatMu.Unlock()

	log.Println("WebSocket connection closed for group:", groupID)
}
