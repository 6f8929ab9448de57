package router

import (
	"fmt"
	"sort"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/middleware"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/alumni"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/authentication"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/chat"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/events"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/gamification"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/issues"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/lostfound"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/marketplace"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/notes"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/notifications"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/profiles"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/studybuddy"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/tutorials"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
)

func InitialiseAndSetupRoutes(app *fiber.App) {
	root := app.Group("/", logger.New())

	root.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	apiV1 := root.Group("/api/v1")
	setupAPIV1Routes(apiV1)
	setupWebSocketRoutes(root)

	routes := app.GetRoutes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	for _, route := range routes {
		fmt.Printf("%s\t%s\n", route.Method, route.Path)
	}
}

func setupAPIV1Routes(router fiber.Router) {
	// Grouped API endpoints
	authGroup := router.Group("/auth")
	profileGroup := router.Group("/profiles")
	noteGroup := router.Group("/notes")
	eventGroup := router.Group("/events")
	marketGroup := router.Group("/marketplace")
	issueGroup := router.Group("/issues")
	buddyGroup := router.Group("/studybuddy")
	alumniGroup := router.Group("/alumni")
	lostFoundGroup := router.Group("/lostfound")
	tutorialGroup := router.Group("/tutorials")
	chatGroup := router.Group("/chat")
	notificationGroup := router.Group("/notifications")
	pointsGroup := router.Group("/points")

	// Authentication routes
	authGroup.Post("/signup", authentication.SignUp)
	authGroup.Post("/signin", authentication.SignIn)
	authGroup.Post("/signout", middleware.Protected(), authentication.SignOut)

	// Profile routes
	profileGroup.Get("/me", middleware.Protected(), profiles.GetProfile)
	profileGroup.Put("/me", middleware.Protected(), profiles.UpdateProfile)
	profileGroup.Post("/upload-profile-photo", middleware.Protected(), profiles.UploadProfilePhoto)
	profileGroup.Get("/colleges", middleware.Protected(), profiles.GetColleges)

	// Notes
	noteGroup.Post("/", middleware.Protected(), notes.CreateNote)
	noteGroup.Get("/", middleware.Protected(), notes.ListNotes)
	noteGroup.Get("/:id", middleware.Protected(), notes.GetNote)
	noteGroup.Post("/:id/download", middleware.Protected(), notes.RegisterDownload)

	// Events
	eventGroup.Post("/", middleware.Protected(), events.CreateEvent)
	eventGroup.Get("/", middleware.Protected(), events.ListEvents)
	eventGroup.Get("/:id", middleware.Protected(), events.GetEvent)
	eventGroup.Post("/:id/rsvp", middleware.Protected(), events.RSVP)

	// Marketplace
	marketGroup.Post("/", middleware.Protected(), marketplace.CreateListing)
	marketGroup.Get("/", middleware.Protected(), marketplace.ListListings)
	marketGroup.Post("/:id/sold", middleware.Protected(), marketplace.MarkSold)

	// Issues
	issueGroup.Post("/", middleware.Protected(), issues.ReportIssue)
	issueGroup.Get("/", middleware.Protected(), issues.ListIssues)
	issueGroup.Put("/:id/status", middleware.Protected(), issues.UpdateStatus)

	// Study buddy requests and groups
	buddyGroup.Post("/requests", middleware.Protected(), studybuddy.CreateRequest)
	buddyGroup.Get("/requests", middleware.Protected(), studybuddy.ListRequests)
	buddyGroup.Post("/groups", middleware.Protected(), studybuddy.CreateGroup)
	buddyGroup.Get("/groups", middleware.Protected(), studybuddy.ListGroups)
	buddyGroup.Post("/groups/:id/join", middleware.Protected(), studybuddy.JoinGroup)
	buddyGroup.Post("/groups/:id/leave", middleware.Protected(), studybuddy.LeaveGroup)
	buddyGroup.Get("/groups/:id/messages", middleware.Protected(), studybuddy.GetGroupMessages)
	buddyGroup.Post("/groups/:id/files", middleware.Protected(), studybuddy.ShareGroupFile)

	// Alumni
	alumniGroup.Post("/", middleware.Protected(), alumni.CreateAlumniProfile)
	alumniGroup.Get("/", middleware.Protected(), alumni.ListAlumni)

	// Lost and found
	lostFoundGroup.Post("/", middleware.Protected(), lostfound.CreatePost)
	lostFoundGroup.Get("/", middleware.Protected(), lostfound.ListPosts)
	lostFoundGroup.Post("/:id/resolve", middleware.Protected(), lostfound.Resolve)

	// Youtube tutorials
	tutorialGroup.Post("/", middleware.Protected(), tutorials.AddTutorial)
	tutorialGroup.Get("/", middleware.Protected(), tutorials.ListTutorials)

	// Chat history
	chatGroup.Get("/:college/messages", middleware.Protected(), chat.GetMessages)

	// Notifications
	notificationGroup.Get("/", middleware.Protected(), notifications.GetNotifications)
	notificationGroup.Put("/:id/read", middleware.Protected(), notifications.MarkRead)

	// Points and badges
	pointsGroup.Get("/", middleware.Protected(), gamification.GetPoints)
	pointsGroup.Get("/badges", middleware.Protected(), gamification.GetBadges)
	pointsGroup.Get("/leaderboard", middleware.Protected(), gamification.GetLeaderboard)
}

func setupWebSocketRoutes(router fiber.Router) {
	router.Use("/ws/chat/:college", chat.WebSocketUpgrade)
	router.Get("/ws/chat/:college", websocket.New(chat.WebSocketConnHandler))

	router.Use("/ws/groups/:id", studybuddy.GroupChatUpgrade)
	router.Get("/ws/groups/:id", websocket.New(studybuddy.GroupChatConnHandler))

	router.Get("/ws/notifications", websocket.New(notifications.WebSocketHandler))
}
