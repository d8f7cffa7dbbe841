package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dayotunde25/bsf/internal/app/controllers"
	"github.com/dayotunde25/bsf/internal/app/models/dto"
	"github.com/dayotunde25/bsf/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	chatController *controllers.ChatController,
	galleryController *controllers.GalleryController,
	resourceController *controllers.ResourceController,
	prayerController *controllers.PrayerController,
	jobController *controllers.JobController,
	announcementController *controllers.AnnouncementController,
	mentorshipController *controllers.MentorshipController,
	timelineController *controllers.TimelineController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Resource downloads are served without authentication so shared
	// links keep working outside the app.
	v1.GET("/resources/:id/download", resourceController.Download)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetMe)

		// Member directory
		users := authenticated.Group("/users")
		{
			users.GET("", userController.GetDirectory)
			users.GET("/:id", userController.GetUser)
			users.GET("/:id/posts", userController.GetUserPosts)
			users.GET("/:id/units", userController.GetUserUnits)
		}

		// Dashboard
		dashboard := authenticated.Group("/dashboard")
		{
			dashboard.GET("/stats", userController.GetDashboardStats)
			dashboard.GET("/birthdays", userController.GetUpcomingBirthdays)
		}

		// 1:1 chat
		chat := authenticated.Group("/chat")
		{
			chat.GET("/conversations", chatController.GetConversations)
			chat.GET("/messages/:userId", chatController.GetMessages)
			chat.POST("/messages", chatController.SendMessage)
			chat.PUT("/messages/read", chatController.MarkAsRead)
		}

		// Media gallery
		gallery := authenticated.Group("/gallery")
		{
			gallery.GET("", galleryController.List)
			gallery.POST("", galleryController.Upload)
		}

		// Resource library
		resources := authenticated.Group("/resources")
		{
			resources.GET("", resourceController.List)
			resources.POST("", resourceController.Upload)
		}

		// Prayer wall
		prayers := authenticated.Group("/prayers")
		{
			prayers.GET("", prayerController.List)
			prayers.POST("", prayerController.Create)
			prayers.POST("/:id/support", prayerController.Support)
			prayers.GET("/:id/support", prayerController.GetSupport)
		}

		// Job board
		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.List)
			jobs.POST("", jobController.Create)
			jobs.POST("/:id/apply", jobController.Apply)
			jobs.GET("/:id/application", jobController.GetApplication)
		}

		// Announcements and RSVPs
		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.List)
			announcements.POST("", announcementController.Create)
			announcements.POST("/:id/rsvp", announcementController.Rsvp)
			announcements.GET("/:id/rsvp", announcementController.GetRsvp)
		}

		// Mentorship registry
		mentorship := authenticated.Group("/mentorship")
		{
			mentorship.POST("", mentorshipController.Register)
			mentorship.GET("/mentors", mentorshipController.ListMentors)
			mentorship.GET("/mentees", mentorshipController.ListMentees)
			mentorship.GET("/matches", mentorshipController.ListMatches)
		}

		// Fellowship timeline
		timeline := authenticated.Group("/timeline")
		{
			timeline.GET("", timelineController.List)
			timeline.POST("", timelineController.Create)
		}

		// Admin console. Handlers re-resolve the caller's user row, so a
		// stale admin claim in the token never grants access on its own.
		admin := authenticated.Group("/admin")
		{
			admin.GET("/pending-media", adminController.ListPendingMedia)
			admin.GET("/pending-resources", adminController.ListPendingResources)
			admin.GET("/pending-prayers", adminController.ListPendingPrayers)
			admin.GET("/pending-jobs", adminController.ListPendingJobs)

			admin.PUT("/approve-media/:id", adminController.ApproveMedia)
			admin.PUT("/approve-resource/:id", adminController.ApproveResource)
			admin.PUT("/approve-prayer/:id", adminController.ApprovePrayer)
			admin.PUT("/approve-job/:id", adminController.ApproveJob)

			admin.PUT("/update-user-role/:userId", adminController.UpdateUserRole)
			admin.PUT("/bulk-update-roles", adminController.BulkUpdateRoles)
			admin.POST("/assign-post/:userId", adminController.AssignPost)
			admin.GET("/users/:userId/history", adminController.GetUserHistory)
			admin.GET("/users/filter", adminController.FilterUsers)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
