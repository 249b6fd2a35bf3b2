package routes

import (
	"net/http"
	"time"

	"voyago/config"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/services/auth"
	"voyago/services/profile"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects everything route registration needs.
type HandlerBundle struct {
	Verifier       auth.TokenVerifier
	ProfileService profile.ProfileService

	Profile     *handlers.ProfileHandler
	Destination *handlers.DestinationHandler
	Booking     *handlers.BookingHandler
	Admin       *handlers.AdminHandler
	Setup       *handlers.SetupHandler
}

// RegisterPublicRoutes registers the endpoints that need no credential.
func RegisterPublicRoutes(api *gin.RouterGroup, hb *HandlerBundle) {
	api.GET("/destinations", hb.Destination.ListDestinationsHandler)
	api.GET("/destinations/:id", hb.Destination.GetDestinationHandler)
	api.POST("/signup", hb.Profile.SignupHandler)
	api.POST("/setup-admin", hb.Setup.SetupAdminHandler)
	api.POST("/init", hb.Setup.InitHandler)
}

// RegisterUserRoutes registers user-scoped endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, hb *HandlerBundle) {
	user := api.Group("")
	{
		// Auth before data access, enforced by composition.
		user.Use(middleware.AuthRequired(hb.Verifier))
		user.POST("/sync-profile", hb.Profile.SyncProfileHandler)
		user.POST("/fix-admin-role", hb.Profile.FixAdminRoleHandler)
		user.POST("/bookings", hb.Booking.CreateBookingHandler)
		user.GET("/my-bookings", hb.Booking.MyBookingsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *HandlerBundle) {
	adminGroup := api.Group("/admin")
	{
		adminGroup.Use(middleware.AuthRequired(hb.Verifier))
		adminGroup.Use(middleware.AdminOnly(hb.ProfileService))
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.GET("/bookings", hb.Booking.AllBookingsHandler)
		adminGroup.POST("/destinations", hb.Destination.CreateDestinationHandler)
		adminGroup.DELETE("/destinations/:id", hb.Destination.DeleteDestinationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Voyago"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	// All service endpoints live under the fixed service prefix.
	api := r.Group("/" + config.AppConfig.ServicePrefix)
	RegisterPublicRoutes(api, hb)
	RegisterUserRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
}
