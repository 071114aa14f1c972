package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"biketours-backend/controllers"
	"biketours-backend/middleware"
	"biketours-backend/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the route tree.
func SetupRouter(
	ac *controllers.AuthController,
	tc *controllers.TourController,
	sc *controllers.SlotController,
	bkc *controllers.BookingController,
	rvc *controllers.ReviewController,
	rc *controllers.RentalController,
	bc *controllers.BikeController,
	lc *controllers.LocationController,
	gc *controllers.GuideController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ac.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		tours := api.Group("/tours")
		{
			tours.GET("", tc.GetTours)
			tours.GET("/:id", tc.GetTour)
			tours.GET("/:id/slots", sc.GetAvailableSlots)
			tours.GET("/:id/reviews", rvc.GetTourReviews)
			tours.POST("/:id/reviews", rvc.CreateReview)
			tours.POST("/:id/book", bkc.BookSlot)

			managed := tours.Group("")
			managed.Use(middleware.RequireTourManager())
			{
				managed.POST("", tc.CreateTour)
				managed.PUT("/:id", tc.UpdateTour)
				managed.DELETE("/:id", tc.DeleteTour)
				managed.POST("/:id/slots", sc.CreateSlot)
				managed.POST("/:id/slots/weekly", sc.CreateWeeklySlots)
			}
		}

		slots := api.Group("/slots")
		slots.Use(middleware.RequireSlotManager())
		{
			slots.PUT("/:id", sc.UpdateSlot)
			slots.DELETE("/:id", sc.DeleteSlot)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bkc.MyBookings)
		}

		rentals := api.Group("/rentals")
		{
			rentals.GET("", rc.GetRentals)
			rentals.POST("", rc.CreateRental)
			rentals.PUT("/:id", rc.UpdateRental)
			rentals.DELETE("/:id", rc.DeleteRental)
		}

		bikes := api.Group("/bikes")
		{
			bikes.GET("", bc.GetBikes)
			bikes.GET("/statuses", bc.GetBikeStatuses)
			bikes.GET("/:id", bc.GetBike)

			managed := bikes.Group("")
			managed.Use(middleware.RequireTourManager())
			{
				managed.POST("", bc.CreateBike)
				managed.PUT("/:id", bc.UpdateBike)
				managed.DELETE("/:id", bc.DeleteBike)
			}
		}

		locations := api.Group("/locations")
		{
			locations.GET("", lc.GetLocations)

			managed := locations.Group("")
			managed.Use(middleware.RequireTourManager())
			{
				managed.POST("", lc.CreateLocation)
				managed.PUT("/:id", lc.UpdateLocation)
				managed.DELETE("/:id", lc.DeleteLocation)
			}
		}

		guides := api.Group("/guides")
		{
			guides.GET("", gc.GetGuides)
			guides.GET("/:id", gc.GetGuide)

			managed := guides.Group("")
			managed.Use(middleware.RequireTourManager())
			{
				managed.POST("", gc.CreateGuide)
				managed.PUT("/:id", gc.UpdateGuide)
				managed.POST("/:id/tours", gc.AssignTour)
				managed.DELETE("/:id/tours/:tourId", gc.UnassignTour)
			}
		}
	}

	return r
}
