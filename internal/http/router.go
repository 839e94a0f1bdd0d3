package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kushal272003/tourbooking/internal/config"
	h "github.com/kushal272003/tourbooking/internal/http/handlers"
	"github.com/kushal272003/tourbooking/internal/http/middleware"
)

func NewRouter(env config.Env, deps *h.Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.Session(deps.Sessions),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", deps.Health)

		// Auth & profile
		auth := api.Group("/auth")
		auth.POST("/login", deps.Login)
		auth.POST("/register", deps.Register)
		auth.POST("/logout", deps.Logout)
		auth.GET("/me", middleware.RequireAuth(), deps.Me)

		profile := api.Group("/profile", middleware.RequireAuth())
		profile.GET("", deps.Profile)
		profile.PUT("", deps.UpdateProfile)
		profile.PUT("/password", deps.ChangePassword)

		// Tour browsing is public; the session middleware still runs so the
		// detail page can show the wishlist flag for logged-in users.
		tours := api.Group("/tours")
		tours.GET("", deps.ListTours)
		tours.GET("/search", deps.SearchTours)
		tours.GET("/advanced-search", deps.AdvancedSearchTours)
		tours.GET("/destinations", deps.TourDestinations)
		tours.GET("/price-bounds", deps.TourPriceBounds)
		tours.GET("/upcoming", deps.UpcomingTours)
		tours.GET("/available", deps.AvailableTours)
		tours.GET("/destination/:destination", deps.ToursByDestination)
		tours.GET("/:id", deps.GetTour)
		tours.GET("/:id/reviews", deps.TourReviews)

		// Booking wizard
		booking := api.Group("/booking", middleware.RequireAuth())
		booking.POST("/start", deps.StartBooking)
		booking.GET("/drafts/:draftId", deps.GetDraft)
		booking.PUT("/drafts/:draftId/passengers", deps.SubmitPassengers)
		booking.POST("/drafts/:draftId/confirm", deps.ConfirmBooking)
		booking.POST("/drafts/:draftId/callback", deps.PaymentCallback)
		booking.POST("/drafts/:draftId/dismiss", deps.DismissPayment)
		booking.POST("/payment-failed", deps.ReportPaymentFailure)

		// My bookings
		bookings := api.Group("/bookings", middleware.RequireAuth())
		bookings.GET("", deps.MyBookings)
		bookings.GET("/:id", deps.GetBooking)
		bookings.PUT("/:id/cancel", deps.CancelBooking)
		bookings.GET("/:id/payment", deps.BookingPayment)
		bookings.POST("/:id/retry-payment", deps.RetryPayment)
		bookings.POST("/:id/payment-callback", deps.RetryCallback)
		bookings.GET("/:id/receipt", deps.DownloadReceipt)
		bookings.GET("/:id/invoice", deps.DownloadInvoice)

		// Wishlist
		wishlist := api.Group("/wishlist", middleware.RequireAuth())
		wishlist.GET("", deps.MyWishlist)
		wishlist.GET("/count", deps.WishlistCount)
		wishlist.POST("/toggle/:tourId", deps.ToggleWishlist)
		wishlist.DELETE("/:tourId", deps.RemoveFromWishlist)
		wishlist.DELETE("", deps.ClearWishlist)

		// Reviews
		reviews := api.Group("/reviews", middleware.RequireAuth())
		reviews.POST("", deps.CreateReview)
		reviews.GET("/mine", deps.MyReviews)
		reviews.PUT("/:id", deps.UpdateReview)
		reviews.DELETE("/:id", deps.DeleteReview)

		// Admin
		admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
		admin.GET("/dashboard", deps.AdminDashboard)
		admin.GET("/bookings", deps.AdminListBookings)
		admin.PUT("/bookings/:id/confirm", deps.AdminConfirmBooking)
		admin.PUT("/bookings/:id/cancel", deps.AdminCancelBooking)
		admin.PUT("/bookings/:id/complete", deps.AdminCompleteBooking)
		admin.DELETE("/bookings/:id", deps.AdminDeleteBooking)
		admin.POST("/tours", deps.AdminCreateTour)
		admin.PUT("/tours/:id", deps.AdminUpdateTour)
		admin.DELETE("/tours/:id", deps.AdminDeleteTour)
		admin.GET("/payments", deps.AdminPayments)
		admin.GET("/reviews", deps.AdminReviews)
		admin.GET("/analytics", deps.AdminAnalytics)
	}

	return r
}
