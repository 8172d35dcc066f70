package api

import (
	stdhttp "net/http"

	intconfig "tripmarket/internal/config"
	"tripmarket/internal/domain"
	h "tripmarket/internal/http/handlers"
	"tripmarket/internal/http/middleware"
	"tripmarket/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Trips and pricing
		trips := api.Group("/trips")
		trips.GET("/:id", h.GetTripDetail)
		trips.GET("/:id/starting-price", h.GetStartingPrice)
		trips.POST("/:id/quote", h.QuoteTrip)
		trips.POST("/:id/quote/pdf", h.QuoteTripPDF)
		trips.POST("/:id/leads", auth, h.CreateLead)

		organizer := api.Group("/organizer", auth, middleware.RequireRole(domain.RoleOrganizer, domain.RoleAdmin))
		organizer.PUT("/trips/:id/pricing", h.UpdateTripPricing)

		// Compare
		cmp := api.Group("/compare", middleware.OptionalAuth(env.JWTSecret))
		cmp.GET("", h.CompareTrips)
		cmp.GET("/export", h.ExportComparison)
		list := cmp.Group("/list", auth)
		list.GET("", h.GetCompareList)
		list.DELETE("", h.ClearCompareList)
		list.POST("/:tripId", h.AddToCompareList)
		list.DELETE("/:tripId", h.RemoveFromCompareList)

		// Wishlist
		wishlist := api.Group("/wishlist", auth)
		wishlist.GET("", h.ListWishlist)
		wishlist.POST("/:tripId", h.AddToWishlist)
		wishlist.DELETE("/:tripId", h.RemoveFromWishlist)
		wishlist.GET("/:tripId/exists", h.WishlistExists)

		// Leads
		leads := api.Group("/leads", auth)
		leads.GET("", h.ListLeads)
		leads.POST("/:leadId/nudge", h.NudgeLead)
		leads.DELETE("/:leadId", h.UnsendLead)
	}

	h.SetRouter(r)
	return r
}
