package handlers

import (
	"net/http"

	"tripmarket/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// POST /api/wishlist/:tripId
func AddToWishlist(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	if err := wishlistService(c).Add(c.Request.Context(), rc, c.Param("tripId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripId": c.Param("tripId"), "wishlisted": true})
}

// DELETE /api/wishlist/:tripId
func RemoveFromWishlist(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	if err := wishlistService(c).Remove(c.Request.Context(), rc, c.Param("tripId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripId": c.Param("tripId"), "wishlisted": false})
}

// GET /api/wishlist/:tripId/exists
func WishlistExists(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	ok, err := wishlistService(c).Exists(c.Request.Context(), rc, c.Param("tripId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripId": c.Param("tripId"), "wishlisted": ok})
}

// GET /api/wishlist?page=&pageSize=
func ListWishlist(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	page, err := wishlistService(c).List(c.Request.Context(), rc, pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
