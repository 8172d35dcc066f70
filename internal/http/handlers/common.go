package handlers

import (
	"net/http"
	"strconv"

	"tripmarket/internal/compare"
	intconfig "tripmarket/internal/config"
	"tripmarket/internal/domain"
	"tripmarket/internal/http/middleware"
	"tripmarket/internal/repositories"
	"tripmarket/internal/services"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// bindOptionalJSON parses the body when one is sent; an empty body leaves dst untouched.
func bindOptionalJSON[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	return BindJSONOrError(c, dst)
}

func pagination(c *gin.Context) domain.Pagination {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("pageSize"))
	return domain.Pagination{Page: page, PageSize: size}.Normalize()
}

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Cache:     repositories.TripCache{TTL: intconfig.Current().TripCacheTTL},
		RequestID: middleware.GetRequestID(c),
	}
}

func quoteService(c *gin.Context) services.QuoteService {
	return services.QuoteService{
		Trips:     tripService(c),
		RequestID: middleware.GetRequestID(c),
	}
}

func compareService(c *gin.Context) services.CompareService {
	return services.CompareService{
		Trips: tripService(c),
		Store: repositories.CompareStore{
			TTL:   intconfig.Current().CompareListTTL,
			Limit: compare.MaxTrips,
		},
		RequestID: middleware.GetRequestID(c),
	}
}

func leadService(c *gin.Context) services.LeadService {
	return services.LeadService{
		Trips:           tripService(c),
		RequireComplete: intconfig.Current().LeadsRequireCompleteSelection,
		RequestID:       middleware.GetRequestID(c),
	}
}

func wishlistService(c *gin.Context) services.WishlistService {
	return services.WishlistService{
		Trips:     tripService(c),
		RequestID: middleware.GetRequestID(c),
	}
}

func sendFile(c *gin.Context, contentType, disposition, filename string, data []byte) {
	c.Header("Content-Disposition", disposition+`; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
