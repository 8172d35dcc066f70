package handlers

import (
	"net/http"

	"tripmarket/internal/http/middleware"
	"tripmarket/internal/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/compare?ids=a,b,c
//
// Without ids a signed-in caller gets their saved list.
func CompareTrips(c *gin.Context) {
	ids := utils.SplitList(c.Query("ids"))
	if rc := middleware.GetRequestContext(c); len(ids) == 0 && rc.UserID != "" {
		GetCompareList(c)
		return
	}
	table, err := compareService(c).Compare(c.Request.Context(), ids)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// GET /api/compare/export?ids=a,b,c
func ExportComparison(c *gin.Context) {
	data, filename, err := compareService(c).Export(c.Request.Context(), utils.SplitList(c.Query("ids")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendFile(c, xlsxContentType, "attachment", filename, data)
}

// GET /api/compare/list
func GetCompareList(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	table, ids, err := compareService(c).ListView(c.Request.Context(), rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripIds": ids, "table": table})
}

// POST /api/compare/list/:tripId
func AddToCompareList(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	ids, err := compareService(c).Add(c.Request.Context(), rc.UserID, c.Param("tripId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripIds": ids})
}

// DELETE /api/compare/list/:tripId
func RemoveFromCompareList(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	ids, err := compareService(c).Remove(c.Request.Context(), rc.UserID, c.Param("tripId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripIds": ids})
}

// DELETE /api/compare/list
func ClearCompareList(c *gin.Context) {
	rc := middleware.GetRequestContext(c)
	if err := compareService(c).Clear(c.Request.Context(), rc.UserID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripIds": []string{}})
}
