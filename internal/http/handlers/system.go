package handlers

import (
	"net/http"
	"sync"

	intconfig "tripmarket/internal/config"
	intdb "tripmarket/internal/db"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "tripmarket api running"})
}

func DBCheck(c *gin.Context) {
	db := intconfig.DB
	if db == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database not connected", nil)
		return
	}
	ctx := c.Request.Context()
	for _, table := range []string{"trips", "wishlists", "trip_leads"} {
		if !intdb.HasTable(ctx, db, table) {
			respondError(c, http.StatusInternalServerError, "schema_missing", table+" table missing, run migrations", nil)
			return
		}
	}
	if !intdb.HasColumn(ctx, db, "trips", "pricing") {
		respondError(c, http.StatusInternalServerError, "schema_missing", "trips.pricing column missing, run migrations", nil)
		return
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_query_failed", "database query failed: "+err.Error(), nil)
		return
	}
	out := gin.H{"message": "database connection OK", "trips_in_db": count, "redis": intconfig.Redis != nil}
	c.JSON(http.StatusOK, out)
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
