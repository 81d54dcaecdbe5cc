package handlers

import (
	"net/http"

	intconfig "tourism/internal/config"
	intdb "tourism/internal/db"

	"github.com/gin-gonic/gin"
)

// Health is a liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the database and probes the expected tables.
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "database unreachable", err)
		return
	}

	tables := gin.H{}
	for _, t := range []string{"users", "tours", "bookings", "enquiries", "comments"} {
		tables[t] = intdb.HasTable(intconfig.DB, t)
	}

	// The idempotency key columns; a schema missing either silently breaks
	// duplicate-callback absorption.
	columns := gin.H{}
	for _, col := range []string{"order_id", "payment_id"} {
		columns["bookings."+col] = intdb.HasColumn(intconfig.DB, "bookings", col)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"tables":  tables,
		"columns": columns,
	})
}
