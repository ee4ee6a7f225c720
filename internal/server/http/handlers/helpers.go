package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/server/http/middleware"
)

// CartSessionHeader carries the anonymous cart session token. The server
// mints one on first contact and echoes it on every cart response.
const CartSessionHeader = "X-Cart-Session"

// CartSession returns the request's session token, minting a fresh one
// when absent. The token is always reflected in the response header.
func CartSession(c *gin.Context) string {
	session := c.GetHeader(CartSessionHeader)
	if session == "" {
		buf := make([]byte, 16)
		_, _ = rand.Read(buf)
		session = hex.EncodeToString(buf)
	}
	c.Header(CartSessionHeader, session)
	return session
}

// CurrentStaff extracts the authenticated staff identity from context.
func CurrentStaff(c *gin.Context) (int64, model.StaffRole) {
	idVal, ok := c.Get(middleware.StaffIDContextKey)
	if !ok {
		return 0, ""
	}
	id, _ := idVal.(int64)
	roleVal, _ := c.Get(middleware.StaffRoleContextKey)
	role, _ := roleVal.(model.StaffRole)
	return id, role
}

// parseDate reads a YYYY-MM-DD query value, defaulting to today.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", raw)
}
