package utils

import "github.com/gin-gonic/gin"

// Context keys written by the auth middlewares after token verification.
const (
	ctxUserIDKey = "userId"
	ctxRoleKey   = "role"
)

// StoreIdentity records the verified staff identity on the request context
// for downstream handlers.
func StoreIdentity(c *gin.Context, userID uint, role string) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxRoleKey, role)
}

// CurrentUserID returns the authenticated user's ID, 0 when the request
// carries no verified identity.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0
	}
	switch id := v.(type) {
	case uint:
		return id
	case float64: // claims decoded straight off the token
		return uint(id)
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(ctxRoleKey)
}
