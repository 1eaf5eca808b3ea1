package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIdentityRoundTrip(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// unauthenticated requests read back as zero values
	assert.Equal(t, uint(0), CurrentUserID(c))
	assert.Equal(t, "", CurrentRole(c))

	StoreIdentity(c, 42, "owner")
	assert.Equal(t, uint(42), CurrentUserID(c))
	assert.Equal(t, "owner", CurrentRole(c))
}

func TestCurrentUserIDAcceptsFloatClaims(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ctxUserIDKey, float64(7))
	assert.Equal(t, uint(7), CurrentUserID(c))
}
