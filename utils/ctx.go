package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated staff user's id from the gin
// context, or 0 when the request carries no auth context. The auth
// middleware stores the id as uint.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
