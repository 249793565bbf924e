package middleware

import "github.com/gin-gonic/gin"

// usernameKey is the key used to store the authenticated username in the request context.
const usernameKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the request context.
// It returns the username and a boolean indicating if it was found.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(usernameKey)); exists {
		if username, ok := v.(string); ok && username != "" {
			return username, true
		}
	}
	username, ok := c.Request.Context().Value(usernameKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
