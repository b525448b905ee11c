package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/utils"
)

// SessionCookie carries the signed session token.
const SessionCookie = "fittrack_session"

const identityKey = "authUser"

// AuthUser is the authenticated identity resolved from the session token.
// Handlers receive it explicitly instead of reading ambient session state.
type AuthUser struct {
	ID   uint
	Name string
}

// RequireAuth protects page routes: missing or invalid sessions redirect to
// the login page.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessionUser(c, secret)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(identityKey, user)
		c.Next()
	}
}

// RequireAuthJSON protects data routes: missing or invalid sessions get a
// 401 JSON error instead of a redirect.
func RequireAuthJSON(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessionUser(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.Set(identityKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity stored by RequireAuth / RequireAuthJSON.
func CurrentUser(c *gin.Context) AuthUser {
	if v, ok := c.Get(identityKey); ok {
		if user, ok := v.(AuthUser); ok {
			return user
		}
	}
	return AuthUser{}
}

func sessionUser(c *gin.Context, secret []byte) (AuthUser, error) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return AuthUser{}, err
	}
	id, name, err := utils.ParseSessionToken(cookie, secret)
	if err != nil {
		return AuthUser{}, err
	}
	return AuthUser{ID: id, Name: name}, nil
}
