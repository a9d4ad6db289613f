// Package session implements the per-request auth gate: a signed token in an
// HTTP-only cookie resolved against the credential store at the start of
// each request.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/models"
	"chirp/store"
)

// CookieName is the session cookie. The cookie itself is the session; no
// server-side session state is kept.
const CookieName = "chirp_session"

const ctxUserKey = "currentUser"

// Claims is the signed session payload.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Issue signs a session token for the given user id.
func Issue(secret []byte, userID string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parse(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// CurrentUser resolves the session cookie to a user and stores it on the
// request context. Any failure — missing cookie, bad signature, expired
// token, stale user id — collapses to the anonymous state without aborting.
func CurrentUser(secret []byte, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		claims, err := parse(secret, token)
		if err != nil {
			c.Next()
			return
		}
		id, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.Next()
			return
		}
		user, err := users.ByID(c.Request.Context(), id)
		if err != nil {
			c.Next()
			return
		}
		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// RequireUser gates mutating routes: anonymous requests get 401.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

// UserFrom returns the resolved user for this request, or nil when anonymous.
func UserFrom(c *gin.Context) *models.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
