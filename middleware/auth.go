package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userkey       = "UserID"
	tokenLifetime = 7 * 24 * time.Hour
)

// Auth identifies the acting user. Tokens and sessions only say who is
// calling; nothing here checks what they may do.
type Auth struct {
	key []byte
}

func NewAuth(key string) *Auth {
	return &Auth{key: []byte(key)}
}

// IssueToken signs a token carrying userID as subject
func (a *Auth) IssueToken(userID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

// ParseToken returns the user id a token was issued for
func (a *Auth) ParseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

// Identify resolves the acting user from the Authorization header, falling
// back to the session cookie. Anonymous requests pass through.
func (a *Auth) Identify(c *gin.Context) {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		if userID, err := a.ParseToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
			c.Set(userkey, userID)
			c.Next()
			return
		}
	}
	if userID, ok := sessions.Default(c).Get(userkey).(string); ok && userID != "" {
		c.Set(userkey, userID)
	}
	c.Next()
}

// CurrentUser is the id Identify resolved, empty for anonymous requests
func CurrentUser(c *gin.Context) string {
	return c.GetString(userkey)
}

// Remember stores userID in the session cookie
func Remember(c *gin.Context, userID string) error {
	session := sessions.Default(c)
	session.Set(userkey, userID)
	return session.Save()
}

// Forget clears the session. It reports false when there was none.
func Forget(c *gin.Context) (bool, error) {
	session := sessions.Default(c)
	if session.Get(userkey) == nil {
		return false, nil
	}
	session.Delete(userkey)
	return true, session.Save()
}
