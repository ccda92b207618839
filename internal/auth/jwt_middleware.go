package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fleet_inventory/internal/config"
	"github.com/fleet_inventory/pkg/utils"
)

// Claims defines the custom claims stored in the JWT. The user's resolved
// role set travels in the token so guards never re-derive it from ambient
// state. JTI comes from the embedded jwt.RegisteredClaims.
type Claims struct {
	UserID   int64    `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// Gin context keys set by JWTMiddleware.
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
	ContextRolesKey    = "roles"
	ContextJTIKey      = "jti"
	ContextExpKey      = "exp"
)

var (
	// tokenDenylist stores the JTIs of logged-out tokens with their
	// original expiry. In-memory only, so a restart clears it; production
	// deployments should back this with Redis or similar.
	tokenDenylist = make(map[string]time.Time)
	denylistMutex = &sync.RWMutex{}
)

// AddToDenylist records a JTI as invalidated and prunes expired entries.
func AddToDenylist(jti string, expiresAt time.Time) {
	denylistMutex.Lock()
	defer denylistMutex.Unlock()

	tokenDenylist[jti] = expiresAt

	now := time.Now()
	for id, exp := range tokenDenylist {
		if now.After(exp) {
			delete(tokenDenylist, id)
		}
	}
}

// IsTokenDenylisted checks whether the JTI is denylisted and still within
// its original lifetime.
func IsTokenDenylisted(jti string) bool {
	denylistMutex.RLock()
	defer denylistMutex.RUnlock()

	expTime, found := tokenDenylist[jti]
	if !found {
		return false
	}
	return time.Now().Before(expTime)
}

// JWTMiddleware is the Gin middleware validating the Bearer token. On
// success it stores the actor's id, username and role set in the request
// context for the role guard and the handlers.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondUnauthorizedError(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondUnauthorizedError(c, "Authorization header format must be Bearer {token}")
			return
		}

		tokenString := parts[1]
		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenMalformed) {
				utils.RespondUnauthorizedError(c, "Token is malformed")
			} else if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenNotValidYet) {
				utils.RespondUnauthorizedError(c, "Token is expired or not valid yet")
			} else if errors.Is(err, jwt.ErrSignatureInvalid) {
				utils.RespondUnauthorizedError(c, "Invalid token signature")
			} else {
				utils.RespondUnauthorizedError(c, "Invalid token: "+err.Error())
			}
			return
		}

		if !token.Valid {
			utils.RespondUnauthorizedError(c, "Token is invalid")
			return
		}

		if claims.ID == "" {
			utils.RespondUnauthorizedError(c, "Token missing JTI (JWT ID)")
			return
		}

		if IsTokenDenylisted(claims.ID) {
			utils.RespondUnauthorizedError(c, "Token has been invalidated (logged out)")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Set(ContextRolesKey, claims.Roles)
		c.Set(ContextJTIKey, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ContextExpKey, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}
