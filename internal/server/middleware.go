package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// auth validates the bearer token and injects the userId claim into the
// request context.
func (s *Server) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			s.log.Warn("[AUTH] missing token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			s.log.Warn("[AUTH] invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(s.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			s.log.WithError(err).Warn("[AUTH] token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		userID, ok := claims["userId"].(string)
		if !ok || strings.TrimSpace(userID) == "" {
			s.log.Warn("[AUTH] userId claim missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}

// requireOwnUser guards the /users routes: the path's userId must match the
// token's claim.
func (s *Server) requireOwnUser(c *gin.Context) (string, bool) {
	userID := c.GetString("userId")
	if c.Param("userId") != userID {
		respondError(c, http.StatusForbidden, "forbidden")
		return "", false
	}
	return userID, true
}
