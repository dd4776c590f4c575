package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/skillup-ia/skillup-api/internal/domain"
)

// Identity parses an optional Bearer token and stores the authenticated
// username in the context. Requests without a token (or with an invalid one)
// proceed anonymously; routes stay public like the rest of the API.
func Identity(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if secretKey == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if username, ok := claims["username"].(string); ok {
				c.Set(string(domain.KeyUsername), username)
			}
			if id, ok := claims["id"].(float64); ok {
				c.Set(string(domain.KeyUserID), int64(id))
			}
		}

		c.Next()
	}
}
