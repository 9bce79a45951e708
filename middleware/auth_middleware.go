package middleware

import (
	"strings"

	"kisan/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Authenticate returns a middleware that verifies an HS256 bearer token
// signed with secret and stores the caller's id in Locals("userID").
func Authenticate(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader { // No "Bearer " prefix
			return unauthorized(c, "Invalid token format")
		}

		claims := &models.JwtClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Success: false, Error: message})
}
