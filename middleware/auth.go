// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"pdcaportal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthMiddleware validates the Bearer token and places the caller's user
// and team ids into Locals. Every core operation requires both.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing authorization header"})
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid authorization header format"})
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(jwtSecret()), nil
	})

	if err != nil || !token.Valid {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token claims"})
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Token expired"})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("teamId", claims["team_id"])
	c.Locals("username", claims["username"])

	return c.Next()
}

// GenerateToken issues a signed JWT for the user, carrying the team scope
// every core operation needs.
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"team_id":  user.TeamID,
		"username": user.Username,
		"jti":      uuid.New().String(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret()))
}

func GetUserID(c *fiber.Ctx) (uint, error) {
	return localUint(c, "userId")
}

func GetTeamID(c *fiber.Ctx) (uint, error) {
	return localUint(c, "teamId")
}

func localUint(c *fiber.Ctx, key string) (uint, error) {
	val := c.Locals(key)
	if val == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	// JWT claims decode numbers as float64; tests may set uint directly.
	switch v := val.(type) {
	case float64:
		return uint(v), nil
	case uint:
		return v, nil
	}

	return 0, fiber.NewError(401, "Invalid authentication context")
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "pdcaportal-secret-change-in-production"
	}
	return secret
}
