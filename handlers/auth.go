// handlers/auth.go - Registration and login endpoints
package handlers

import (
	"time"

	"pdcaportal/middleware"
	"pdcaportal/models"
	"pdcaportal/services"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	TeamCode   string `json:"team_code"`
	TeamName   string `json:"team_name"`
	CreateTeam bool   `json:"create_team"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	TeamID    uint      `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Register creates a user and joins or creates a team.
// POST /api/auth/register
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	user, err := authService.Register(services.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		TeamCode:   req.TeamCode,
		TeamName:   req.TeamName,
		CreateTeam: req.CreateTeam,
	})
	if err != nil {
		return respondError(c, err)
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    userInfo(user),
	})
}

// Login authenticates a registered user.
// POST /api/auth/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Username and password required",
		})
	}

	user, err := authService.Authenticate(req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    userInfo(user),
	})
}

func userInfo(user *models.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		TeamID:    user.TeamID,
		CreatedAt: user.CreatedAt,
	}
}
