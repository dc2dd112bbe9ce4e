// services/auth_service.go - Registration & Login
package services

import (
	"errors"
	"time"

	"pdcaportal/models"
	"pdcaportal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterInput carries a registration request. CreateTeam switches between
// creating a new team (TeamName required) and joining an existing one by
// code.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	TeamCode   string
	TeamName   string
	CreateTeam bool
}

// Register creates a user inside a transaction that also creates the team
// and its first cycle when CreateTeam is set. A failure at any step leaves
// no partial state behind.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	teamCode := utils.NormalizeTeamCode(in.TeamCode)

	if verrs := validateRegistration(in, teamCode); len(verrs) > 0 {
		return nil, verrs
	}

	var count int64
	s.db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count)
	if count > 0 {
		return nil, ValidationErrors{"username": "username is already taken"}
	}
	s.db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count)
	if count > 0 {
		return nil, ValidationErrors{"email": "email is already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		findErr := tx.Where("team_code = ?", teamCode).First(&team).Error

		if in.CreateTeam {
			if findErr == nil {
				return ValidationErrors{"team_code": "team code is already in use"}
			}
			if !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}

			team = models.Team{TeamName: in.TeamName, TeamCode: teamCode}
			if err := tx.Create(&team).Error; err != nil {
				return err
			}
			// New team starts its first cycle atomically with creation.
			if err := createFirstCycle(tx, team.ID); err != nil {
				return err
			}
		} else {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return ValidationErrors{"team_code": "team code does not exist"}
			}
			if findErr != nil {
				return findErr
			}
		}

		user = &models.User{
			Username: in.Username,
			Email:    in.Email,
			Password: string(hash),
			TeamID:   team.ID,
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a username/password pair and returns the user.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.db.Model(&user).Update("last_login", time.Now().UTC())

	return &user, nil
}

func validateRegistration(in RegisterInput, teamCode string) ValidationErrors {
	verrs := ValidationErrors{}

	if len(in.Username) < 3 || len(in.Username) > 50 {
		verrs["username"] = "username must be between 3 and 50 characters"
	}
	if !utils.ValidEmail(in.Email) {
		verrs["email"] = "email address is invalid"
	}
	if len(in.Password) < 6 {
		verrs["password"] = "password must be at least 6 characters"
	}
	if !utils.ValidTeamCode(teamCode) {
		verrs["team_code"] = "team code must be 3-20 letters or digits"
	}
	if in.CreateTeam && !utils.Required(in.TeamName) {
		verrs["team_name"] = "team name is required"
	}

	return verrs
}
