// services/auth_service_test.go
package services

import (
	"testing"

	"pdcaportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreateTeamNormalizesCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(RegisterInput{
		Username:   "alice",
		Email:      "alice@example.com",
		Password:   "s3cret-pass",
		TeamCode:   "  devops7  ",
		TeamName:   "DevOps",
		CreateTeam: true,
	})
	require.NoError(t, err)

	var team models.Team
	require.NoError(t, db.First(&team, user.TeamID).Error)
	assert.Equal(t, "DEVOPS7", team.TeamCode)

	// Team creation opened cycle 1.
	assert.Len(t, activeCycles(t, db, team.ID), 1)

	// Password is stored hashed.
	assert.NotEqual(t, "s3cret-pass", user.Password)
}

func TestRegisterJoinExistingTeam(t *testing.T) {
	db := newTestDB(t)
	team, _ := seedTeam(t, db, "JOINME")
	svc := NewAuthService(db)

	user, err := svc.Register(RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "s3cret-pass",
		TeamCode: "joinme", // case-insensitive
	})
	require.NoError(t, err)
	assert.Equal(t, team.ID, user.TeamID)

	// Joining must not open another cycle.
	assert.Len(t, activeCycles(t, db, team.ID), 1)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	cases := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"short username", RegisterInput{Username: "ab", Email: "a@b.co", Password: "longenough", TeamCode: "ABC123", TeamName: "T", CreateTeam: true}, "username"},
		{"bad email", RegisterInput{Username: "carol", Email: "not-an-email", Password: "longenough", TeamCode: "ABC123", TeamName: "T", CreateTeam: true}, "email"},
		{"short password", RegisterInput{Username: "carol", Email: "c@d.co", Password: "abc", TeamCode: "ABC123", TeamName: "T", CreateTeam: true}, "password"},
		{"bad team code", RegisterInput{Username: "carol", Email: "c@d.co", Password: "longenough", TeamCode: "a!", TeamName: "T", CreateTeam: true}, "team_code"},
		{"missing team name", RegisterInput{Username: "carol", Email: "c@d.co", Password: "longenough", TeamCode: "ABC123", CreateTeam: true}, "team_name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.in)
			verrs, ok := AsValidationErrors(err)
			require.True(t, ok)
			assert.Contains(t, verrs, tc.field)
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	db := newTestDB(t)
	seedTeam(t, db, "DUPES1")
	svc := NewAuthService(db)

	_, err := svc.Register(RegisterInput{
		Username: "member-DUPES1",
		Email:    "fresh@example.com",
		Password: "longenough",
		TeamCode: "DUPES1",
	})
	verrs, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "username")

	_, err = svc.Register(RegisterInput{
		Username: "someone-else",
		Email:    "DUPES1@example.com",
		Password: "longenough",
		TeamCode: "DUPES1",
	})
	verrs, ok = AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "email")

	// Creating a team whose code is taken fails too.
	_, err = svc.Register(RegisterInput{
		Username:   "third-user",
		Email:      "third@example.com",
		Password:   "longenough",
		TeamCode:   "DUPES1",
		TeamName:   "Copycats",
		CreateTeam: true,
	})
	verrs, ok = AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "team_code")
}

func TestRegisterJoinUnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(RegisterInput{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "longenough",
		TeamCode: "NOSUCH",
	})
	verrs, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Contains(t, verrs, "team_code")

	// Nothing was left behind by the rolled-back transaction.
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	_, user := seedTeam(t, db, "LOGIN1")
	svc := NewAuthService(db)

	got, err := svc.Authenticate(user.Username, "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(user.Username, "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("ghost", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
