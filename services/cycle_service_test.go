// services/cycle_service_test.go
package services

import (
	"testing"

	"pdcaportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCreationOpensFirstCycle(t *testing.T) {
	db := newTestDB(t)
	team, _ := seedTeam(t, db, "ALPHA1")

	svc := NewCycleService(db)
	cycle, err := svc.GetCurrentCycle(team.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, cycle.CycleNumber)
	assert.Equal(t, models.CycleStatusActive, cycle.Status)
	assert.Nil(t, cycle.EndDate)
	assert.Len(t, activeCycles(t, db, team.ID), 1)
}

func TestGetCurrentCycleNoneActive(t *testing.T) {
	db := newTestDB(t)
	team, _ := seedTeam(t, db, "ALPHA2")

	// Force the degenerate state the recording layer must defend against.
	require.NoError(t, db.Model(&models.PDCACycle{}).
		Where("team_id = ?", team.ID).
		Update("status", models.CycleStatusCompleted).Error)

	_, err := NewCycleService(db).GetCurrentCycle(team.ID)
	assert.ErrorIs(t, err, ErrNoActiveCycle)
}

func TestCompleteCycleSpawnsSuccessor(t *testing.T) {
	db := newTestDB(t)
	team, _ := seedTeam(t, db, "BRAVO1")
	svc := NewCycleService(db)

	first, err := svc.GetCurrentCycle(team.ID)
	require.NoError(t, err)

	require.NoError(t, svc.CompleteCycle(first.ID))

	var completed models.PDCACycle
	require.NoError(t, db.First(&completed, first.ID).Error)
	assert.Equal(t, models.CycleStatusCompleted, completed.Status)
	require.NotNil(t, completed.EndDate)

	current, err := svc.GetCurrentCycle(team.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, current.CycleNumber)
	assert.Equal(t, models.CycleStatusActive, current.Status)
	assert.NotEqual(t, first.ID, current.ID)

	// Never zero, never two.
	assert.Len(t, activeCycles(t, db, team.ID), 1)
}

func TestCompleteCycleRepeatIsNoOp(t *testing.T) {
	db := newTestDB(t)
	team, _ := seedTeam(t, db, "BRAVO2")
	svc := NewCycleService(db)

	first, err := svc.GetCurrentCycle(team.ID)
	require.NoError(t, err)
	require.NoError(t, svc.CompleteCycle(first.ID))

	// A double-submit on the completed cycle must not spawn a second
	// successor.
	err = svc.CompleteCycle(first.ID)
	assert.ErrorIs(t, err, ErrCycleNotActive)

	cycles, err := svc.ListCycles(team.ID)
	require.NoError(t, err)
	assert.Len(t, cycles, 2)
	assert.Len(t, activeCycles(t, db, team.ID), 1)
}

func TestCompleteCycleUnknownID(t *testing.T) {
	db := newTestDB(t)
	seedTeam(t, db, "BRAVO3")

	err := NewCycleService(db).CompleteCycle(9999)
	assert.ErrorIs(t, err, ErrCycleNotActive)
}

func TestListCyclesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	team, _ := seedTeam(t, db, "CHARLIE")
	svc := NewCycleService(db)

	for i := 0; i < 2; i++ {
		current, err := svc.GetCurrentCycle(team.ID)
		require.NoError(t, err)
		require.NoError(t, svc.CompleteCycle(current.ID))
	}

	cycles, err := svc.ListCycles(team.ID)
	require.NoError(t, err)
	require.Len(t, cycles, 3)
	assert.Equal(t, 3, cycles[0].CycleNumber)
	assert.Equal(t, 1, cycles[2].CycleNumber)
}
