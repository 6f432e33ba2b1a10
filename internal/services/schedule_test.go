package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_Search(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.caregiverOffers(t, "carol", "2022-05-01", "pfizer", 5)
	e.caregiverOffers(t, "bob", "2022-05-01", "moderna", 2)
	e.caregiverOffers(t, "dave", "2022-05-02", "pfizer", 1)

	e.register(t, models.RolePatient, "alice", "pw1")
	sess := e.login(t, models.RolePatient, "alice", "pw1")

	rows, err := e.schedule.Search(ctx, sess, "2022-05-01")
	require.NoError(t, err)
	assert.Equal(t, []models.ScheduleRow{
		{Caregiver: "bob", Vaccine: "moderna", Doses: 2},
		{Caregiver: "bob", Vaccine: "pfizer", Doses: 6},
		{Caregiver: "carol", Vaccine: "moderna", Doses: 2},
		{Caregiver: "carol", Vaccine: "pfizer", Doses: 6},
	}, rows)

	rows, err = e.schedule.Search(ctx, sess, "2022-06-01")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScheduleService_Search_Gate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.schedule.Search(ctx, session.New(), "2022-05-01")
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)

	e.register(t, models.RoleCaregiver, "bob", "pw2")
	sess := e.login(t, models.RoleCaregiver, "bob", "pw2")
	_, err = e.schedule.Search(ctx, sess, "05/01/2022")
	assert.ErrorIs(t, err, common.ErrInvalidDate)
}
