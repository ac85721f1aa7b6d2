package services_test

import (
	"testing"

	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services"
	"recruitpro_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewDashboardService(
		repositories.NewUserRepository(db),
		repositories.NewLeadRepository(db),
		repositories.NewAssignedLeadRepository(db),
	)

	recruiter := testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")

	testutil.CreatePendingLead(t, db, "LEAD_P1", "Pending One", "1111111111")
	testutil.CreatePendingLead(t, db, "LEAD_P2", "Pending Two", "2222222222")

	active := testutil.CreateAssignedLead(t, db, "LEAD_A", "Ravi Kumar", "REC001")
	require.NoError(t, db.Model(active).Update("is_active", true).Error)
	inactive := testutil.CreateAssignedLead(t, db, "LEAD_B", "Meena Iyer", "REC001")

	recruiter.AssignedLeadIDs = append(recruiter.AssignedLeadIDs, active.ID, inactive.ID)
	recruiter.ActiveLeadIDs = append(recruiter.ActiveLeadIDs, active.ID)
	require.NoError(t, db.Save(recruiter).Error)

	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Active)
	assert.Equal(t, int64(1), stats.Inactive)
	assert.Equal(t, int64(2), stats.Pending)

	require.Len(t, stats.Recruiters, 1)
	assert.Equal(t, "Asha Verma", stats.Recruiters[0].Name)
	assert.Equal(t, 2, stats.Recruiters[0].Assigned)
	assert.Equal(t, 1, stats.Recruiters[0].Active)

	assert.NotEmpty(t, stats.Timeline)
}

func TestDashboardStatsEmptyDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := services.NewDashboardService(
		repositories.NewUserRepository(db),
		repositories.NewLeadRepository(db),
		repositories.NewAssignedLeadRepository(db),
	)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Active)
	assert.Equal(t, int64(0), stats.Inactive)
	assert.Equal(t, int64(0), stats.Pending)
	assert.Empty(t, stats.Recruiters)
	assert.Empty(t, stats.Timeline)
}
