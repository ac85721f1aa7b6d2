package repositories_test

import (
	"testing"
	"time"

	"recruitpro_backend/internal/models"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFieldsAppliesExplicitFalse(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	lead := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")
	require.NoError(t, db.Model(lead).Update("is_interested", true).Error)

	updated, err := repo.UpdateFields(lead.ID, map[string]interface{}{
		"is_interested": false,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsInterested)
}

func TestUpdateFieldsEmptyMapSkipsWrite(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	lead := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")

	updated, err := repo.UpdateFields(lead.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, lead.ID, updated.ID)
}

func TestUpdateFieldsUnknownLead(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	_, err := repo.UpdateFields("missing-id", map[string]interface{}{"category": "IT"})
	assert.ErrorIs(t, err, repositories.ErrLeadNotFound)
}

func TestAppendFollowUpKeepsOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	lead := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")

	first := models.FollowUp{Date: time.Now().Add(-time.Hour), Text: "called, no answer"}
	second := models.FollowUp{Date: time.Now(), Text: "interview scheduled"}

	_, err := repo.AppendFollowUp(lead.ID, first)
	require.NoError(t, err)
	updated, err := repo.AppendFollowUp(lead.ID, second)
	require.NoError(t, err)

	require.Len(t, updated.FollowUps, 2)
	assert.Equal(t, "called, no answer", updated.FollowUps[0].Text)
	assert.Equal(t, "interview scheduled", updated.FollowUps[1].Text)
}

func TestAppendFollowUpUnknownLead(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	_, err := repo.AppendFollowUp("missing-id", models.FollowUp{Date: time.Now(), Text: "x"})
	assert.ErrorIs(t, err, repositories.ErrLeadNotFound)
}

func TestSearchColumnSubstringIsCaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")
	testutil.CreateAssignedLead(t, db, "LEAD_2", "Meena Iyer", "REC001")

	leads, err := repo.SearchColumn("candidate_name", repositories.MatchSubstring, "rAvI")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "LEAD_1", leads[0].LeadID)
}

func TestSearchColumnBoolMatchesYes(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	interested := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")
	require.NoError(t, db.Model(interested).Update("is_interested", true).Error)
	testutil.CreateAssignedLead(t, db, "LEAD_2", "Meena Iyer", "REC001")

	leads, err := repo.SearchColumn("is_interested", repositories.MatchBool, "Yes")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "LEAD_1", leads[0].LeadID)

	// Anything that is not "yes" selects the false side.
	leads, err = repo.SearchColumn("is_interested", repositories.MatchBool, "no")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "LEAD_2", leads[0].LeadID)
}

func TestCountByActive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	active := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")
	require.NoError(t, db.Model(active).Update("is_active", true).Error)
	testutil.CreateAssignedLead(t, db, "LEAD_2", "Meena Iyer", "REC001")
	testutil.CreateAssignedLead(t, db, "LEAD_3", "Arjun Rao", "REC002")

	activeCount, err := repo.CountByActive(true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), activeCount)

	inactiveCount, err := repo.CountByActive(false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inactiveCount)
}

func TestFindByIDsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAssignedLeadRepository(db)

	leads, err := repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, leads)
}
