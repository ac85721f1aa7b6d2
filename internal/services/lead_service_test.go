package services_test

import (
	"testing"

	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/models"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services"
	"recruitpro_backend/internal/services/dto"
	"recruitpro_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLeadService(t *testing.T) (services.LeadService, *gorm.DB) {
	db := testutil.NewTestDB(t)
	svc := services.NewLeadService(
		repositories.NewLeadRepository(db),
		repositories.NewAssignedLeadRepository(db),
		repositories.NewUserRepository(db),
	)
	return svc, db
}

func boolPtr(b bool) *bool { return &b }

func TestAssignMissingRecruiterFailsFast(t *testing.T) {
	svc, db := newLeadService(t)
	testutil.CreatePendingLead(t, db, "LEAD_1", "Ravi Kumar", "1111111111")

	_, err := svc.Assign("MISSING")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrRecruiterNotFound.Code, appErr.Code)

	// The pending lead must not have been consumed.
	var count int64
	require.NoError(t, db.Model(&models.Lead{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAssignNoPendingLeads(t *testing.T) {
	svc, db := newLeadService(t)
	testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")

	_, err := svc.Assign("REC001")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrNoPendingLeads.Code, appErr.Code)
}

func TestUpdateAppliesFalseButSkipsEmptyStrings(t *testing.T) {
	svc, db := newLeadService(t)
	lead := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")
	require.NoError(t, db.Model(lead).Updates(map[string]interface{}{
		"is_interested": true,
		"category":      "IT",
	}).Error)

	updated, err := svc.Update(lead.ID, &dto.UpdateLeadRequest{
		IsInterested: boolPtr(false),
		Category:     "", // absent, must not clear the stored value
	})
	require.NoError(t, err)
	assert.False(t, updated.IsInterested)
	assert.Equal(t, "IT", updated.Category)
}

func TestUpdateActivationMovesRecruiterLists(t *testing.T) {
	svc, db := newLeadService(t)
	recruiter := testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")
	lead := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")

	recruiter.AssignedLeadIDs = append(recruiter.AssignedLeadIDs, lead.ID)
	recruiter.InactiveLeadIDs = append(recruiter.InactiveLeadIDs, lead.ID)
	require.NoError(t, db.Save(recruiter).Error)

	updated, err := svc.Update(lead.ID, &dto.UpdateLeadRequest{
		IsActive:    boolPtr(true),
		RecruiterID: "REC001",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	var refreshed models.User
	require.NoError(t, db.First(&refreshed, "recruiter_id = ?", "REC001").Error)
	assert.Equal(t, []string{lead.ID}, []string(refreshed.ActiveLeadIDs))
	assert.Empty(t, refreshed.InactiveLeadIDs)
}

func TestUpdateActivationSurvivesMissingRecruiter(t *testing.T) {
	svc, db := newLeadService(t)
	lead := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")

	// The lead update stands even when the named recruiter is unknown.
	updated, err := svc.Update(lead.ID, &dto.UpdateLeadRequest{
		IsActive:    boolPtr(true),
		RecruiterID: "MISSING",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestUpdateUnknownLead(t *testing.T) {
	svc, _ := newLeadService(t)

	_, err := svc.Update("missing-id", &dto.UpdateLeadRequest{Category: "IT"})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrLeadNotFound.Code, appErr.Code)
}

func TestAddFollowUpAppends(t *testing.T) {
	svc, db := newLeadService(t)
	lead := testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")

	_, err := svc.AddFollowUp(lead.ID, "called, call back tomorrow")
	require.NoError(t, err)
	updated, err := svc.AddFollowUp(lead.ID, "interview fixed")
	require.NoError(t, err)

	require.Len(t, updated.FollowUps, 2)
	assert.Equal(t, "called, call back tomorrow", updated.FollowUps[0].Text)
	assert.Equal(t, "interview fixed", updated.FollowUps[1].Text)
	assert.False(t, updated.FollowUps[1].Date.IsZero())
}

func TestGetByLeadID(t *testing.T) {
	svc, db := newLeadService(t)
	testutil.CreateAssignedLead(t, db, "LEAD_1", "Ravi Kumar", "REC001")

	lead, err := svc.GetByLeadID("LEAD_1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", lead.CandidateName)

	_, err = svc.GetByLeadID("LEAD_MISSING")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrLeadNotFound.Code, appErr.Code)
}
