package services_test

import (
	"testing"

	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/email"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services"
	"recruitpro_backend/internal/services/dto"
	"recruitpro_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (services.UserService, *gorm.DB) {
	db := testutil.NewTestDB(t)
	svc := services.NewUserService(
		repositories.NewUserRepository(db),
		repositories.NewAssignedLeadRepository(db),
		email.NoopNotifier{},
	)
	return svc, db
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Create(&dto.CreateUserRequest{
		FullName:      "Asha Verma",
		MobileNumber:  "9990001111",
		City:          "Pune",
		Qualification: "MBA",
		Type:          "Recruiter",
		RecruiterID:   "REC001",
		Password:      "secret123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotEmpty(t, user.ID)
}

func TestCreateUserDuplicateRecruiterID(t *testing.T) {
	svc, db := newUserService(t)
	testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")

	_, err := svc.Create(&dto.CreateUserRequest{
		FullName:      "Someone Else",
		MobileNumber:  "1234567890",
		City:          "Delhi",
		Qualification: "B.A.",
		Type:          "Recruiter",
		RecruiterID:   "REC001",
		Password:      "secret123",
	})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrRecruiterExists.Code, appErr.Code)
}

func TestSearchExpandsLeadLists(t *testing.T) {
	svc, db := newUserService(t)

	recruiter := testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")
	a := testutil.CreateAssignedLead(t, db, "LEAD_A", "Ravi Kumar", "REC001")
	b := testutil.CreateAssignedLead(t, db, "LEAD_B", "Meena Iyer", "REC001")

	recruiter.AssignedLeadIDs = append(recruiter.AssignedLeadIDs, a.ID, b.ID)
	recruiter.ActiveLeadIDs = append(recruiter.ActiveLeadIDs, a.ID)
	recruiter.InactiveLeadIDs = append(recruiter.InactiveLeadIDs, b.ID)
	require.NoError(t, db.Save(recruiter).Error)

	resp, err := svc.Search("recruiterId", "REC001")
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", resp.FullName)
	assert.Len(t, resp.AssignedLeads, 2)
	require.Len(t, resp.ActiveLeads, 1)
	assert.Equal(t, "LEAD_A", resp.ActiveLeads[0].LeadID)
	require.Len(t, resp.InactiveLeads, 1)
	assert.Equal(t, "LEAD_B", resp.InactiveLeads[0].LeadID)
}

func TestSearchRejectsUnknownCriteria(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Search("passwordHash", "x")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrInvalidCriteria.Code, appErr.Code)
}

func TestSearchUnknownRecruiter(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Search("recruiterId", "MISSING")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrRecruiterNotFound.Code, appErr.Code)
}

func TestUpdateSkipsEmptyFields(t *testing.T) {
	svc, db := newUserService(t)
	testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")

	updated, err := svc.Update("REC001", &dto.UpdateUserRequest{
		City: "Bengaluru",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru", updated.City)
	assert.Equal(t, "Asha Verma", updated.FullName)
}

func TestResetPasswordValidatesLength(t *testing.T) {
	svc, db := newUserService(t)
	testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")

	err := svc.ResetPassword("REC001", "abc")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeBadRequest, appErr.Code)

	require.NoError(t, svc.ResetPassword("REC001", "longenough"))
}

func TestGetActiveLeadsUnknownRecruiter(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetActiveLeads("MISSING")

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrRecruiterNotFound.Code, appErr.Code)
}
