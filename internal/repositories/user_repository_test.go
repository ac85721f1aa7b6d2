package repositories_test

import (
	"testing"

	"recruitpro_backend/internal/models"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCreateRejectsDuplicateRecruiterID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")

	err := repo.Create(&models.User{
		FullName:      "Another Person",
		MobileNumber:  "1234567890",
		City:          "Delhi",
		Qualification: "MBA",
		Type:          models.UserTypeRecruiter,
		RecruiterID:   "REC001",
		PasswordHash:  "x",
	})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)
}

func TestUpdateProfileUnknownRecruiter(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	_, err := repo.UpdateProfile("MISSING", map[string]interface{}{"city": "Delhi"})
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestMarkLeadActiveRemovesByValue(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	recruiter := testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")
	recruiter.AssignedLeadIDs = datatypes.JSONSlice[string]{"id-a", "id-b", "id-c"}
	recruiter.InactiveLeadIDs = datatypes.JSONSlice[string]{"id-a", "id-b", "id-c"}
	require.NoError(t, db.Save(recruiter).Error)

	// Activating the middle entry must remove exactly that entry, not
	// whichever sits at its position.
	require.NoError(t, repo.MarkLeadActive("REC001", "id-b"))

	updated, err := repo.FindByRecruiterID("REC001")
	require.NoError(t, err)
	assert.Equal(t, []string{"id-b"}, []string(updated.ActiveLeadIDs))
	assert.Equal(t, []string{"id-a", "id-c"}, []string(updated.InactiveLeadIDs))
	assert.Equal(t, []string{"id-a", "id-b", "id-c"}, []string(updated.AssignedLeadIDs))
}

func TestMarkLeadActiveUnknownRecruiter(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	err := repo.MarkLeadActive("MISSING", "id-a")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestFindRecruitersExcludesDevelopers(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	testutil.CreateRecruiter(t, db, "REC001", "Asha Verma")
	dev := &models.User{
		FullName:      "Dev Person",
		MobileNumber:  "1234567890",
		City:          "Delhi",
		Qualification: "B.Tech",
		Type:          models.UserTypeDeveloper,
		RecruiterID:   "DEV001",
		PasswordHash:  "x",
	}
	require.NoError(t, db.Create(dev).Error)

	recruiters, err := repo.FindRecruiters()
	require.NoError(t, err)
	require.Len(t, recruiters, 1)
	assert.Equal(t, "REC001", recruiters[0].RecruiterID)
}

func TestDeleteUnknownRecruiter(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository(db)

	err := repo.Delete("MISSING")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
