package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recruitpro_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserSearchColumns maps the accepted search criteria names to store
// columns. Caller-supplied criteria never reach the query layer raw.
var UserSearchColumns = map[string]string{
	"recruiterId":  "recruiter_id",
	"fullName":     "full_name",
	"mobileNumber": "mobile_number",
	"city":         "city",
}

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByRecruiterID(recruiterID string) (*models.User, error)
	FindByColumn(column, value string) (*models.User, error)
	Create(user *models.User) error
	UpdateProfile(recruiterID string, updates map[string]interface{}) (*models.User, error)
	UpdatePassword(recruiterID, passwordHash string) error
	Delete(recruiterID string) error
	FindRecruiters() ([]models.User, error)

	// MarkLeadActive moves a lead id into the recruiter's active list:
	// appended to active_lead_ids, removed by value from inactive_lead_ids.
	MarkLeadActive(recruiterID, leadID string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByRecruiterID(recruiterID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "recruiter_id = ?", recruiterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByColumn looks a user up by one of the UserSearchColumns values.
func (r *UserRepositoryImpl) FindByColumn(column, value string) (*models.User, error) {
	var user models.User
	err := r.db.Where(column+" = ?", value).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("recruiter_id = ?", user.RecruiterID).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdateProfile(recruiterID string, updates map[string]interface{}) (*models.User, error) {
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.User{}).Where("recruiter_id = ?", recruiterID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.FindByRecruiterID(recruiterID)
}

func (r *UserRepositoryImpl) UpdatePassword(recruiterID, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("recruiter_id = ?", recruiterID).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(recruiterID string) error {
	result := r.db.Where("recruiter_id = ?", recruiterID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindRecruiters() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("type = ?", models.UserTypeRecruiter).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) MarkLeadActive(recruiterID, leadID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "recruiter_id = ?", recruiterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.ActiveLeadIDs = append(user.ActiveLeadIDs, leadID)
		// Removal is by value. The list is unordered, so positional
		// removal would detach the wrong lead.
		user.InactiveLeadIDs = removeID(user.InactiveLeadIDs, leadID)

		return tx.Model(&user).Updates(map[string]interface{}{
			"active_lead_ids":   user.ActiveLeadIDs,
			"inactive_lead_ids": user.InactiveLeadIDs,
			"updated_at":        time.Now(),
		}).Error
	})
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
