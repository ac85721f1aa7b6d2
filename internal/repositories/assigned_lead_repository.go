package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"recruitpro_backend/internal/models"
)

// MatchKind tells the search layer how a criteria column is compared.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchSubstring
	MatchBool
)

type AssignedLeadRepository interface {
	FindByID(id string) (*models.AssignedLead, error)
	FindByLeadID(leadID string) (*models.AssignedLead, error)
	FindByIDs(ids []string) ([]models.AssignedLead, error)
	UpdateFields(id string, updates map[string]interface{}) (*models.AssignedLead, error)
	AppendFollowUp(id string, followUp models.FollowUp) (*models.AssignedLead, error)
	CountByActive(active bool) (int64, error)

	// SearchColumn filters by one column with the given match kind.
	// Columns come from the service allow-list, never from a caller.
	SearchColumn(column string, kind MatchKind, value string) ([]models.AssignedLead, error)
	SearchPendingColumn(column string, kind MatchKind, value string) ([]models.Lead, error)
}

type AssignedLeadRepositoryImpl struct {
	db *gorm.DB
}

func NewAssignedLeadRepository(db *gorm.DB) AssignedLeadRepository {
	return &AssignedLeadRepositoryImpl{db: db}
}

func (r *AssignedLeadRepositoryImpl) FindByID(id string) (*models.AssignedLead, error) {
	var lead models.AssignedLead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *AssignedLeadRepositoryImpl) FindByLeadID(leadID string) (*models.AssignedLead, error) {
	var lead models.AssignedLead
	err := r.db.First(&lead, "lead_id = ?", leadID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *AssignedLeadRepositoryImpl) FindByIDs(ids []string) ([]models.AssignedLead, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var leads []models.AssignedLead
	err := r.db.Where("id IN ?", []string(ids)).Find(&leads).Error
	return leads, err
}

func (r *AssignedLeadRepositoryImpl) UpdateFields(id string, updates map[string]interface{}) (*models.AssignedLead, error) {
	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		result := r.db.Model(&models.AssignedLead{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrLeadNotFound
		}
	}
	return r.FindByID(id)
}

func (r *AssignedLeadRepositoryImpl) AppendFollowUp(id string, followUp models.FollowUp) (*models.AssignedLead, error) {
	var updated *models.AssignedLead

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var lead models.AssignedLead
		if err := tx.First(&lead, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeadNotFound
			}
			return err
		}

		lead.FollowUps = append(lead.FollowUps, followUp)
		if err := tx.Model(&lead).Updates(map[string]interface{}{
			"follow_ups": lead.FollowUps,
			"updated_at": time.Now(),
		}).Error; err != nil {
			return err
		}

		updated = &lead
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *AssignedLeadRepositoryImpl) CountByActive(active bool) (int64, error) {
	var count int64
	err := r.db.Model(&models.AssignedLead{}).Where("is_active = ?", active).Count(&count).Error
	return count, err
}

func (r *AssignedLeadRepositoryImpl) SearchColumn(column string, kind MatchKind, value string) ([]models.AssignedLead, error) {
	var leads []models.AssignedLead
	err := applyMatch(r.db.Model(&models.AssignedLead{}), column, kind, value).Find(&leads).Error
	return leads, err
}

func (r *AssignedLeadRepositoryImpl) SearchPendingColumn(column string, kind MatchKind, value string) ([]models.Lead, error) {
	var leads []models.Lead
	err := applyMatch(r.db.Model(&models.Lead{}), column, kind, value).Find(&leads).Error
	return leads, err
}

// applyMatch builds the WHERE clause for one allow-listed column.
// LOWER(...) LIKE keeps substring matching portable across dialects.
func applyMatch(query *gorm.DB, column string, kind MatchKind, value string) *gorm.DB {
	switch kind {
	case MatchBool:
		return query.Where(column+" = ?", strings.EqualFold(value, "yes"))
	case MatchSubstring:
		return query.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
	default:
		return query.Where(column+" = ?", value)
	}
}
