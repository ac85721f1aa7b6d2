package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recruitpro_backend/internal/models"
)

var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrNoPendingLeads = errors.New("no unassigned leads available")
)

// NamePhonePair identifies a candidate for import deduplication.
type NamePhonePair struct {
	CandidateName string
	PhoneNumber   string
}

// TimelineBucket is one calendar day of lead creation counts.
type TimelineBucket struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type LeadRepository interface {
	FindAllPending() ([]models.Lead, error)
	CountPending() (int64, error)
	FindExistingPairs(pairs []NamePhonePair) ([]models.Lead, error)
	InsertBatch(leads []models.Lead) error

	// AssignNewest migrates the most recently created pending lead to
	// the assigned store and links it to the recruiter, all inside one
	// transaction: assigned-lead insert, recruiter list update and
	// pending delete either all land or none do.
	AssignNewest(recruiterID string) (*models.AssignedLead, error)

	// TimelineDaily buckets pending-lead creation by calendar day,
	// ascending.
	TimelineDaily() ([]TimelineBucket, error)
}

type LeadRepositoryImpl struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &LeadRepositoryImpl{db: db}
}

func (r *LeadRepositoryImpl) FindAllPending() ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (r *LeadRepositoryImpl) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Count(&count).Error
	return count, err
}

func (r *LeadRepositoryImpl) FindExistingPairs(pairs []NamePhonePair) ([]models.Lead, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	query := r.db.Model(&models.Lead{})
	for i, p := range pairs {
		cond := r.db.Where("candidate_name = ? AND phone_number = ?", p.CandidateName, p.PhoneNumber)
		if i == 0 {
			query = query.Where(cond)
		} else {
			query = query.Or(cond)
		}
	}

	var leads []models.Lead
	err := query.Find(&leads).Error
	return leads, err
}

func (r *LeadRepositoryImpl) InsertBatch(leads []models.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	return r.db.Create(&leads).Error
}

func (r *LeadRepositoryImpl) AssignNewest(recruiterID string) (*models.AssignedLead, error) {
	var assigned *models.AssignedLead

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var recruiter models.User
		if err := tx.First(&recruiter, "recruiter_id = ?", recruiterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		// LIFO: the newest pending lead is handed out first.
		var lead models.Lead
		if err := tx.Where("assigned_to IS NULL").Order("created_at DESC").First(&lead).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoPendingLeads
			}
			return err
		}

		assigned = &models.AssignedLead{
			LeadID:        lead.LeadID,
			CandidateName: lead.CandidateName,
			PhoneNumber:   lead.PhoneNumber,
			Email:         lead.Email,
			JobCity:       lead.JobCity,
			JobArea:       lead.JobArea,
			Gender:        lead.Gender,
			Age:           lead.Age,
			AppliedOn:     lead.AppliedOn,
			CandidateCity: lead.CandidateCity,
			CandidateArea: lead.CandidateArea,
			Education:     lead.Education,
			HighestDegree: lead.HighestDegree,
			AssignedTo:    recruiterID,
		}
		if err := tx.Create(assigned).Error; err != nil {
			return err
		}

		// Every freshly assigned lead starts in the inactive list.
		recruiter.AssignedLeadIDs = append(recruiter.AssignedLeadIDs, assigned.ID)
		recruiter.InactiveLeadIDs = append(recruiter.InactiveLeadIDs, assigned.ID)
		if err := tx.Model(&recruiter).Updates(map[string]interface{}{
			"assigned_lead_ids": recruiter.AssignedLeadIDs,
			"inactive_lead_ids": recruiter.InactiveLeadIDs,
			"updated_at":        time.Now(),
		}).Error; err != nil {
			return err
		}

		return tx.Delete(&lead).Error
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

func (r *LeadRepositoryImpl) TimelineDaily() ([]TimelineBucket, error) {
	var buckets []TimelineBucket
	err := r.db.Model(&models.Lead{}).
		Select("date(created_at) AS date, COUNT(*) AS count").
		Group("date(created_at)").
		Order("date(created_at) ASC").
		Scan(&buckets).Error
	return buckets, err
}
