package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recruitpro_backend/internal/models"
)

var ErrClientNotFound = errors.New("client not found")

type ClientRepository interface {
	FindAll() ([]models.Client, error)
	FindByCompanyName(companyName string) (*models.Client, error)

	// AddLead places an assigned lead with a company, creating the
	// client record on first placement. Repeat placements of the same
	// lead are ignored.
	AddLead(companyName, leadID string) (*models.Client, error)
}

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) FindAll() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Order("company_name ASC").Find(&clients).Error
	return clients, err
}

func (r *ClientRepositoryImpl) FindByCompanyName(companyName string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "company_name = ?", companyName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) AddLead(companyName, leadID string) (*models.Client, error) {
	var out *models.Client

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		err := tx.First(&client, "company_name = ?", companyName).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			client = models.Client{
				CompanyName:    companyName,
				WorkingLeadIDs: []string{leadID},
			}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}
			out = &client
			return nil
		}
		if err != nil {
			return err
		}

		for _, id := range client.WorkingLeadIDs {
			if id == leadID {
				out = &client
				return nil
			}
		}

		client.WorkingLeadIDs = append(client.WorkingLeadIDs, leadID)
		if err := tx.Model(&client).Updates(map[string]interface{}{
			"working_lead_ids": client.WorkingLeadIDs,
			"updated_at":       time.Now(),
		}).Error; err != nil {
			return err
		}

		out = &client
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
