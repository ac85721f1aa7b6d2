package services

import (
	"time"

	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/logger"
	"recruitpro_backend/internal/metrics"
	"recruitpro_backend/internal/models"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services/dto"
)

type LeadService interface {
	PendingLeads() ([]models.Lead, error)
	Assign(recruiterID string) (*models.AssignedLead, error)
	Update(id string, req *dto.UpdateLeadRequest) (*models.AssignedLead, error)
	AddFollowUp(id, text string) (*models.AssignedLead, error)
	GetByLeadID(leadID string) (*models.AssignedLead, error)
}

type LeadServiceImpl struct {
	leadRepo     repositories.LeadRepository
	assignedRepo repositories.AssignedLeadRepository
	userRepo     repositories.UserRepository
}

func NewLeadService(
	leadRepo repositories.LeadRepository,
	assignedRepo repositories.AssignedLeadRepository,
	userRepo repositories.UserRepository,
) LeadService {
	return &LeadServiceImpl{
		leadRepo:     leadRepo,
		assignedRepo: assignedRepo,
		userRepo:     userRepo,
	}
}

func (s *LeadServiceImpl) PendingLeads() ([]models.Lead, error) {
	leads, err := s.leadRepo.FindAllPending()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return leads, nil
}

// Assign hands the newest pending lead to the recruiter. A missing
// recruiter aborts the whole operation; nothing is migrated.
func (s *LeadServiceImpl) Assign(recruiterID string) (*models.AssignedLead, error) {
	assigned, err := s.leadRepo.AssignNewest(recruiterID)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrRecruiterNotFound
		case apperrors.Is(err, repositories.ErrNoPendingLeads):
			return nil, apperrors.ErrNoPendingLeads
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	metrics.RecordAssignment()
	logger.Info("lead assigned", "lead_id", assigned.LeadID, "recruiter_id", recruiterID)
	return assigned, nil
}

// Update applies the present fields of req to one assigned lead.
// Empty strings are no-ops; explicit false on a bool pointer is applied.
func (s *LeadServiceImpl) Update(id string, req *dto.UpdateLeadRequest) (*models.AssignedLead, error) {
	updates := map[string]interface{}{}

	if req.IsInterested != nil {
		updates["is_interested"] = *req.IsInterested
	}
	if req.IsOnboarded != nil {
		updates["is_onboarded"] = *req.IsOnboarded
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.CompanyID != "" {
		updates["company_id"] = req.CompanyID
	}
	if req.CompanyName != "" {
		updates["company_name"] = req.CompanyName
	}
	if req.NotInterestedReason != "" {
		updates["not_interested_reason"] = req.NotInterestedReason
	}

	lead, err := s.assignedRepo.UpdateFields(id, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLeadNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Activation moves the lead between the recruiter's lists. A
	// recruiter that cannot be found leaves the lists untouched; the
	// lead update above still stands.
	if req.IsActive != nil && req.RecruiterID != "" {
		if err := s.userRepo.MarkLeadActive(req.RecruiterID, id); err != nil {
			if !apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.InternalError(err)
			}
			logger.Warn("lead updated but recruiter not found for list update",
				"lead_id", id, "recruiter_id", req.RecruiterID)
		}
	}

	return lead, nil
}

func (s *LeadServiceImpl) AddFollowUp(id, text string) (*models.AssignedLead, error) {
	lead, err := s.assignedRepo.AppendFollowUp(id, models.FollowUp{
		Date: time.Now(),
		Text: text,
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrLeadNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	metrics.RecordFollowUp()
	return lead, nil
}

func (s *LeadServiceImpl) GetByLeadID(leadID string) (*models.AssignedLead, error) {
	lead, err := s.assignedRepo.FindByLeadID(leadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLeadNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return lead, nil
}
