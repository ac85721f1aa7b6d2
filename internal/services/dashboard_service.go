package services

import (
	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services/dto"
)

type DashboardService interface {
	Stats() (*dto.DashboardStats, error)
}

type DashboardServiceImpl struct {
	userRepo     repositories.UserRepository
	leadRepo     repositories.LeadRepository
	assignedRepo repositories.AssignedLeadRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	leadRepo repositories.LeadRepository,
	assignedRepo repositories.AssignedLeadRepository,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:     userRepo,
		leadRepo:     leadRepo,
		assignedRepo: assignedRepo,
	}
}

func (s *DashboardServiceImpl) Stats() (*dto.DashboardStats, error) {
	active, err := s.assignedRepo.CountByActive(true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	inactive, err := s.assignedRepo.CountByActive(false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.leadRepo.CountPending()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recruiters, err := s.userRepo.FindRecruiters()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	perRecruiter := make([]dto.RecruiterStats, 0, len(recruiters))
	for _, r := range recruiters {
		perRecruiter = append(perRecruiter, dto.RecruiterStats{
			Name:     r.FullName,
			Assigned: len(r.AssignedLeadIDs),
			Active:   len(r.ActiveLeadIDs),
		})
	}

	timeline, err := s.leadRepo.TimelineDaily()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		Active:     active,
		Inactive:   inactive,
		Pending:    pending,
		Recruiters: perRecruiter,
		Timeline:   timeline,
	}, nil
}
