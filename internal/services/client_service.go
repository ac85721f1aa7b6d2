package services

import (
	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services/dto"
)

type ClientService interface {
	AddLead(req *dto.AddClientLeadRequest) error
	Distribution() ([]dto.DistributionEntry, error)
	All() ([]dto.ClientResponse, error)
}

type ClientServiceImpl struct {
	clientRepo   repositories.ClientRepository
	assignedRepo repositories.AssignedLeadRepository
}

func NewClientService(
	clientRepo repositories.ClientRepository,
	assignedRepo repositories.AssignedLeadRepository,
) ClientService {
	return &ClientServiceImpl{
		clientRepo:   clientRepo,
		assignedRepo: assignedRepo,
	}
}

// AddLead records a working lead against a client company, creating the
// client on first use.
func (s *ClientServiceImpl) AddLead(req *dto.AddClientLeadRequest) error {
	lead, err := s.assignedRepo.FindByLeadID(req.LeadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLeadNotFound) {
			return apperrors.ErrLeadNotFound
		}
		return apperrors.InternalError(err)
	}
	if _, err := s.clientRepo.AddLead(req.CompanyName, lead.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ClientServiceImpl) Distribution() ([]dto.DistributionEntry, error) {
	clients, err := s.clientRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	entries := make([]dto.DistributionEntry, 0, len(clients))
	for _, c := range clients {
		entries = append(entries, dto.DistributionEntry{
			Company: c.CompanyName,
			Count:   len(c.WorkingLeadIDs),
		})
	}
	return entries, nil
}

func (s *ClientServiceImpl) All() ([]dto.ClientResponse, error) {
	clients, err := s.clientRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		leads, err := s.assignedRepo.FindByIDs(c.WorkingLeadIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, dto.ClientResponse{
			Client:       c,
			WorkingLeads: leads,
		})
	}
	return responses, nil
}
