package dto

import "recruitpro_backend/internal/models"

type AddClientLeadRequest struct {
	LeadID      string `json:"leadId" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
}

type DistributionEntry struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// ClientResponse is a client with its working leads expanded.
type ClientResponse struct {
	models.Client
	WorkingLeads []models.AssignedLead `json:"working_lead_records"`
}
