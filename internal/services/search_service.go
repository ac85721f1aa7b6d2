package services

import (
	"strings"

	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/models"
	"recruitpro_backend/internal/repositories"
)

// leadCriteria is the allow-list of searchable lead fields. Criteria
// names arrive from callers; only names in this table ever reach the
// query layer, and only as the typed column descriptors below.
type leadCriterion struct {
	column  string
	kind    repositories.MatchKind
	pending bool // field also exists on the pending store
}

var leadCriteria = map[string]leadCriterion{
	// Boolean flags, matched "yes" -> true, anything else -> false.
	"is_interested": {column: "is_interested", kind: repositories.MatchBool},
	"is_onboarded":  {column: "is_onboarded", kind: repositories.MatchBool},
	"is_Active":     {column: "is_active", kind: repositories.MatchBool},

	// Case-insensitive substring fields.
	"candidate_name": {column: "candidate_name", kind: repositories.MatchSubstring, pending: true},
	"email":          {column: "email", kind: repositories.MatchSubstring, pending: true},
	"job_city":       {column: "job_city", kind: repositories.MatchSubstring, pending: true},
	"company_name":   {column: "company_name", kind: repositories.MatchSubstring},
	"category":       {column: "category", kind: repositories.MatchSubstring},

	// Everything else matches exactly.
	"lead_id":               {column: "lead_id", kind: repositories.MatchExact, pending: true},
	"phone_number":          {column: "phone_number", kind: repositories.MatchExact, pending: true},
	"job_area":              {column: "job_area", kind: repositories.MatchExact, pending: true},
	"gender":                {column: "gender", kind: repositories.MatchExact, pending: true},
	"candidate_city":        {column: "candidate_city", kind: repositories.MatchExact, pending: true},
	"candidate_area":        {column: "candidate_area", kind: repositories.MatchExact, pending: true},
	"education":             {column: "education", kind: repositories.MatchExact, pending: true},
	"highest_degree":        {column: "highest_degree", kind: repositories.MatchExact, pending: true},
	"assigned_to":           {column: "assigned_to", kind: repositories.MatchExact},
	"company_id":            {column: "company_id", kind: repositories.MatchExact},
	"not_interested_reason": {column: "not_interested_reason", kind: repositories.MatchExact},
}

type SearchService interface {
	// AdminSearch queries both the pending and assigned stores and
	// concatenates the results, pending first.
	AdminSearch(criteria, value string) ([]interface{}, error)

	// RecruiterSearch filters the recruiter's assigned leads in memory
	// with the same boolean/substring rules.
	RecruiterSearch(recruiterID, criteria, value string) ([]models.AssignedLead, error)
}

type SearchServiceImpl struct {
	userRepo     repositories.UserRepository
	assignedRepo repositories.AssignedLeadRepository
}

func NewSearchService(
	userRepo repositories.UserRepository,
	assignedRepo repositories.AssignedLeadRepository,
) SearchService {
	return &SearchServiceImpl{
		userRepo:     userRepo,
		assignedRepo: assignedRepo,
	}
}

func (s *SearchServiceImpl) AdminSearch(criteria, value string) ([]interface{}, error) {
	criterion, ok := leadCriteria[criteria]
	if !ok {
		return nil, apperrors.ErrInvalidCriteria.WithDetails(map[string]interface{}{
			"criteria": criteria,
		})
	}

	results := []interface{}{}

	if criterion.pending {
		pending, err := s.assignedRepo.SearchPendingColumn(criterion.column, criterion.kind, value)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		for _, lead := range pending {
			results = append(results, lead)
		}
	}

	assigned, err := s.assignedRepo.SearchColumn(criterion.column, criterion.kind, value)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, lead := range assigned {
		results = append(results, lead)
	}

	return results, nil
}

func (s *SearchServiceImpl) RecruiterSearch(recruiterID, criteria, value string) ([]models.AssignedLead, error) {
	criterion, ok := leadCriteria[criteria]
	if !ok {
		return nil, apperrors.ErrInvalidCriteria.WithDetails(map[string]interface{}{
			"criteria": criteria,
		})
	}

	user, err := s.userRepo.FindByRecruiterID(recruiterID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrRecruiterNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	leads, err := s.assignedRepo.FindByIDs(user.AssignedLeadIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matched := []models.AssignedLead{}
	for _, lead := range leads {
		if matchLead(&lead, criterion, value) {
			matched = append(matched, lead)
		}
	}
	return matched, nil
}

func matchLead(lead *models.AssignedLead, criterion leadCriterion, value string) bool {
	switch criterion.kind {
	case repositories.MatchBool:
		want := strings.EqualFold(value, "yes")
		return boolField(lead, criterion.column) == want
	case repositories.MatchSubstring:
		return strings.Contains(
			strings.ToLower(stringField(lead, criterion.column)),
			strings.ToLower(value),
		)
	default:
		return stringField(lead, criterion.column) == value
	}
}

func boolField(lead *models.AssignedLead, column string) bool {
	switch column {
	case "is_interested":
		return lead.IsInterested
	case "is_onboarded":
		return lead.IsOnboarded
	case "is_active":
		return lead.IsActive
	}
	return false
}

func stringField(lead *models.AssignedLead, column string) string {
	switch column {
	case "lead_id":
		return lead.LeadID
	case "candidate_name":
		return lead.CandidateName
	case "phone_number":
		return lead.PhoneNumber
	case "email":
		return lead.Email
	case "job_city":
		return lead.JobCity
	case "job_area":
		return lead.JobArea
	case "gender":
		return lead.Gender
	case "candidate_city":
		return lead.CandidateCity
	case "candidate_area":
		return lead.CandidateArea
	case "education":
		return lead.Education
	case "highest_degree":
		return lead.HighestDegree
	case "assigned_to":
		return lead.AssignedTo
	case "category":
		return lead.Category
	case "company_id":
		return lead.CompanyID
	case "company_name":
		return lead.CompanyName
	case "not_interested_reason":
		return lead.NotInterestedReason
	}
	return ""
}
