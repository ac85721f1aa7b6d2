package dto

// UpdateLeadRequest is a partial update of an assigned lead's workflow
// state. Bool fields use pointers so an explicit false is applied while
// an absent field is not; string fields treat "" as absent.
type UpdateLeadRequest struct {
	IsInterested        *bool  `json:"is_interested"`
	IsOnboarded         *bool  `json:"is_onboarded"`
	IsActive            *bool  `json:"is_Active"`
	Category            string `json:"category"`
	CompanyID           string `json:"company_id"`
	CompanyName         string `json:"company_name"`
	NotInterestedReason string `json:"not_interested_reason"`

	// RecruiterID names the recruiter whose active/inactive lists are
	// adjusted when IsActive is present.
	RecruiterID string `json:"rid"`
}

type FollowUpRequest struct {
	FollowUpText string `json:"follow_up_text" validate:"required"`
}

type RecruiterSearchRequest struct {
	RecruiterID    string `json:"recruiterId" validate:"required"`
	SearchCriteria string `json:"searchCriteria" validate:"required"`
	SearchValue    string `json:"searchValue" validate:"required"`
}

type AdminSearchRequest struct {
	SearchCriteria string `json:"searchCriteria" validate:"required"`
	SearchValue    string `json:"searchValue" validate:"required"`
}

type ImportResult struct {
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}
