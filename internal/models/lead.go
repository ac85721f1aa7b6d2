package models

import (
	"time"

	"gorm.io/datatypes"
)

// Lead is a candidate sitting in the pending pool. AssignedTo stays
// nil until the assignment workflow claims the lead, at which point the
// record is migrated to assigned_leads and deleted from here. A lead_id
// therefore resolves to exactly one record across the two tables.
type Lead struct {
	BaseModel
	LeadID        string     `gorm:"uniqueIndex;not null" json:"lead_id"`
	CandidateName string     `gorm:"not null;index:idx_leads_name_phone" json:"candidate_name"`
	PhoneNumber   string     `gorm:"not null;index:idx_leads_name_phone" json:"phone_number"`
	Email         string     `gorm:"not null" json:"email"`
	JobCity       string     `json:"job_city"`
	JobArea       string     `json:"job_area"`
	Gender        string     `json:"gender"`
	Age           *int       `json:"age"`
	AppliedOn     *time.Time `json:"applied_on"`
	CandidateCity string     `json:"candidate_city"`
	CandidateArea string     `json:"candidate_area"`
	Education     string     `json:"education"`
	HighestDegree string     `json:"highest_degree"`
	AssignedTo    *string    `json:"assigned_to"`
}

// FollowUp is one note on an assigned lead. The sequence is append-only
// and keeps insertion order.
type FollowUp struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

// AssignedLead is a lead bound to a recruiter, carrying the workflow
// state the pending record does not have.
type AssignedLead struct {
	BaseModel
	LeadID        string     `gorm:"uniqueIndex;not null" json:"lead_id"`
	CandidateName string     `gorm:"not null" json:"candidate_name"`
	PhoneNumber   string     `gorm:"not null" json:"phone_number"`
	Email         string     `gorm:"not null" json:"email"`
	JobCity       string     `json:"job_city"`
	JobArea       string     `json:"job_area"`
	Gender        string     `json:"gender"`
	Age           *int       `json:"age"`
	AppliedOn     *time.Time `json:"applied_on"`
	CandidateCity string     `json:"candidate_city"`
	CandidateArea string     `json:"candidate_area"`
	Education     string     `json:"education"`
	HighestDegree string     `json:"highest_degree"`
	AssignedTo    string     `gorm:"index" json:"assigned_to"`

	IsInterested        bool   `json:"is_interested"`
	NotInterestedReason string `json:"not_interested_reason"`
	Category            string `json:"category"`
	IsOnboarded         bool   `json:"is_onboarded"`
	CompanyID           string `json:"company_id"`
	CompanyName         string `json:"company_name"`
	IsActive            bool   `json:"is_Active"`

	FollowUps datatypes.JSONSlice[FollowUp] `json:"follow_ups"`
}
