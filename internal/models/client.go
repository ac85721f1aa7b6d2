package models

import "gorm.io/datatypes"

// Client is a hiring company. WorkingLeadIDs references the assigned
// leads placed with it; appends are deduplicated.
type Client struct {
	BaseModel
	CompanyName    string                      `gorm:"uniqueIndex;not null" json:"company_name"`
	WorkingLeadIDs datatypes.JSONSlice[string] `json:"working_leads"`
}
