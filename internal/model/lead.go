package model

// Lead status constants. A status is set by the owning user after a lead
// has been delivered to them.
const (
	LeadStatusNotInterested = "not_interested"
	LeadStatusMaybe         = "maybe"
	LeadStatusInterested    = "interested"
)

// ValidLeadStatus reports whether s is one of the allowed status values.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNotInterested, LeadStatusMaybe, LeadStatusInterested:
		return true
	}
	return false
}

// Lead is a prospect record. Leads are shared read-only reference data;
// they are created by catalog seeding and immutable thereafter.
type Lead struct {
	ID         int64  `json:"id" db:"id"`
	FullName   string `json:"full_name" db:"full_name"`
	Email      string `json:"email" db:"email"`
	Phone      string `json:"phone" db:"phone"`
	Country    string `json:"country" db:"country"`
	CompanyID  int64  `json:"company_id" db:"company_id"`
	SourceInfo string `json:"source_info" db:"source_info"`
}

// DeliveredLead is the view of a lead as delivered to a user: the lead's
// contact fields joined with its company and category, plus the per-user
// tracking fields. Status fields are empty until the user sets them.
type DeliveredLead struct {
	LeadID          int64  `json:"lead_id" db:"lead_id"`
	FullName        string `json:"full_name" db:"full_name"`
	Email           string `json:"email" db:"email"`
	Phone           string `json:"phone" db:"phone"`
	Country         string `json:"country" db:"country"`
	Company         string `json:"company" db:"company"`
	Category        string `json:"category" db:"category"`
	CompanyOverview string `json:"company_overview" db:"company_overview"`
	CompanyWebsite  string `json:"company_website" db:"company_website"`

	// DeliveryDate is the calendar day (YYYY-MM-DD) the lead was assigned.
	DeliveryDate string `json:"delivery_date" db:"delivery_date"`

	// Status is the user's classification, empty if not yet set.
	Status string `json:"status" db:"status"`

	// NextActionDate is the user's follow-up date (YYYY-MM-DD), if set.
	NextActionDate string `json:"next_action_date" db:"next_action_date"`
}
