// Package model defines the record types the gym keeps: members, monthly
// fees, ad-hoc finance records, and settings.
package model

// MemberStatus indicates whether a member is currently enrolled.
type MemberStatus string

// Member statuses. Members are never deleted, only deactivated.
const (
	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
)

// Member is one enrolled (or formerly enrolled) gym member. MonthlyFee is the
// default amount billed when dues are generated.
type Member struct {
	ID             string       `json:"id"`
	FullName       string       `json:"fullName" validate:"required"`
	PhoneNumber    string       `json:"phoneNumber"`
	CNIC           string       `json:"cnic"`
	Address        string       `json:"address"`
	JoiningDate    Date         `json:"joiningDate" validate:"required"`
	MembershipPlan string       `json:"membershipPlan"`
	MonthlyFee     float64      `json:"monthlyFee" validate:"gte=0"`
	Status         MemberStatus `json:"status" validate:"required"`
	Notes          string       `json:"notes"`
}

// IsActive reports whether the member is billed during due generation.
func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}
