package domain

import (
	"fmt"
	"time"
)

// Role is the authorization level of a member.
type Role string

const (
	RoleMember     Role = "member"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role. An empty string yields RoleMember.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleMember, nil
	}
	r := Role(s)
	if !r.Valid() {
		return "", NewValidationError(fmt.Sprintf("unknown role %q", s))
	}
	return r, nil
}

// User represents a registered community member
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	FatherName   string    `json:"fatherName"`
	Email        *string   `json:"email,omitempty"`
	Mobile       string    `json:"mobile"`
	Occupation   string    `json:"occupation,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Name       string
	FatherName string
	Email      string
	Mobile     string
	Occupation string
	Password   string
	Role       Role
}

// ProfileUpdate carries the self-editable profile fields. Nil fields are left untouched.
type ProfileUpdate struct {
	Name       *string
	FatherName *string
	Email      *string
	Occupation *string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims represents the identity asserted by a verified token
type TokenClaims struct {
	UserID    uint
	Mobile    string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Contribution is a verified monthly payment of a member
type Contribution struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"userId"`
	ContributionDate time.Time `json:"contributionDate"`
	Amount           int64     `json:"amount"`
	Mode             string    `json:"mode"`
	ScreenshotID     *uint     `json:"screenshotId,omitempty"`
	VerifiedBy       uint      `json:"verifiedBy"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Contribution payment modes
const (
	ModeOnline = "online"
	ModeCash   = "cash"
)

// ContributionInput describes a contribution to record for a member and month
type ContributionInput struct {
	UserID       uint
	Year         int
	Month        int
	Amount       int64
	Mode         string
	ScreenshotID *uint
}

// ContributionUpdate carries the editable fields of an existing contribution
type ContributionUpdate struct {
	Amount *int64
	Mode   *string
}

// Screenshot is an uploaded payment proof awaiting or past review
type Screenshot struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"userId"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	ObjectKey  string    `json:"objectKey"`
	URL        string    `json:"url"`
	Verified   bool      `json:"verified"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadTicket is a presigned destination for a screenshot upload
type UploadTicket struct {
	ObjectKey string    `json:"objectKey"`
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expense is money spent out of the community fund
type Expense struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Amount      int64     `json:"amount"`
	ExpenseDate time.Time `json:"expenseDate"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExpenseUpdate carries the editable fields of an expense
type ExpenseUpdate struct {
	Title       *string
	Description *string
	Amount      *int64
	ExpenseDate *time.Time
}

// Feedback is a message addressed to admins or superadmins
type Feedback struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Target    Role      `json:"target"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// MonthlyTotal aggregates amounts for one calendar month
type MonthlyTotal struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Total   int64 `json:"total"`
	Entries int64 `json:"entries"`
}

// MonthStart returns the first instant of the given month in UTC.
func MonthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// ValidateMonth checks a year/month pair.
func ValidateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return NewValidationError("month must be between 1 and 12")
	}
	if year < 2000 || year > 9999 {
		return NewValidationError("year is out of range")
	}
	return nil
}
