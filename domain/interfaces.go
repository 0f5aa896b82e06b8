package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByMobile(ctx context.Context, mobile string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdateProfile(ctx context.Context, user *User) error
	SetVerified(ctx context.Context, id uint, verified bool) error
	SetRole(ctx context.Context, id uint, role Role) error
	// Delete removes the user together with the user's screenshots.
	Delete(ctx context.Context, id uint) error
}

// ContributionRepository defines contribution data access operations
type ContributionRepository interface {
	// Upsert inserts or overwrites the record for (UserID, ContributionDate) in one statement.
	Upsert(ctx context.Context, c *Contribution) (*Contribution, error)
	FindByID(ctx context.Context, id uint) (*Contribution, error)
	Update(ctx context.Context, c *Contribution) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint) ([]*Contribution, error)
	ListByMonth(ctx context.Context, month time.Time) ([]*Contribution, error)
	MonthlyTotals(ctx context.Context, year int) ([]MonthlyTotal, error)
}

// ScreenshotRepository defines screenshot data access operations
type ScreenshotRepository interface {
	Create(ctx context.Context, s *Screenshot) error
	FindByID(ctx context.Context, id uint) (*Screenshot, error)
	ListByUser(ctx context.Context, userID uint) ([]*Screenshot, error)
	ListByMonth(ctx context.Context, year, month int) ([]*Screenshot, error)
	// VerifyWithContribution marks the screenshot verified and upserts c
	// in one transaction; either both writes land or neither does.
	VerifyWithContribution(ctx context.Context, id uint, c *Contribution) (*Contribution, error)
}

// ExpenseRepository defines expense data access operations
type ExpenseRepository interface {
	Create(ctx context.Context, e *Expense) error
	FindByID(ctx context.Context, id uint) (*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Expense, error)
	MonthlyTotals(ctx context.Context, year int) ([]MonthlyTotal, error)
}

// FeedbackRepository defines feedback data access operations
type FeedbackRepository interface {
	Create(ctx context.Context, f *Feedback) error
	ListByTarget(ctx context.Context, target Role) ([]*Feedback, error)
}

// TokenDenylist records revoked token ids until they would have expired anyway
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, mobile, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken, accessToken string) error
}

// UserService defines member management operations
type UserService interface {
	Profile(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, actor *User, upd ProfileUpdate) (*User, error)
	List(ctx context.Context, actor *User) ([]*User, error)
	VerifyMember(ctx context.Context, actor *User, id uint) (*User, error)
	MakeAdmin(ctx context.Context, actor *User, id uint) (*User, error)
	Delete(ctx context.Context, actor *User, id uint) error
}

// ContributionService defines contribution operations
type ContributionService interface {
	// Prepare checks the actor and input and returns the row Record would
	// store, without writing it.
	Prepare(ctx context.Context, actor *User, in ContributionInput) (*Contribution, error)
	Record(ctx context.Context, actor *User, in ContributionInput) (*Contribution, error)
	Update(ctx context.Context, actor *User, id uint, upd ContributionUpdate) (*Contribution, error)
	Delete(ctx context.Context, actor *User, id uint) error
	ListForUser(ctx context.Context, actor *User, userID uint) ([]*Contribution, error)
	ListForMonth(ctx context.Context, year, month int) ([]*Contribution, error)
	Summary(ctx context.Context, year int) ([]MonthlyTotal, error)
}

// ScreenshotService defines payment proof operations
type ScreenshotService interface {
	UploadURL(ctx context.Context, actor *User, year, month int) (*UploadTicket, error)
	Submit(ctx context.Context, actor *User, year, month int, objectKey string) (*Screenshot, error)
	ListMine(ctx context.Context, actor *User) ([]*Screenshot, error)
	ListForMonth(ctx context.Context, actor *User, year, month int) ([]*Screenshot, error)
	Verify(ctx context.Context, actor *User, id uint, amount int64, mode string) (*Contribution, error)
}

// ExpenseService defines expense operations
type ExpenseService interface {
	Create(ctx context.Context, actor *User, e *Expense) (*Expense, error)
	Update(ctx context.Context, actor *User, id uint, upd ExpenseUpdate) (*Expense, error)
	Delete(ctx context.Context, actor *User, id uint) error
	List(ctx context.Context) ([]*Expense, error)
	Summary(ctx context.Context, year int) ([]MonthlyTotal, error)
}

// FeedbackService defines feedback operations
type FeedbackService interface {
	Submit(ctx context.Context, actor *User, target Role, message string) (*Feedback, error)
	List(ctx context.Context, actor *User) ([]*Feedback, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	IssueAccessToken(user *User) (string, error)
	IssueRefreshToken(user *User) (string, error)
	VerifyAccessToken(token string) (*TokenClaims, error)
	VerifyRefreshToken(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// ObjectStorage hands out presigned upload locations for payment screenshots
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key string) (url string, expiresAt time.Time, err error)
	ObjectURL(key string) string
}

// PolicyService is the single authorization check used by every guarded operation
type PolicyService interface {
	// Require returns ErrForbidden unless actor's role grants action on resource.
	Require(ctx context.Context, actor *User, resource Resource, action Action) error
	CheckPermission(role Role, resource Resource, action Action) (bool, error)
	GetPolicies() ([][]string, error)
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
}
