package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:120;not null"`
	FatherName   string  `gorm:"size:120;not null"`
	Email        *string `gorm:"uniqueIndex;size:255"`
	Mobile       string  `gorm:"uniqueIndex;size:20;not null"`
	Occupation   string  `gorm:"size:120"`
	PasswordHash string  `gorm:"column:password;not null"`
	Role         string  `gorm:"index;size:32;not null"`
	Verified     bool    `gorm:"index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string { return "users" }

// DBContribution is the database model for Contribution.
// (user_id, contribution_date) is unique so verification can upsert.
type DBContribution struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_contribution_user_month"`
	ContributionDate time.Time `gorm:"not null;uniqueIndex:idx_contribution_user_month;index"`
	Amount           int64     `gorm:"not null"`
	Mode             string    `gorm:"size:16;not null"`
	ScreenshotID     *uint
	VerifiedBy       uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (DBContribution) TableName() string { return "contributions" }

// DBScreenshot is the database model for Screenshot
type DBScreenshot struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	Month      int    `gorm:"not null;index:idx_screenshot_period"`
	Year       int    `gorm:"not null;index:idx_screenshot_period"`
	ObjectKey  string `gorm:"size:512;not null"`
	URL        string `gorm:"size:1024"`
	Verified   bool   `gorm:"not null"`
	UploadedAt time.Time
}

func (DBScreenshot) TableName() string { return "screenshots" }

// DBExpense is the database model for Expense
type DBExpense struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"size:2000"`
	Amount      int64     `gorm:"not null"`
	ExpenseDate time.Time `gorm:"not null;index"`
	CreatedBy   uint      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DBExpense) TableName() string { return "expenses" }

// DBFeedback is the database model for Feedback
type DBFeedback struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Target    string `gorm:"size:32;not null;index"`
	Message   string `gorm:"size:4000;not null"`
	CreatedAt time.Time
}

func (DBFeedback) TableName() string { return "feedbacks" }

// Models lists every table owned by this package, in migration order.
func Models() []interface{} {
	return []interface{}{&DBUser{}, &DBContribution{}, &DBScreenshot{}, &DBExpense{}, &DBFeedback{}}
}

// isUniqueViolation matches translated and untranslated driver errors.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
