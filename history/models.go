package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerationLog records one successful generation run for the history page.
type GenerationLog struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Tool      string    `gorm:"index;not null" json:"tool"` // "slips" or "worksheet"
	Params    string    `gorm:"type:text" json:"params"`    // JSON snapshot of the options used
	Records   int       `json:"records"`                    // records or items rendered
	Pages     int       `json:"pages"`
	ClientIP  string    `json:"clientIp"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *GenerationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// Issue statuses move open → acknowledged → resolved; any order is accepted,
// the server only validates membership.
const (
	IssueStatusOpen         = "open"
	IssueStatusAcknowledged = "acknowledged"
	IssueStatusResolved     = "resolved"
)

// IssueReport is a user-submitted problem report.
type IssueReport struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Category    string    `json:"category"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Contact     string    `json:"contact"`
	Status      string    `gorm:"index;default:open" json:"status"`
	ClientIP    string    `json:"clientIp"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (i *IssueReport) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Status == "" {
		i.Status = IssueStatusOpen
	}
	return nil
}

// ValidIssueStatus reports whether s is one of the known statuses.
func ValidIssueStatus(s string) bool {
	switch s {
	case IssueStatusOpen, IssueStatusAcknowledged, IssueStatusResolved:
		return true
	}
	return false
}
