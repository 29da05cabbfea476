package schema

import (
	"time"

	"github.com/google/uuid"
)

// Citizen report statuses.
const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
)

// CitizenReport is an issue submitted by a citizen through the intake queue.
type CitizenReport struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	IssueType   string    `json:"type" gorm:"column:issue_type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Urgency     int       `json:"urgency"`
	Status      string    `json:"status" sql:"default:'pending'"`
	CreatedAt   time.Time `json:"created_at"`
}
