package store

import (
	"github.com/google/uuid"

	"github.com/civictwin/civictwin-api/schema"
)

// SaveReport creates a citizen report entry in pending status
func (s *CivicStore) SaveReport(issueType, description, location string, urgency int) (*schema.CitizenReport, error) {
	report := schema.CitizenReport{
		ID:          uuid.New(),
		IssueType:   issueType,
		Description: description,
		Location:    location,
		Urgency:     urgency,
		Status:      schema.ReportPending,
	}

	if err := s.ormDB.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports returns recent citizen reports, newest first, optionally
// filtered by status
func (s *CivicStore) ListReports(status string, limit int64) ([]schema.CitizenReport, error) {
	reports := []schema.CitizenReport{}

	query := s.ormDB.Order("created_at desc").Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
