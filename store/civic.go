package store

import (
	"github.com/jinzhu/gorm"

	"github.com/civictwin/civictwin-api/schema"
)

// civictwin main datastore
type CivicCore interface {
	Ping() error

	// Citizen reports
	SaveReport(issueType, description, location string, urgency int) (*schema.CitizenReport, error)
	ListReports(status string, limit int64) ([]schema.CitizenReport, error)
}

// CivicStore is an implementation of CivicCore
type CivicStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewCivicStore(ormDB *gorm.DB, mongo MongoStore) *CivicStore {
	return &CivicStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *CivicStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}
