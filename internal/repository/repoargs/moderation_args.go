package repoargs

import (
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
)

type CreateReport struct {
	ReporterID        int64
	ReportedUserID    *int64
	ReportedProductID *int64
	ReportedMessageID *int64
	Type              domain.ReportType
	Description       string
}

type UpdateReportStatus struct {
	ID              int64
	Status          domain.ReportStatusType
	ResolvedBy      *int64
	ResolutionNotes string
}

type CreateAdminLog struct {
	AdminID       int64
	Action        string
	ModelAffected string
	ObjectID      *int64
	IPAddress     string
	Details       string
}

type BlockUser struct {
	UserID      int64
	BlockedBy   int64
	Reason      string
	IsPermanent bool
	UnblockDate *time.Time
}
