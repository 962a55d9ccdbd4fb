package models

import "time"

// ExportFormat selects the roster export encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportJobStatus is the lifecycle of an asynchronous export.
type ExportJobStatus string

const (
	ExportJobQueued    ExportJobStatus = "queued"
	ExportJobRunning   ExportJobStatus = "running"
	ExportJobCompleted ExportJobStatus = "completed"
	ExportJobFailed    ExportJobStatus = "failed"
)

// ExportJob tracks one queued enrollment roster export.
type ExportJob struct {
	ID          string          `db:"id" json:"id"`
	Format      ExportFormat    `db:"format" json:"format"`
	Status      ExportJobStatus `db:"status" json:"status"`
	FilePath    *string         `db:"file_path" json:"-"`
	DownloadURL string          `db:"-" json:"downloadUrl,omitempty"`
	Error       *string         `db:"error" json:"error,omitempty"`
	RequestedBy string          `db:"requested_by" json:"requestedBy"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	CompletedAt *time.Time      `db:"completed_at" json:"completedAt,omitempty"`
}
