package document

import "time"

type Document struct {
	ID          string
	CompanyID   string
	UploadedBy  string
	Name        string
	Path        string
	ContentType string
	Size        int64
	CreatedAt   time.Time
}
