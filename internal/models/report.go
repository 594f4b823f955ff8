// internal/models/report.go
package models

// ReportStatus tracks admin handling of a lost/injured dog report.
type ReportStatus string

const (
	ReportPending    ReportStatus = "PENDING"
	ReportTookAction ReportStatus = "TOOK_ACTION"
	ReportResolved   ReportStatus = "RESOLVED"
)

// Report is a lost or injured dog report. PhotoURLs are server-assigned;
// staged local files live in the form layer until the upload succeeds.
type Report struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Phone       string       `json:"phone"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	PhotoURLs   []string     `json:"photoUrls,omitempty"`
	Status      ReportStatus `json:"status"`
	SubmittedAt string       `json:"submittedAt,omitempty"`
	UserID      *int64       `json:"userId,omitempty"` // nil for guest submissions
	Username    string       `json:"username,omitempty"`
}

// ReportPayload is the `report` JSON part of the multipart create/update body.
type ReportPayload struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ReportStatusUpdate is the payload for the admin status endpoint.
type ReportStatusUpdate struct {
	Status ReportStatus `json:"status"`
}
