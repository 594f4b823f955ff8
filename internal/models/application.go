// internal/models/application.go
package models

// ApplicationType distinguishes the adoption and purchase flows.
type ApplicationType string

const (
	ApplicationAdoption ApplicationType = "ADOPTION"
	ApplicationPurchase ApplicationType = "PURCHASE"
)

// ApplicationStatus values are server-authoritative; the client only requests
// a transition and reflects the confirmed result.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// Application is an adoption or purchase application filed against a dog.
type Application struct {
	ID             int64             `json:"id"`
	DogID          int64             `json:"dogId"`
	DogName        string            `json:"dogName,omitempty"`
	Type           ApplicationType   `json:"type"`
	ApplicantName  string            `json:"applicantName"`
	ApplicantEmail string            `json:"applicantEmail"`
	ApplicantPhone string            `json:"applicantPhone"`
	Address        string            `json:"address,omitempty"`
	Message        string            `json:"message,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AdminNotes     string            `json:"adminNotes,omitempty"`
	SubmittedAt    string            `json:"submittedAt,omitempty"`
	ProcessedAt    string            `json:"processedAt,omitempty"`
}

// NewApplicationRequest is the payload for POST /api/applications.
type NewApplicationRequest struct {
	DogID          int64           `json:"dogId"`
	Type           ApplicationType `json:"type"`
	ApplicantName  string          `json:"applicantName"`
	ApplicantEmail string          `json:"applicantEmail"`
	ApplicantPhone string          `json:"applicantPhone"`
	Address        string          `json:"address,omitempty"`
	Message        string          `json:"message,omitempty"`
}

// ApplicationStatusUpdate is the payload for the admin status endpoint.
type ApplicationStatusUpdate struct {
	Status     ApplicationStatus `json:"status"`
	AdminNotes string            `json:"adminNotes,omitempty"`
}
