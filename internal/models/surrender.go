// internal/models/surrender.go
package models

// SurrenderStatus tracks admin handling of a surrender request.
type SurrenderStatus string

const (
	SurrenderPending  SurrenderStatus = "PENDING"
	SurrenderApproved SurrenderStatus = "APPROVED"
	SurrenderRejected SurrenderStatus = "REJECTED"
	SurrenderComplete SurrenderStatus = "COMPLETED"
)

// SurrenderRequest is an owner-initiated request to relinquish a dog into the
// platform's care. It is the richest form in the system and is submitted as
// multipart: one `surrenderRequest` JSON part plus `photos` file parts.
type SurrenderRequest struct {
	SurrenderID    int64           `json:"surrenderId"`
	OwnerName      string          `json:"ownerName"`
	OwnerPhone     string          `json:"ownerPhone"`
	OwnerEmail     string          `json:"ownerEmail,omitempty"`
	OwnerAddress   string          `json:"ownerAddress,omitempty"`
	DogName        string          `json:"dogName"`
	DogBreed       string          `json:"dogBreed,omitempty"`
	DogAge         int             `json:"dogAge,omitempty"`
	DogGender      string          `json:"dogGender,omitempty"`
	DogSize        string          `json:"dogSize,omitempty"`
	IsVaccinated   bool            `json:"isVaccinated"`
	IsNeutered     bool            `json:"isNeutered"`
	MedicalHistory string          `json:"medicalHistory,omitempty"`
	SurrenderReason string         `json:"surrenderReason"`
	IsUrgent       bool            `json:"isUrgent"`
	PreferredDate  string          `json:"preferredDate,omitempty"`
	RequestStatus  SurrenderStatus `json:"requestStatus"`
	DogPhotoURLs   []string        `json:"dogPhotoUrls,omitempty"`
	AdminNotes     string          `json:"adminNotes,omitempty"`
	SubmittedAt    string          `json:"submittedAt,omitempty"`
	UserID         *int64          `json:"userId,omitempty"` // nil for guest submissions
	Username       string          `json:"username,omitempty"`
}

// SurrenderPayload is the `surrenderRequest` JSON part of the multipart body.
type SurrenderPayload struct {
	OwnerName       string `json:"ownerName"`
	OwnerPhone      string `json:"ownerPhone"`
	OwnerEmail      string `json:"ownerEmail,omitempty"`
	OwnerAddress    string `json:"ownerAddress,omitempty"`
	DogName         string `json:"dogName"`
	DogBreed        string `json:"dogBreed,omitempty"`
	DogAge          int    `json:"dogAge,omitempty"`
	DogGender       string `json:"dogGender,omitempty"`
	DogSize         string `json:"dogSize,omitempty"`
	IsVaccinated    bool   `json:"isVaccinated"`
	IsNeutered      bool   `json:"isNeutered"`
	MedicalHistory  string `json:"medicalHistory,omitempty"`
	SurrenderReason string `json:"surrenderReason"`
	IsUrgent        bool   `json:"isUrgent"`
	PreferredDate   string `json:"preferredDate,omitempty"`
}

// SurrenderStatusUpdate is the payload for the admin status endpoint.
type SurrenderStatusUpdate struct {
	RequestStatus SurrenderStatus `json:"requestStatus"`
	AdminNotes    string          `json:"adminNotes,omitempty"`
}
