package models

// DogStatus values returned by the catalog endpoints.
type DogStatus string

const (
	DogAvailable DogStatus = "AVAILABLE"
	DogSold      DogStatus = "SOLD"
	DogAdopted   DogStatus = "ADOPTED"
)

// Dog is a catalog entry. IsStray selects the adoption flow; everything else
// goes through the purchase flow.
type Dog struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age,omitempty"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Status      DogStatus `json:"status"`
	IsStray     bool      `json:"isStray"`
	ImageURL    string    `json:"image,omitempty"`
}

// Available reports whether the primary action (adopt/buy) can be started.
func (d *Dog) Available() bool {
	return d.Status == DogAvailable
}

// FlowType returns the application type this dog's flow produces.
func (d *Dog) FlowType() ApplicationType {
	if d.IsStray {
		return ApplicationAdoption
	}
	return ApplicationPurchase
}
