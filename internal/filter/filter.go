// internal/filter/filter.go

// Package filter implements client-side list filtering: a case-insensitive
// free-text match across a few fields, intersected with any active
// categorical filters. Results are always non-nil so views can distinguish
// "no matches" from a failed fetch.
package filter

import (
	"strings"

	"home4paws-cli/internal/models"
)

// matchText reports whether query is a case-insensitive substring of any of
// the fields. An empty query matches everything.
func matchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// DogFilter is the dog catalog filter set. Zero values are inactive.
type DogFilter struct {
	Search   string
	Breed    string
	Status   models.DogStatus
	MaxPrice float64
}

// Active reports whether any filter is set.
func (f DogFilter) Active() bool {
	return f.Search != "" || f.Breed != "" || f.Status != "" || f.MaxPrice > 0
}

// Dogs returns the dogs matching every active filter.
func Dogs(dogs []models.Dog, f DogFilter) []models.Dog {
	out := make([]models.Dog, 0, len(dogs))
	for _, d := range dogs {
		if !matchText(f.Search, d.Name, d.Breed, d.Description) {
			continue
		}
		if f.Breed != "" && !strings.EqualFold(d.Breed, f.Breed) {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if f.MaxPrice > 0 && d.Price > f.MaxPrice {
			continue
		}
		out = append(out, d)
	}
	return out
}

// ReportFilter is the report list filter set.
type ReportFilter struct {
	Search string
	Status models.ReportStatus
}

func (f ReportFilter) Active() bool { return f.Search != "" || f.Status != "" }

// Reports returns the reports matching every active filter.
func Reports(reports []models.Report, f ReportFilter) []models.Report {
	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if !matchText(f.Search, r.Name, r.Description, r.Location, r.Phone) {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SurrenderFilter is the surrender request filter set.
type SurrenderFilter struct {
	Search     string
	Status     models.SurrenderStatus
	UrgentOnly bool
}

func (f SurrenderFilter) Active() bool {
	return f.Search != "" || f.Status != "" || f.UrgentOnly
}

// Surrenders returns the requests matching every active filter.
func Surrenders(requests []models.SurrenderRequest, f SurrenderFilter) []models.SurrenderRequest {
	out := make([]models.SurrenderRequest, 0, len(requests))
	for _, r := range requests {
		if !matchText(f.Search, r.OwnerName, r.DogName, r.DogBreed, r.SurrenderReason) {
			continue
		}
		if f.Status != "" && r.RequestStatus != f.Status {
			continue
		}
		if f.UrgentOnly && !r.IsUrgent {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ApplicationFilter is the application list filter set.
type ApplicationFilter struct {
	Search string
	Status models.ApplicationStatus
	Type   models.ApplicationType
}

func (f ApplicationFilter) Active() bool {
	return f.Search != "" || f.Status != "" || f.Type != ""
}

// Applications returns the applications matching every active filter.
func Applications(apps []models.Application, f ApplicationFilter) []models.Application {
	out := make([]models.Application, 0, len(apps))
	for _, a := range apps {
		if !matchText(f.Search, a.ApplicantName, a.ApplicantEmail, a.DogName) {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		out = append(out, a)
	}
	return out
}

// MessageFilter is the contact message filter set.
type MessageFilter struct {
	Search string
	Status models.MessageStatus
}

func (f MessageFilter) Active() bool { return f.Search != "" || f.Status != "" }

// Messages returns the messages matching every active filter.
func Messages(msgs []models.ContactMessage, f MessageFilter) []models.ContactMessage {
	out := make([]models.ContactMessage, 0, len(msgs))
	for _, m := range msgs {
		if !matchText(f.Search, m.Name, m.Email, m.Message) {
			continue
		}
		if f.Status != "" && m.Status != f.Status {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Users returns the users whose username, email or name matches search.
func Users(users []models.User, search string) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if !matchText(search, u.Username, u.Email, u.FirstName, u.LastName) {
			continue
		}
		out = append(out, u)
	}
	return out
}
