package filter

import (
	"testing"

	"home4paws-cli/internal/models"

	"github.com/stretchr/testify/assert"
)

var catalog = []models.Dog{
	{ID: 1, Name: "Rex", Breed: "Labrador", Description: "Playful and friendly", Price: 12000, Status: models.DogAvailable},
	{ID: 2, Name: "Moti", Breed: "Indie", Description: "Calm stray, loves kids", Price: 0, Status: models.DogAvailable, IsStray: true},
	{ID: 3, Name: "Bruno", Breed: "labrador", Description: "Energetic", Price: 15000, Status: models.DogSold},
	{ID: 4, Name: "Laika", Breed: "Husky", Description: "Needs space to run", Price: 25000, Status: models.DogAdopted},
}

func TestDogs_SearchIsCaseInsensitive(t *testing.T) {
	got := Dogs(catalog, DogFilter{Search: "LABR"})
	assert.Len(t, got, 2)

	got = Dogs(catalog, DogFilter{Search: "loves KIDS"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Moti", got[0].Name)
}

func TestDogs_FiltersIntersect(t *testing.T) {
	got := Dogs(catalog, DogFilter{Search: "e", Breed: "Labrador", Status: models.DogAvailable})
	assert.Len(t, got, 1)
	assert.Equal(t, "Rex", got[0].Name)

	got = Dogs(catalog, DogFilter{Breed: "Labrador", MaxPrice: 13000})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestDogs_NoMatchReturnsEmptyNonNil(t *testing.T) {
	got := Dogs(catalog, DogFilter{Search: "no such dog"})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = Dogs(nil, DogFilter{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDogFilter_Active(t *testing.T) {
	assert.False(t, DogFilter{}.Active())
	assert.True(t, DogFilter{Search: "rex"}.Active())
	assert.True(t, DogFilter{MaxPrice: 100}.Active())
	assert.True(t, DogFilter{Status: models.DogSold}.Active())
}

func TestReports_FilterByStatusAndText(t *testing.T) {
	reports := []models.Report{
		{ID: 1, Name: "Asha", Description: "Injured near park", Location: "MG Road", Status: models.ReportPending},
		{ID: 2, Name: "Vikram", Description: "Lost dog", Location: "Indiranagar", Status: models.ReportResolved},
		{ID: 3, Name: "Asha", Description: "Stray pack", Location: "MG Road", Status: models.ReportResolved},
	}

	got := Reports(reports, ReportFilter{Search: "mg road", Status: models.ReportResolved})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	got = Reports(reports, ReportFilter{})
	assert.Len(t, got, 3)
}

func TestSurrenders_UrgentOnly(t *testing.T) {
	requests := []models.SurrenderRequest{
		{SurrenderID: 1, OwnerName: "Asha", DogName: "Rex", SurrenderReason: "Moving abroad", IsUrgent: true, RequestStatus: models.SurrenderPending},
		{SurrenderID: 2, OwnerName: "Vikram", DogName: "Moti", SurrenderReason: "Allergies", RequestStatus: models.SurrenderPending},
	}

	got := Surrenders(requests, SurrenderFilter{UrgentOnly: true})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].SurrenderID)

	got = Surrenders(requests, SurrenderFilter{Search: "moti", UrgentOnly: true})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestApplications_FilterByType(t *testing.T) {
	apps := []models.Application{
		{ID: 1, ApplicantName: "Asha", DogName: "Rex", Type: models.ApplicationPurchase, Status: models.ApplicationPending},
		{ID: 2, ApplicantName: "Asha", DogName: "Moti", Type: models.ApplicationAdoption, Status: models.ApplicationApproved},
	}

	got := Applications(apps, ApplicationFilter{Type: models.ApplicationAdoption})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got = Applications(apps, ApplicationFilter{Search: "asha", Status: models.ApplicationPending})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestUsers_Search(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "asha92", Email: "asha@example.com", FirstName: "Asha"},
		{ID: 2, Username: "vikram", Email: "vikram@example.com"},
	}

	got := Users(users, "ASHA")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = Users(users, "")
	assert.Len(t, got, 2)
}
