package render

import (
	"bytes"
	"testing"

	"home4paws-cli/internal/dashboard"
	"home4paws-cli/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEmptyStates(t *testing.T) {
	var buf bytes.Buffer
	Dogs(&buf, nil, false)
	assert.Equal(t, "No dogs yet.\n", buf.String())

	buf.Reset()
	Dogs(&buf, []models.Dog{}, true)
	assert.Equal(t, "No dogs match the current filters.\n", buf.String())

	buf.Reset()
	Reports(&buf, nil, true, false)
	assert.Equal(t, "No reports match the current filters.\n", buf.String())
}

func TestReports_StaleBanner(t *testing.T) {
	var buf bytes.Buffer
	Reports(&buf, []models.Report{{ID: 1, Name: "Asha", Status: models.ReportPending}}, false, true)
	out := buf.String()
	assert.Contains(t, out, "(showing cached copy; could not reach the server)")
	assert.Contains(t, out, "Asha")
}

func TestDogs_PriceFraming(t *testing.T) {
	var buf bytes.Buffer
	Dogs(&buf, []models.Dog{
		{ID: 1, Name: "Rex", Breed: "Labrador", Price: 12000, Status: models.DogAvailable},
		{ID: 2, Name: "Moti", Breed: "Indie", IsStray: true, Status: models.DogAvailable},
	}, false)
	out := buf.String()
	assert.Contains(t, out, "Rs. 12000")
	assert.Contains(t, out, "purchase")
	assert.Contains(t, out, "free")
	assert.Contains(t, out, "adoption")
}

func TestDogDetail_Framing(t *testing.T) {
	var buf bytes.Buffer
	DogDetail(&buf, &models.Dog{ID: 1, Name: "Rex", Breed: "Labrador", Price: 12000, Status: models.DogAvailable})
	assert.Contains(t, buf.String(), "Purchase price: Rs. 12000")
	assert.Contains(t, buf.String(), "Purchase Now")

	buf.Reset()
	DogDetail(&buf, &models.Dog{ID: 2, Name: "Moti", IsStray: true, Status: models.DogAvailable})
	assert.Contains(t, buf.String(), "Adoption fee: free")
	assert.Contains(t, buf.String(), "Start Adoption Process")
}

func TestActionLabel_UnavailableShowsStatus(t *testing.T) {
	assert.Equal(t, "SOLD", ActionLabel(&models.Dog{Status: models.DogSold}))
	assert.Equal(t, "ADOPTED", ActionLabel(&models.Dog{Status: models.DogAdopted, IsStray: true}))
	assert.Equal(t, "Purchase Now", ActionLabel(&models.Dog{Status: models.DogAvailable}))
}

func TestDogDetail_UnavailableNotice(t *testing.T) {
	var buf bytes.Buffer
	DogDetail(&buf, &models.Dog{ID: 3, Name: "Bruno", Status: models.DogSold})
	assert.Contains(t, buf.String(), "currently sold")
}

func TestDashboard_SectionsAndFailures(t *testing.T) {
	var buf bytes.Buffer
	Dashboard(&buf, &dashboard.Stats{
		Users: dashboard.ResourceStats{Total: 3, ByStatus: map[string]int{"ENABLED": 2, "DISABLED": 1}},
		Dogs:  dashboard.ResourceStats{Err: "dogs service down", ByStatus: map[string]int{}},
	})
	out := buf.String()
	assert.Contains(t, out, "Users")
	assert.Contains(t, out, "(disabled=1, enabled=2)")
	assert.Contains(t, out, "unavailable (dogs service down)")
}

func TestMessages_Truncation(t *testing.T) {
	long := "This message is definitely longer than forty-eight characters in total."
	var buf bytes.Buffer
	Messages(&buf, []models.ContactMessage{{ID: 1, Name: "Asha", Email: "a@b.c", Status: models.MessagePending, Message: long}}, false)
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), long)
}
