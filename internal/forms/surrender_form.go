// internal/forms/surrender_form.go
package forms

import (
	"context"

	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/resources"
)

// SurrenderForm drives the surrender request create/edit flow. Same state
// machine as ReportForm over the richer payload.
type SurrenderForm struct {
	state   State
	editing *models.SurrenderRequest

	Payload models.SurrenderPayload
	Photos  *PhotoSet

	LastError string

	svc    *resources.SurrenderService
	logger logger.Logger
}

// NewSurrenderForm returns a closed form bound to the surrender service.
func NewSurrenderForm(svc *resources.SurrenderService, log logger.Logger) *SurrenderForm {
	return &SurrenderForm{state: StateClosed, svc: svc, logger: log}
}

// State returns the current controller state.
func (f *SurrenderForm) State() State { return f.state }

// Editing returns the record under edit, or nil in create mode.
func (f *SurrenderForm) Editing() *models.SurrenderRequest { return f.editing }

// OpenCreate opens an empty form.
func (f *SurrenderForm) OpenCreate() {
	f.state = StateOpen
	f.editing = nil
	f.Payload = models.SurrenderPayload{}
	f.Photos = NewPhotoSet(nil)
	f.LastError = ""
}

// OpenEdit opens the form prefilled from an existing request.
func (f *SurrenderForm) OpenEdit(request models.SurrenderRequest) {
	f.state = StateOpen
	f.editing = &request
	f.Payload = models.SurrenderPayload{
		OwnerName:       request.OwnerName,
		OwnerPhone:      request.OwnerPhone,
		OwnerEmail:      request.OwnerEmail,
		OwnerAddress:    request.OwnerAddress,
		DogName:         request.DogName,
		DogBreed:        request.DogBreed,
		DogAge:          request.DogAge,
		DogGender:       request.DogGender,
		DogSize:         request.DogSize,
		IsVaccinated:    request.IsVaccinated,
		IsNeutered:      request.IsNeutered,
		MedicalHistory:  request.MedicalHistory,
		SurrenderReason: request.SurrenderReason,
		IsUrgent:        request.IsUrgent,
		PreferredDate:   request.PreferredDate,
	}
	f.Photos = NewPhotoSet(request.DogPhotoURLs)
	f.LastError = ""
}

// SetOwnerPhone applies the live phone rule to the owner phone field.
func (f *SurrenderForm) SetOwnerPhone(raw string) string {
	phone, msg := NormalizePhone(raw)
	f.Payload.OwnerPhone = phone
	return msg
}

// SetDogAge parses and validates the age field. Invalid input leaves the
// stored age at zero and returns the message.
func (f *SurrenderForm) SetDogAge(raw string) string {
	age, msg := ParseAge(raw)
	f.Payload.DogAge = age
	return msg
}

// Validate runs the required-field and schema checks.
func (f *SurrenderForm) Validate() map[string]string {
	if missing := requireFields(map[string]string{
		"ownerName":       f.Payload.OwnerName,
		"ownerPhone":      f.Payload.OwnerPhone,
		"dogName":         f.Payload.DogName,
		"surrenderReason": f.Payload.SurrenderReason,
	}); missing != nil {
		return missing
	}
	return validateSchema(surrenderSchema, f.Payload)
}

// Submit validates and sends the form; see ReportForm.Submit for the state
// transitions.
func (f *SurrenderForm) Submit(ctx context.Context) (*models.SurrenderRequest, error) {
	if f.state != StateOpen {
		return nil, apierrors.NewFormError(map[string]string{"_state": "form is not open"})
	}
	if fieldErrs := f.Validate(); fieldErrs != nil {
		return nil, apierrors.NewFormError(fieldErrs)
	}

	f.state = StateSubmitting
	var (
		record *models.SurrenderRequest
		err    error
	)
	if f.editing != nil {
		record, err = f.svc.Update(ctx, f.editing.SurrenderID, f.Payload, f.Photos.Uploads())
	} else {
		record, err = f.svc.Create(ctx, f.Payload, f.Photos.Uploads())
	}

	if err != nil {
		if f.editing != nil && apierrors.IsNotFound(err) {
			f.logger.Warn("edited surrender request no longer exists", map[string]interface{}{"id": f.editing.SurrenderID})
			f.close()
			return nil, err
		}
		f.state = StateOpen
		f.LastError = userMessage(err)
		return nil, err
	}

	f.Photos.AdoptServerURLs(record.DogPhotoURLs)
	f.close()
	return record, nil
}

// Cancel discards uncommitted input and releases staged previews.
func (f *SurrenderForm) Cancel() {
	if f.Photos != nil {
		f.Photos.Clear()
	}
	f.close()
}

func (f *SurrenderForm) close() {
	f.state = StateClosed
	f.editing = nil
	f.LastError = ""
}
