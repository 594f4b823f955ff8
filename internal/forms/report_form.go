// internal/forms/report_form.go
package forms

import (
	"context"

	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/resources"
)

// ReportForm drives the lost/injured report create/edit flow.
type ReportForm struct {
	state   State
	editing *models.Report

	Payload models.ReportPayload
	Photos  *PhotoSet

	// LastError holds the retryable failure message while the form stays
	// open after a failed submit.
	LastError string

	svc    *resources.ReportService
	logger logger.Logger
}

// NewReportForm returns a closed form bound to the report service.
func NewReportForm(svc *resources.ReportService, log logger.Logger) *ReportForm {
	return &ReportForm{state: StateClosed, svc: svc, logger: log}
}

// State returns the current controller state.
func (f *ReportForm) State() State { return f.state }

// Editing returns the record under edit, or nil in create mode.
func (f *ReportForm) Editing() *models.Report { return f.editing }

// OpenCreate opens an empty form.
func (f *ReportForm) OpenCreate() {
	f.state = StateOpen
	f.editing = nil
	f.Payload = models.ReportPayload{}
	f.Photos = NewPhotoSet(nil)
	f.LastError = ""
}

// OpenEdit opens the form prefilled from an existing record.
func (f *ReportForm) OpenEdit(report models.Report) {
	f.state = StateOpen
	f.editing = &report
	f.Payload = models.ReportPayload{
		Name:        report.Name,
		Phone:       report.Phone,
		Description: report.Description,
		Location:    report.Location,
	}
	f.Photos = NewPhotoSet(report.PhotoURLs)
	f.LastError = ""
}

// SetPhone applies the live phone rule and returns the validation message,
// if any. State always holds the normalized value.
func (f *ReportForm) SetPhone(raw string) string {
	phone, msg := NormalizePhone(raw)
	f.Payload.Phone = phone
	return msg
}

// Validate runs the required-field and schema checks.
func (f *ReportForm) Validate() map[string]string {
	if missing := requireFields(map[string]string{
		"name":        f.Payload.Name,
		"phone":       f.Payload.Phone,
		"description": f.Payload.Description,
	}); missing != nil {
		return missing
	}
	return validateSchema(reportSchema, f.Payload)
}

// Submit validates and sends the form. On success the staged previews are
// superseded by the server URLs and the form closes. A 404 during edit means
// the record no longer exists: the form closes and the error reads as
// not-found so the caller reloads its list. Any other failure keeps the form
// open with the entered data intact.
func (f *ReportForm) Submit(ctx context.Context) (*models.Report, error) {
	if f.state != StateOpen {
		return nil, apierrors.NewFormError(map[string]string{"_state": "form is not open"})
	}
	if fieldErrs := f.Validate(); fieldErrs != nil {
		return nil, apierrors.NewFormError(fieldErrs)
	}

	f.state = StateSubmitting
	var (
		record *models.Report
		err    error
	)
	if f.editing != nil {
		record, err = f.svc.Update(ctx, f.editing.ID, f.Payload, f.Photos.Uploads())
	} else {
		record, err = f.svc.Create(ctx, f.Payload, f.Photos.Uploads())
	}

	if err != nil {
		if f.editing != nil && apierrors.IsNotFound(err) {
			// Stale edit: the record was deleted underneath us.
			f.logger.Warn("edited report no longer exists", map[string]interface{}{"id": f.editing.ID})
			f.close()
			return nil, err
		}
		f.state = StateOpen
		f.LastError = userMessage(err)
		return nil, err
	}

	f.Photos.AdoptServerURLs(record.PhotoURLs)
	f.close()
	return record, nil
}

// Cancel discards uncommitted input and releases staged previews.
func (f *ReportForm) Cancel() {
	if f.Photos != nil {
		f.Photos.Clear()
	}
	f.close()
}

func (f *ReportForm) close() {
	f.state = StateClosed
	f.editing = nil
	f.LastError = ""
}

// userMessage converts an error into the inline message shown next to the
// retry control.
func userMessage(err error) string {
	if apiErr, ok := apierrors.AsAPIError(err); ok {
		if apierrors.IsTransport(err) {
			return "Could not reach the server. Please try again."
		}
		return apiErr.FlattenFieldErrors()
	}
	return err.Error()
}
