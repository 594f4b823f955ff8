// internal/forms/photos.go
package forms

import (
	"fmt"
	"os"
	"path/filepath"

	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/models"

	"github.com/google/uuid"
)

// MaxPhotos is the hard cap on attachments per record, enforced before any
// upload happens.
const MaxPhotos = 5

// StagedPhoto is one queued attachment. Until the submission succeeds the
// bytes live client-side; afterwards the server URL supersedes them.
type StagedPhoto struct {
	ID        string
	Name      string
	LocalPath string
	Data      []byte
}

// PhotoSet stages up to MaxPhotos attachments for one form.
type PhotoSet struct {
	staged     []StagedPhoto
	serverURLs []string
}

// NewPhotoSet returns an empty set, pre-populated with any URLs already
// stored server-side (edit flows).
func NewPhotoSet(existingURLs []string) *PhotoSet {
	return &PhotoSet{serverURLs: append([]string(nil), existingURLs...)}
}

// Count returns the number of staged local photos.
func (p *PhotoSet) Count() int { return len(p.staged) }

// ServerURLs returns the authoritative photo URLs known so far.
func (p *PhotoSet) ServerURLs() []string { return p.serverURLs }

// Staged returns the queued photos.
func (p *PhotoSet) Staged() []StagedPhoto { return p.staged }

// total counts staged photos plus the server URLs already attached to the
// record, so an edit session cannot push a record past the cap.
func (p *PhotoSet) total() int { return len(p.staged) + len(p.serverURLs) }

// AddFile reads a photo from disk and stages it. The cap is checked before
// the file is touched so an over-limit add is rejected without side effects.
func (p *PhotoSet) AddFile(path string) error {
	if p.total() >= MaxPhotos {
		return apierrors.NewPhotoLimitError(MaxPhotos)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read photo %s: %w", path, err)
	}
	p.staged = append(p.staged, StagedPhoto{
		ID:        uuid.NewString(),
		Name:      filepath.Base(path),
		LocalPath: path,
		Data:      data,
	})
	return nil
}

// AddBytes stages in-memory photo data under the given name.
func (p *PhotoSet) AddBytes(name string, data []byte) error {
	if p.total() >= MaxPhotos {
		return apierrors.NewPhotoLimitError(MaxPhotos)
	}
	p.staged = append(p.staged, StagedPhoto{ID: uuid.NewString(), Name: name, Data: data})
	return nil
}

// Remove drops the staged photo with the given id. Unknown ids are a no-op.
func (p *PhotoSet) Remove(id string) {
	for i, s := range p.staged {
		if s.ID == id {
			p.staged = append(p.staged[:i], p.staged[i+1:]...)
			return
		}
	}
}

// Uploads returns the staged photos in wire form.
func (p *PhotoSet) Uploads() []models.Photo {
	out := make([]models.Photo, 0, len(p.staged))
	for _, s := range p.staged {
		out = append(out, models.Photo{Name: s.Name, Data: s.Data})
	}
	return out
}

// AdoptServerURLs replaces every local handle with the server-returned URLs
// after a successful submission. The staged bytes are released.
func (p *PhotoSet) AdoptServerURLs(urls []string) {
	p.serverURLs = append([]string(nil), urls...)
	p.staged = nil
}

// Clear discards all staged input (cancel path).
func (p *PhotoSet) Clear() {
	p.staged = nil
	p.serverURLs = nil
}
