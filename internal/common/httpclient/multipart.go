// internal/common/httpclient/multipart.go
package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// Body is an assembled multipart/form-data request body: exactly one JSON
// part (the structured record) plus zero or more file parts.
type Body struct {
	buf         bytes.Buffer
	contentType string
}

// Bytes returns the encoded body.
func (b *Body) Bytes() []byte { return b.buf.Bytes() }

// ContentType returns the multipart content type including the boundary.
func (b *Body) ContentType() string { return b.contentType }

// Builder assembles a multipart body for the report/surrender submission
// protocol.
type Builder struct {
	w   *multipart.Writer
	b   *Body
	err error
}

// NewBuilder starts a new multipart body.
func NewBuilder() *Builder {
	body := &Body{}
	return &Builder{
		w: multipart.NewWriter(&body.buf),
		b: body,
	}
}

// AddJSON writes value as a JSON part under name, with an explicit
// application/json part content type so the backend binds it to the record
// parameter rather than treating it as a plain form field.
func (bld *Builder) AddJSON(name string, value interface{}) *Builder {
	if bld.err != nil {
		return bld
	}
	payload, err := json.Marshal(value)
	if err != nil {
		bld.err = fmt.Errorf("encode %s part: %w", name, err)
		return bld
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, name))
	header.Set("Content-Type", "application/json")
	part, err := bld.w.CreatePart(header)
	if err != nil {
		bld.err = fmt.Errorf("create %s part: %w", name, err)
		return bld
	}
	if _, err := part.Write(payload); err != nil {
		bld.err = fmt.Errorf("write %s part: %w", name, err)
	}
	return bld
}

// AddFile writes one file part under name.
func (bld *Builder) AddFile(name, filename string, data []byte) *Builder {
	if bld.err != nil {
		return bld
	}
	part, err := bld.w.CreateFormFile(name, filename)
	if err != nil {
		bld.err = fmt.Errorf("create file part %s: %w", filename, err)
		return bld
	}
	if _, err := part.Write(data); err != nil {
		bld.err = fmt.Errorf("write file part %s: %w", filename, err)
	}
	return bld
}

// Build finalizes the body. The builder must not be reused afterwards.
func (bld *Builder) Build() (*Body, error) {
	if bld.err != nil {
		return nil, bld.err
	}
	if err := bld.w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}
	bld.b.contentType = bld.w.FormDataContentType()
	return bld.b, nil
}
