// internal/models/photo.go
package models

// Photo is a client-local file attachment queued for upload. After a
// successful submission the server-returned URLs supersede these handles.
type Photo struct {
	Name string
	Data []byte
}
