package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// FileRecord is one stored file as known to the client. ID, StoredName and
// the timestamps are assigned by the server and never synthesized locally.
type FileRecord struct {
	ID          string
	OwnerUserID string
	// StoredName is the server-assigned storage key.
	StoredName string
	// DisplayName is the original, user-facing file name.
	DisplayName string
	SizeBytes   int64
	// MimeType may be empty when the server did not know it.
	MimeType  string
	CreatedAt time.Time
	UpdatedAt time.Time
	// ShareURL is set once a share link was generated or returned by the server.
	ShareURL string
}

// fileWire mirrors the JSON shape the file API produces. Upload and share
// responses spell the creation time "CreatedAt", list responses "created_at".
type fileWire struct {
	ID           opaqueID   `json:"ID"`
	CreatedAt    *time.Time `json:"CreatedAt,omitempty"`
	UpdatedAt    *time.Time `json:"UpdatedAt,omitempty"`
	UserID       opaqueID   `json:"user_id"`
	Filename     string     `json:"filename"`
	OrigName     string     `json:"original_name"`
	Size         int64      `json:"size"`
	MimeType     string     `json:"mime_type"`
	ShareURL     string     `json:"share_url,omitempty"`
	CreatedSnake *time.Time `json:"created_at,omitempty"`
}

func (r *FileRecord) UnmarshalJSON(b []byte) error {
	var w fileWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrMalformedRecord, w.Size)
	}

	*r = FileRecord{
		ID:          string(w.ID),
		OwnerUserID: string(w.UserID),
		StoredName:  w.Filename,
		DisplayName: w.OrigName,
		SizeBytes:   w.Size,
		MimeType:    w.MimeType,
		ShareURL:    w.ShareURL,
	}
	switch {
	case w.CreatedAt != nil:
		r.CreatedAt = *w.CreatedAt
	case w.CreatedSnake != nil:
		r.CreatedAt = *w.CreatedSnake
	}
	if w.UpdatedAt != nil {
		r.UpdatedAt = *w.UpdatedAt
	}
	return nil
}

func (r FileRecord) MarshalJSON() ([]byte, error) {
	w := fileWire{
		ID:       opaqueID(r.ID),
		UserID:   opaqueID(r.OwnerUserID),
		Filename: r.StoredName,
		OrigName: r.DisplayName,
		Size:     r.SizeBytes,
		MimeType: r.MimeType,
		ShareURL: r.ShareURL,
	}
	if !r.CreatedAt.IsZero() {
		w.CreatedAt = &r.CreatedAt
	}
	if !r.UpdatedAt.IsZero() {
		w.UpdatedAt = &r.UpdatedAt
	}
	return json.Marshal(w)
}

// Merge returns r with every non-zero field of update applied on top of it.
// The identity of r is kept.
func (r FileRecord) Merge(update FileRecord) FileRecord {
	out := r
	if update.OwnerUserID != "" {
		out.OwnerUserID = update.OwnerUserID
	}
	if update.StoredName != "" {
		out.StoredName = update.StoredName
	}
	if update.DisplayName != "" {
		out.DisplayName = update.DisplayName
	}
	if update.SizeBytes > 0 {
		out.SizeBytes = update.SizeBytes
	}
	if update.MimeType != "" {
		out.MimeType = update.MimeType
	}
	if !update.CreatedAt.IsZero() {
		out.CreatedAt = update.CreatedAt
	}
	if !update.UpdatedAt.IsZero() {
		out.UpdatedAt = update.UpdatedAt
	}
	if update.ShareURL != "" {
		out.ShareURL = update.ShareURL
	}
	return out
}
