package services

import (
	"errors"

	"github.com/dmitrijs2005/gophfiles/internal/client/client"
)

const (
	MsgLoginFirst      = "Please log in first"
	MsgSessionExpired  = "Session expired, please log in again"
	MsgInvalidFileID   = "Invalid file ID"
	MsgFetchFailed     = "Failed to fetch files"
	MsgSearchFailed    = "Failed to search files"
	MsgDeleted         = "File deleted successfully"
	MsgDeleteFailed    = "Failed to delete file"
	MsgFileNotFound    = "File not found"
	MsgShareGenerated  = "Share URL generated"
	MsgShareFailed     = "Failed to generate share URL"
	MsgSizeLimit       = "File size exceeds 10MB limit"
	MsgServerSizeLimit = "File size exceeds server limit"
	MsgUploadFailed    = "Failed to upload file"
	MsgFileChanged     = "File changed during upload"
	MsgUploaded        = "File uploaded successfully"
	MsgLoggedIn        = "Login successful!"
	MsgBadCredentials  = "Invalid credentials"
	MsgLoginFailed     = "Failed to login"
	MsgLoggedOut       = "Logged out"
)

// ErrInvalidID is returned for an empty file id; no request is made.
var ErrInvalidID = errors.New("invalid file id")

// messageFor turns a classified client error into the text shown to the
// user. fallback covers transport failures and anything unclassified.
func messageFor(err error, fallback string) string {
	switch {
	case errors.Is(err, client.ErrNoCredential):
		return MsgLoginFirst
	case errors.Is(err, client.ErrUnauthorized):
		return MsgSessionExpired
	}
	if msg, ok := client.RejectionMessage(err); ok && msg != "" {
		return msg
	}
	return fallback
}

func uploadMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrSizeLimitExceeded):
		return MsgSizeLimit
	case errors.Is(err, client.ErrPayloadTooLarge):
		return MsgServerSizeLimit
	case errors.Is(err, client.ErrBodySizeMismatch):
		return MsgFileChanged
	}
	return messageFor(err, MsgUploadFailed)
}
