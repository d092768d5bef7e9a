// Package models defines client-side data models used by the gophfiles
// client: file records as the remote store reports them, the bearer
// credential and the authenticated user.
package models
