// Package client contains the remote side of the gophfiles client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     file-storage service: Login, Ping, List, Search, Upload, Delete and
//     GenerateShareLink.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that builds
//     requests, attaches the bearer credential and a request id, streams
//     multipart uploads with progress reporting and classifies responses.
//
// # Credentials
//
// Every file operation receives a models.Credential explicitly. An absent
// credential fails with ErrNoCredential before any request is built.
//
// # Error Handling
//
// Callers never see raw transport errors. Responses are classified into
// sentinel errors matched with errors.Is: ErrUnauthorized (401),
// ErrPayloadTooLarge (413), ErrNotFound (404), ErrServerRejected (a JSON body
// with an "error" field, see ServerRejectedError) and ErrUnreachable
// (everything else, including malformed bodies). ErrSizeLimitExceeded is the
// client-side upload ceiling check and never reaches the network.
//
// Nothing in this package retries.
package client
