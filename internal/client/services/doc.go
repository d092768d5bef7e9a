// Package services contains the application services of the gophfiles
// client: the file dashboard (list, search, delete, share, reconcile),
// the upload controller and authentication.
//
// Services report user-facing outcomes through a notify.Sink and return
// wrapped errors that keep the client.Err* sentinels matchable with
// errors.Is.
package services
