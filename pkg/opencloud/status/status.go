// Copyright © 2018 One Concern

// Package status declares error constants returned by the Open Cloud client.
//
// NOTE: such constants are located in a separate package so that callers
// may check remote errors without importing the transport.
package status

import "github.com/oneconcern/rit/pkg/errors"

var (
	// Sentinel errors returned by the Open Cloud client. All of them are identified as ErrCloudAPI.

	// ErrCloudAPI indicates any failure reported by the Open Cloud API
	ErrCloudAPI = errors.New("open cloud API error")

	// ErrTransport indicates that the request could not be carried out (network failure, retries exhausted)
	ErrTransport = ErrCloudAPI.Derive("open cloud request failed")

	// ErrBadRequest indicates that the API rejected the request parameters
	ErrBadRequest = ErrCloudAPI.Derive("bad request")

	// ErrUnauthorized indicates that the API key is invalid
	ErrUnauthorized = ErrCloudAPI.Derive("unauthorized")

	// ErrForbidden indicates that the API key lacks the permission for this operation
	ErrForbidden = ErrCloudAPI.Derive("forbidden")

	// ErrNotFound indicates that the target resource does not exist
	ErrNotFound = ErrCloudAPI.Derive("not found")

	// ErrConflict indicates that the request conflicts with the current state of the resource
	ErrConflict = ErrCloudAPI.Derive("conflict")

	// ErrPreconditionFailed indicates that a request precondition was not met
	ErrPreconditionFailed = ErrCloudAPI.Derive("precondition failed")

	// ErrEntryExists indicates that an exclusive create targeted an existing entry
	ErrEntryExists = ErrPreconditionFailed.Derive("entry already exists")

	// ErrVersionMismatch indicates that the current version of the entry does not match the expected version
	ErrVersionMismatch = ErrPreconditionFailed.Derive("entry version mismatch")

	// ErrTooManyRequests indicates that a quota or rate limit was exceeded
	ErrTooManyRequests = ErrCloudAPI.Derive("too many requests")

	// ErrServer indicates an internal failure of the API
	ErrServer = ErrCloudAPI.Derive("server error")

	// ErrUnexpectedResponse indicates that the API answered with a payload which could not be decoded
	ErrUnexpectedResponse = ErrCloudAPI.Derive("unexpected response")
)
