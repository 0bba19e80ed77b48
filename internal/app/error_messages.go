// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-aura daemon handlers and by the client that talks to them.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The remote client maps them back to service errors, so
// the wording must stay identical on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired, revoked or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgWrongPin is returned when a PIN does not match the stored
	// fingerprint.
	MsgWrongPin = "wrong pin"

	// MsgAuthFailure is returned when the sealed state does not
	// authenticate under the derived key.
	MsgAuthFailure = "authentication failed"

	// MsgLocked is returned by document endpoints while the state is sealed.
	MsgLocked = "state is locked"

	// MsgDecodeFailed is returned when a persisted record is corrupt.
	MsgDecodeFailed = "stored state could not be decoded"

	// MsgStorageUnavailable is returned when the record storage cannot be
	// read or written. In-memory changes are kept.
	MsgStorageUnavailable = "storage unavailable"

	// MsgNotSetUp is returned when an operation needs a completed setup.
	MsgNotSetUp = "companion is not set up"

	// MsgAlreadySetUp is returned by setup once a document exists.
	MsgAlreadySetUp = "companion is already set up"

	// MsgNotLocked is returned by unlock when the state is already open.
	MsgNotLocked = "companion is not locked"

	// MsgPinNotConfigured is returned by operations that need a PIN.
	MsgPinNotConfigured = "no pin is configured"

	// MsgPinAlreadyConfigured is returned when setting a PIN twice.
	MsgPinAlreadyConfigured = "a pin is already configured"

	// MsgNothingToExport is returned when an export would be empty.
	MsgNothingToExport = "nothing to export"

	// MsgUnknownExportKind is returned for an unsupported export format.
	MsgUnknownExportKind = "unknown export kind"

	// MsgTooManyRequests is returned by rate limited PIN endpoints.
	MsgTooManyRequests = "too many attempts, try again later"

	// MsgSessionRequiresPin is returned when an open session is requested
	// for a PIN protected installation.
	MsgSessionRequiresPin = "session requires the pin"
)
