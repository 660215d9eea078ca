// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package circle

import (
	"errors"
)

// Admission and reconciliation outcomes surfaced to the transport layer.
// Every validation failure carries a specific kind so callers can map it to
// a user-facing message.
var (
	// ErrNotFound is returned when the circle or membership reference does
	// not resolve.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyMember is returned on a duplicate join attempt. Memberships
	// are never physically deleted, a deactivated member cannot rejoin.
	ErrAlreadyMember = errors.New("user is already a member of this circle")

	// ErrInvalidInvitation covers absent codes, codes scoped to another
	// circle and already-used codes. The cases are deliberately
	// indistinguishable so codes cannot be enumerated across circles.
	ErrInvalidInvitation = errors.New("invalid invitation code")

	// ErrCircleFull is returned when admitting the user would exceed the
	// circle's members limit.
	ErrCircleFull = errors.New("circle has reached its members limit")

	// ErrQuotaExhausted signals that an issuer's remaining quota was already
	// zero at debit time. Unreachable while the ledger is consistent, so
	// hitting it means corruption upstream.
	ErrQuotaExhausted = errors.New("issuer has no remaining invitations")

	// ErrConflict is returned after a transactional race was lost more times
	// than the service retries. Callers may re-submit the whole operation.
	ErrConflict = errors.New("operation conflicted with a concurrent request")

	// ErrForbidden is returned when the acting user fails the authorization
	// gate for the operation.
	ErrForbidden = errors.New("operation not permitted")
)
