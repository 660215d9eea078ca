// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package circle

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet excludes ambiguous characters (0/O, 1/I/L) so codes survive
// being read aloud or written down.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// codeLength gives 31^16 possible codes, comfortably above the minimum
// length enforced at redemption time.
const codeLength = 16

// NewInvitationCode mints a random single-use invitation code.
func NewInvitationCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return string(buf), nil
}
