// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	ADMIN_RELATION  = "admin"
	MEMBER_RELATION = "member"
)

func UserTuple(userID string) string {
	return "user:" + userID
}

func CircleTuple(circleID string) string {
	return "circle:" + circleID
}
