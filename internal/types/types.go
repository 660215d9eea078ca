// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Circle struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	SlugName     string    `db:"slug_name" json:"slug_name"`
	About        string    `db:"about" json:"about"`
	IsPublic     bool      `db:"is_public" json:"is_public"`
	Verified     bool      `db:"verified" json:"verified"`
	IsLimited    bool      `db:"is_limited" json:"is_limited"`
	MembersLimit int       `db:"members_limit" json:"members_limit"`
	RidesOffered int       `db:"rides_offered" json:"rides_offered"`
	RidesTaken   int       `db:"rides_taken" json:"rides_taken"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Membership struct {
	ID                   string    `db:"id" json:"id"`
	CircleID             string    `db:"circle_id" json:"circle_id"`
	UserID               string    `db:"user_id" json:"user_id"`
	IsAdmin              bool      `db:"is_admin" json:"is_admin"`
	IsActive             bool      `db:"is_active" json:"is_active"`
	UsedInvitations      int       `db:"used_invitations" json:"used_invitations"`
	RemainingInvitations int       `db:"remaining_invitations" json:"remaining_invitations"`
	InvitedBy            *string   `db:"invited_by" json:"invited_by,omitempty"`
	RidesTaken           int       `db:"rides_taken" json:"rides_taken"`
	RidesOffered         int       `db:"rides_offered" json:"rides_offered"`
	CreatedAt            time.Time `db:"created_at" json:"joined_at"`
}

type Invitation struct {
	ID        string     `db:"id" json:"id"`
	Code      string     `db:"code" json:"code"`
	CircleID  string     `db:"circle_id" json:"circle_id"`
	IssuedBy  string     `db:"issued_by" json:"issued_by"`
	Used      bool       `db:"used" json:"used"`
	UsedBy    *string    `db:"used_by" json:"used_by,omitempty"`
	UsedAt    *time.Time `db:"used_at" json:"used_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// InvitationBundle is the result of reconciling a member's invitation pool:
// the codes they can hand out and the members they already sponsored.
type InvitationBundle struct {
	Codes            []string      `json:"invitations"`
	SponsoredMembers []*Membership `json:"sponsored_members"`
}
