// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/cride/circle-service/internal/types"
)

type StorageInterface interface {
	CreateCircle(ctx context.Context, c *types.Circle) (*types.Circle, error)
	GetCircleBySlug(ctx context.Context, slug string) (*types.Circle, error)
	ListPublicCircles(ctx context.Context, offset, limit uint64) ([]*types.Circle, error)
	UpdateCircle(ctx context.Context, c *types.Circle, paths []string) error

	AddMember(ctx context.Context, m *types.Membership, membersLimit int) (*types.Membership, error)
	GetMembership(ctx context.Context, circleID, userID string) (*types.Membership, error)
	GetActiveMembership(ctx context.Context, circleID, userID string) (*types.Membership, error)
	GetActiveMembershipForUpdate(ctx context.Context, circleID, userID string) (*types.Membership, error)
	ListActiveMembers(ctx context.Context, circleID string) ([]*types.Membership, error)
	ListSponsoredMembers(ctx context.Context, circleID, invitedBy string) ([]*types.Membership, error)
	CountActiveMembers(ctx context.Context, circleID string) (int, error)
	DeactivateMember(ctx context.Context, circleID, userID string) error
	SetMemberAdmin(ctx context.Context, circleID, userID string, isAdmin bool) error
	DebitIssuerQuota(ctx context.Context, circleID, userID string) error

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	ConsumeInvitation(ctx context.Context, circleID, code, usedBy string) (*types.Invitation, error)
	ListUnusedInvitationCodes(ctx context.Context, circleID, issuedBy string) ([]string, error)
}
