// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package circle

import (
	"context"

	"github.com/cride/circle-service/internal/openfga"
	"github.com/cride/circle-service/internal/types"
)

type ServiceInterface interface {
	CreateCircle(ctx context.Context, ownerID string, c *types.Circle) (*types.Circle, error)
	GetCircle(ctx context.Context, slug string) (*types.Circle, error)
	ListCircles(ctx context.Context, page, size int64) ([]*types.Circle, error)
	UpdateCircle(ctx context.Context, actorID, slug string, c *types.Circle, paths []string) (*types.Circle, error)
	ListMembers(ctx context.Context, actorID, slug string) ([]*types.Membership, error)
	RedeemInvitation(ctx context.Context, slug, userID, code string) (*types.Membership, error)
	ReconcileInvitations(ctx context.Context, slug, userID string) (*types.InvitationBundle, error)
	DeactivateMember(ctx context.Context, slug, actorID, targetRef string) error
	SetMemberAdmin(ctx context.Context, slug, actorID, targetRef string, isAdmin bool) error
}

// StorageInterface is the subset of the storage layer the circle service
// depends on. It matches internal/storage.StorageInterface.
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
	DeactivateMember(ctx context.Context, circleID, userID string) error
	SetMemberAdmin(ctx context.Context, circleID, userID string, isAdmin bool) error
	DebitIssuerQuota(ctx context.Context, circleID, userID string) error

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	ConsumeInvitation(ctx context.Context, circleID, code, usedBy string) (*types.Invitation, error)
	ListUnusedInvitationCodes(ctx context.Context, circleID, issuedBy string) ([]string, error)
}

// TxRunnerInterface runs a unit of work inside a database transaction. The
// admission and reconciliation operations use the serializable variant so
// their cross-entity mutations hold together.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	WithSerializableTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthzInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error)
	AssignCircleAdmin(ctx context.Context, circleID, userID string) error
	AssignCircleMember(ctx context.Context, circleID, userID string) error
	RemoveCircleAdmin(ctx context.Context, circleID, userID string) error
	RemoveCircleMember(ctx context.Context, circleID, userID string) error
	CheckCircleMember(ctx context.Context, circleID, userID string) (bool, error)
	CheckCircleAdmin(ctx context.Context, circleID, userID string) (bool, error)
}

// IdentityClientInterface resolves opaque user references (usernames,
// emails) to stable identity IDs. Identity is trusted as already
// authenticated by the transport layer.
type IdentityClientInterface interface {
	GetIdentityIDByIdentifier(ctx context.Context, identifier string) (string, error)
}
