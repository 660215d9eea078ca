// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cride/circle-service/internal/types"
)

const membershipColumns = "id, circle_id, user_id, is_admin, is_active, used_invitations, remaining_invitations, invited_by, rides_taken, rides_offered, created_at"

// AddMember inserts a membership row. When membersLimit is positive the
// insert is guarded by the circle's active member count in the same
// statement, so two racing admissions cannot both land on the last seat.
func (s *Storage) AddMember(ctx context.Context, m *types.Membership, membersLimit int) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	sel := sq.Select().
		Column(sq.Expr("?::uuid", id.String())).
		Column(sq.Expr("?::uuid", m.CircleID)).
		Column(sq.Expr("?", m.UserID)).
		Column(sq.Expr("?", m.IsAdmin)).
		Column(sq.Expr("?", m.IsActive)).
		Column(sq.Expr("?", m.UsedInvitations)).
		Column(sq.Expr("?", m.RemainingInvitations)).
		Column(sq.Expr("?", m.InvitedBy)).
		Where(sq.Expr(
			"? <= 0 OR (SELECT COUNT(*) FROM memberships WHERE circle_id = ? AND is_active) < ?",
			membersLimit, m.CircleID, membersLimit,
		))

	var created types.Membership
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "circle_id", "user_id", "is_admin", "is_active", "used_invitations", "remaining_invitations", "invited_by").
		Select(sel).
		Suffix("RETURNING " + membershipColumns).
		QueryRowContext(ctx).
		Scan(membershipFields(&created)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCapacityReached
		}
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "membership already exists")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "circle does not exist")
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetMembership(ctx context.Context, circleID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"circle_id": circleID, "user_id": userID}, "")
}

func (s *Storage) GetActiveMembership(ctx context.Context, circleID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveMembership")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"circle_id": circleID, "user_id": userID, "is_active": true}, "")
}

// GetActiveMembershipForUpdate locks the membership row for the duration of
// the surrounding transaction. Used to serialize concurrent reconciliations
// for the same member.
func (s *Storage) GetActiveMembershipForUpdate(ctx context.Context, circleID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveMembershipForUpdate")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"circle_id": circleID, "user_id": userID, "is_active": true}, "FOR UPDATE")
}

func (s *Storage) getMembership(ctx context.Context, pred sq.Eq, suffix string) (*types.Membership, error) {
	query := s.db.Statement(ctx).
		Select(membershipColumns).
		From("memberships").
		Where(pred)
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	var m types.Membership
	err := query.QueryRowContext(ctx).Scan(membershipFields(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListActiveMembers(ctx context.Context, circleID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveMembers")
	defer span.End()

	return s.listMembers(ctx, sq.Eq{"circle_id": circleID, "is_active": true})
}

// ListSponsoredMembers returns the active memberships created off codes the
// given user issued in the circle.
func (s *Storage) ListSponsoredMembers(ctx context.Context, circleID, invitedBy string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSponsoredMembers")
	defer span.End()

	return s.listMembers(ctx, sq.Eq{"circle_id": circleID, "invited_by": invitedBy, "is_active": true})
}

func (s *Storage) listMembers(ctx context.Context, pred sq.Eq) ([]*types.Membership, error) {
	rows, err := s.db.Statement(ctx).
		Select(membershipColumns).
		From("memberships").
		Where(pred).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(membershipFields(&m)...); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) CountActiveMembers(ctx context.Context, circleID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveMembers")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("memberships").
		Where(sq.Eq{"circle_id": circleID, "is_active": true}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	return count, nil
}

// DeactivateMember soft-deletes a membership. The row is kept as history,
// only the active flag changes.
func (s *Storage) DeactivateMember(ctx context.Context, circleID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("is_active", false).
		Where(sq.Eq{"circle_id": circleID, "user_id": userID, "is_active": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) SetMemberAdmin(ctx context.Context, circleID, userID string, isAdmin bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMemberAdmin")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("is_admin", isAdmin).
		Where(sq.Eq{"circle_id": circleID, "user_id": userID, "is_active": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set member admin flag: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// DebitIssuerQuota moves one invitation from the issuer's remaining pool to
// their used count. The decrement is conditional on remaining_invitations
// being positive so the counter can never go negative; a zero-row update
// signals ledger corruption upstream.
func (s *Storage) DebitIssuerQuota(ctx context.Context, circleID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DebitIssuerQuota")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("used_invitations", sq.Expr("used_invitations + 1")).
		Set("remaining_invitations", sq.Expr("remaining_invitations - 1")).
		Where(sq.Eq{"circle_id": circleID, "user_id": userID}).
		Where(sq.Gt{"remaining_invitations": 0}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to debit issuer quota: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNoRemainingQuota
	}

	return nil
}

func membershipFields(m *types.Membership) []interface{} {
	return []interface{}{
		&m.ID, &m.CircleID, &m.UserID, &m.IsAdmin, &m.IsActive,
		&m.UsedInvitations, &m.RemainingInvitations, &m.InvitedBy,
		&m.RidesTaken, &m.RidesOffered, &m.CreatedAt,
	}
}
