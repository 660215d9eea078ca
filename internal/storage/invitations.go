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

const invitationColumns = "id, code, circle_id, issued_by, used, used_by, used_at, created_at"

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var created types.Invitation
	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "code", "circle_id", "issued_by").
		Values(id.String(), inv.Code, inv.CircleID, inv.IssuedBy).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx).
		Scan(invitationFields(&created)...)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "invitation code collision")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "circle does not exist")
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	return &created, nil
}

// ConsumeInvitation marks an unused invitation as used in a single
// conditional update keyed on used = false, so at most one caller can ever
// win a code. A miss does not distinguish unknown codes, foreign-circle
// codes and already-used codes.
func (s *Storage) ConsumeInvitation(ctx context.Context, circleID, code, usedBy string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeInvitation")
	defer span.End()

	var consumed types.Invitation
	err := s.db.Statement(ctx).
		Update("invitations").
		Set("used", true).
		Set("used_by", usedBy).
		Set("used_at", sq.Expr("now()")).
		Where(sq.Eq{"circle_id": circleID, "code": code, "used": false}).
		Suffix("RETURNING " + invitationColumns).
		QueryRowContext(ctx).
		Scan(invitationFields(&consumed)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to consume invitation: %w", err)
	}

	return &consumed, nil
}

func (s *Storage) ListUnusedInvitationCodes(ctx context.Context, circleID, issuedBy string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUnusedInvitationCodes")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("code").
		From("invitations").
		Where(sq.Eq{"circle_id": circleID, "issued_by": issuedBy, "used": false}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unused invitations: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan invitation code: %w", err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return codes, nil
}

func invitationFields(inv *types.Invitation) []interface{} {
	return []interface{}{
		&inv.ID, &inv.Code, &inv.CircleID, &inv.IssuedBy,
		&inv.Used, &inv.UsedBy, &inv.UsedAt, &inv.CreatedAt,
	}
}
