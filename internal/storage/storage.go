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

	"github.com/cride/circle-service/internal/db"
	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/tracing"
	"github.com/cride/circle-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const circleColumns = "id, name, slug_name, about, is_public, verified, is_limited, members_limit, rides_offered, rides_taken, created_at, updated_at"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateCircle(ctx context.Context, c *types.Circle) (*types.Circle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCircle")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate circle ID: %w", err)
	}

	var created types.Circle
	err = s.db.Statement(ctx).
		Insert("circles").
		Columns("id", "name", "slug_name", "about", "is_public", "verified", "is_limited", "members_limit").
		Values(id.String(), c.Name, c.SlugName, c.About, c.IsPublic, c.Verified, c.IsLimited, c.MembersLimit).
		Suffix("RETURNING " + circleColumns).
		QueryRowContext(ctx).
		Scan(circleFields(&created)...)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("slug name already taken: %w", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to insert circle: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetCircleBySlug(ctx context.Context, slug string) (*types.Circle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCircleBySlug")
	defer span.End()

	var c types.Circle
	err := s.db.Statement(ctx).
		Select(circleColumns).
		From("circles").
		Where(sq.Eq{"slug_name": slug}).
		QueryRowContext(ctx).
		Scan(circleFields(&c)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get circle: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListPublicCircles(ctx context.Context, offset, limit uint64) ([]*types.Circle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPublicCircles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(circleColumns).
		From("circles").
		Where(sq.Eq{"is_public": true}).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list circles: %w", err)
	}
	defer rows.Close()

	var circles []*types.Circle
	for rows.Next() {
		var c types.Circle
		if err := rows.Scan(circleFields(&c)...); err != nil {
			return nil, fmt.Errorf("failed to scan circle: %w", err)
		}
		circles = append(circles, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return circles, nil
}

// UpdateCircle updates fields specified in paths, following PATCH semantics.
func (s *Storage) UpdateCircle(ctx context.Context, c *types.Circle, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCircle")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = c.Name
		case "about":
			updateMap["about"] = c.About
		case "is_public":
			updateMap["is_public"] = c.IsPublic
		case "is_limited":
			updateMap["is_limited"] = c.IsLimited
		case "members_limit":
			updateMap["members_limit"] = c.MembersLimit
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("circles").
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update circle: %w", err)
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

func circleFields(c *types.Circle) []interface{} {
	return []interface{}{
		&c.ID, &c.Name, &c.SlugName, &c.About, &c.IsPublic, &c.Verified,
		&c.IsLimited, &c.MembersLimit, &c.RidesOffered, &c.RidesTaken,
		&c.CreatedAt, &c.UpdatedAt,
	}
}
