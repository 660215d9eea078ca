// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package circle

import (
	"context"
	"errors"
	"fmt"

	"github.com/cride/circle-service/internal/db"
	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/storage"
	"github.com/cride/circle-service/internal/tracing"
	"github.com/cride/circle-service/internal/types"
)

const (
	// maxRedeemAttempts bounds the retries of a redemption transaction that
	// keeps losing serialization races before we give up with ErrConflict.
	maxRedeemAttempts = 3

	// maxCodeAttempts bounds re-runs of a reconciliation unit whose freshly
	// minted code collided with an existing one.
	maxCodeAttempts = 5
)

type Service struct {
	storage            StorageInterface
	db                 TxRunnerInterface
	authz              AuthzInterface
	identity           IdentityClientInterface
	defaultInvitations int
	tracer             tracing.TracingInterface
	monitor            monitoring.MonitorInterface
	logger             logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	db TxRunnerInterface,
	authz AuthzInterface,
	identity IdentityClientInterface,
	defaultInvitations int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            storage,
		db:                 db,
		authz:              authz,
		identity:           identity,
		defaultInvitations: defaultInvitations,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

func (s *Service) CreateCircle(ctx context.Context, ownerID string, c *types.Circle) (*types.Circle, error) {
	ctx, span := s.tracer.Start(ctx, "circle.Service.CreateCircle")
	defer span.End()

	var created *types.Circle
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.storage.CreateCircle(ctx, c)
		if err != nil {
			return err
		}

		// The creator joins as the founding admin with nobody to thank for
		// the seat, so no invitation is consumed and no quota is debited.
		_, err = s.storage.AddMember(ctx, &types.Membership{
			CircleID:             created.ID,
			UserID:               ownerID,
			IsAdmin:              true,
			IsActive:             true,
			RemainingInvitations: s.defaultInvitations,
		}, 0)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("slug %q: %w", c.SlugName, ErrConflict)
		}
		s.logger.Errorf("Failed to create circle %s: %v", c.SlugName, err)
		return nil, err
	}

	if err := s.authz.AssignCircleAdmin(ctx, created.ID, ownerID); err != nil {
		s.logger.Errorf("Failed to assign admin relation on circle %s: %v", created.ID, err)
	}
	if err := s.authz.AssignCircleMember(ctx, created.ID, ownerID); err != nil {
		s.logger.Errorf("Failed to assign member relation on circle %s: %v", created.ID, err)
	}

	return created, nil
}

func (s *Service) GetCircle(ctx context.Context, slug string) (*types.Circle, error) {
	ctx, span := s.tracer.Start(ctx, "circle.Service.GetCircle")
	defer span.End()

	c, err := s.storage.GetCircleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("circle %q: %w", slug, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCircles(ctx context.Context, page, size int64) ([]*types.Circle, error) {
	ctx, span := s.tracer.Start(ctx, "circle.Service.ListCircles")
	defer span.End()

	pageSize := db.PageSize(size)
	return s.storage.ListPublicCircles(ctx, db.Offset(page, pageSize), pageSize)
}

func (s *Service) UpdateCircle(ctx context.Context, actorID, slug string, c *types.Circle, paths []string) (*types.Circle, error) {
	ctx, span := s.tracer.Start(ctx, "circle.Service.UpdateCircle")
	defer span.End()

	existing, err := s.GetCircle(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.requireAdmin(ctx, existing.ID, actorID); err != nil {
		return nil, err
	}

	c.ID = existing.ID
	if err := s.storage.UpdateCircle(ctx, c, paths); err != nil {
		return nil, err
	}

	return s.storage.GetCircleBySlug(ctx, existing.SlugName)
}

func (s *Service) ListMembers(ctx context.Context, actorID, slug string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "circle.Service.ListMembers")
	defer span.End()

	c, err := s.GetCircle(ctx, slug)
	if err != nil {
		return nil, err
	}

	ok, err := s.authz.CheckCircleMember(ctx, c.ID, actorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Security().AuthzFailure(actorID, fmt.Sprintf("circle:%s", c.ID))
		return nil, ErrForbidden
	}

	return s.storage.ListActiveMembers(ctx, c.ID)
}

// RedeemInvitation admits userID into the circle identified by slug in
// exchange for a single-use invitation code. The membership row, the
// consumed invitation and the issuer's quota debit commit together or not
// at all.
func (s *Service) RedeemInvitation(ctx context.Context, slug, userID, code string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "circle.Service.RedeemInvitation")
	defer span.End()

	var (
		member *types.Membership
		err    error
	)
	for attempt := 1; attempt <= maxRedeemAttempts; attempt++ {
		member, err = s.redeemOnce(ctx, slug, userID, code)
		if err == nil || !storage.IsSerializationError(err) {
			break
		}
		s.logger.Debugf("Redemption for %s in %s lost a serialization race, attempt %d", userID, slug, attempt)
	}
	if err != nil {
		if storage.IsSerializationError(err) {
			err = ErrConflict
		}
		s.logger.Security().AdmissionDenied(userID, slug, err.Error())
		return nil, err
	}

	// The authorization write sits outside the transaction. If it fails the
	// membership stands and the tuple is repaired by the next assignment.
	if err := s.authz.AssignCircleMember(ctx, member.CircleID, userID); err != nil {
		s.logger.Errorf("Failed to assign member relation on circle %s: %v", member.CircleID, err)
	}

	s.logger.Security().AdmissionGranted(userID, slug)
	return member, nil
}

func (s *Service) redeemOnce(ctx context.Context, slug, userID, code string) (*types.Membership, error) {
	var member *types.Membership
	err := s.db.WithSerializableTx(ctx, func(ctx context.Context) error {
		c, err := s.storage.GetCircleBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("circle %q: %w", slug, ErrNotFound)
			}
			return err
		}

		// A membership row in any state blocks re-admission. Deactivation
		// is terminal and reuses of the seat must go through support.
		if _, err := s.storage.GetMembership(ctx, c.ID, userID); err == nil {
			return ErrAlreadyMember
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		inv, err := s.storage.ConsumeInvitation(ctx, c.ID, code, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrInvalidInvitation
			}
			return err
		}

		membersLimit := 0
		if c.IsLimited {
			membersLimit = c.MembersLimit
		}
		member, err = s.storage.AddMember(ctx, &types.Membership{
			CircleID:             c.ID,
			UserID:               userID,
			IsActive:             true,
			RemainingInvitations: s.defaultInvitations,
			InvitedBy:            &inv.IssuedBy,
		}, membersLimit)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrCapacityReached):
				return ErrCircleFull
			case errors.Is(err, storage.ErrDuplicateKey):
				return ErrAlreadyMember
			}
			return err
		}

		if err := s.storage.DebitIssuerQuota(ctx, c.ID, inv.IssuedBy); err != nil {
			if errors.Is(err, storage.ErrNoRemainingQuota) {
				// An unused code always has a backing quota unit, so this
				// indicates ledger corruption rather than user error.
				s.logger.Errorf("Quota debit for issuer %s in circle %s found no remaining quota", inv.IssuedBy, c.ID)
				return ErrQuotaExhausted
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// ReconcileInvitations tops the member's pool of unused codes back up to
// their remaining quota and reports the members they already sponsored.
// Safe to call any number of times, a member with no deficit gets no new
// codes.
func (s *Service) ReconcileInvitations(ctx context.Context, slug, userID string) (*types.InvitationBundle, error) {
	ctx, span := s.tracer.Start(ctx, "circle.Service.ReconcileInvitations")
	defer span.End()

	c, err := s.GetCircle(ctx, slug)
	if err != nil {
		return nil, err
	}

	var bundle *types.InvitationBundle
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		bundle, err = s.reconcileOnce(ctx, c, userID)
		if err == nil || !errors.Is(err, storage.ErrDuplicateKey) {
			break
		}
		// A colliding code poisons the whole transaction, so the unit
		// re-runs from scratch with fresh codes.
		s.logger.Debugf("Invitation code collision for %s in %s, attempt %d", userID, slug, attempt)
	}
	if err != nil {
		if storage.IsSerializationError(err) {
			return nil, ErrConflict
		}
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("failed to mint a unique invitation code after %d attempts", maxCodeAttempts)
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("membership of %s in %q: %w", userID, slug, ErrNotFound)
		}
		return nil, err
	}

	return bundle, nil
}

func (s *Service) reconcileOnce(ctx context.Context, c *types.Circle, userID string) (*types.InvitationBundle, error) {
	var bundle *types.InvitationBundle
	err := s.db.WithSerializableTx(ctx, func(ctx context.Context) error {
		// Locking the caller's row serializes concurrent reconciliations so
		// the pool never overshoots the quota.
		m, err := s.storage.GetActiveMembershipForUpdate(ctx, c.ID, userID)
		if err != nil {
			return err
		}

		codes, err := s.storage.ListUnusedInvitationCodes(ctx, c.ID, userID)
		if err != nil {
			return err
		}

		for deficit := m.RemainingInvitations - len(codes); deficit > 0; deficit-- {
			code, err := s.mintInvitation(ctx, c.ID, userID)
			if err != nil {
				return err
			}
			codes = append(codes, code)
		}

		sponsored, err := s.storage.ListSponsoredMembers(ctx, c.ID, userID)
		if err != nil {
			return err
		}

		bundle = &types.InvitationBundle{
			Codes:            codes,
			SponsoredMembers: sponsored,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bundle, nil
}

// mintInvitation issues a single fresh code. A collision with an existing
// code aborts the surrounding transaction, so it is not retried here; the
// caller re-runs the whole unit instead.
func (s *Service) mintInvitation(ctx context.Context, circleID, issuedBy string) (string, error) {
	code, err := NewInvitationCode()
	if err != nil {
		return "", err
	}

	if _, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		Code:     code,
		CircleID: circleID,
		IssuedBy: issuedBy,
	}); err != nil {
		return "", err
	}

	return code, nil
}

// DeactivateMember retires a membership without deleting its history. A
// member may leave on their own, removing anyone else requires the admin
// relation on the circle.
func (s *Service) DeactivateMember(ctx context.Context, slug, actorID, targetRef string) error {
	ctx, span := s.tracer.Start(ctx, "circle.Service.DeactivateMember")
	defer span.End()

	c, err := s.GetCircle(ctx, slug)
	if err != nil {
		return err
	}

	targetID, err := s.resolveUser(ctx, actorID, targetRef)
	if err != nil {
		return err
	}

	if targetID != actorID {
		if err := s.requireAdmin(ctx, c.ID, actorID); err != nil {
			return err
		}
	}

	var wasAdmin bool
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		m, err := s.storage.GetActiveMembership(ctx, c.ID, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("membership of %s in %q: %w", targetID, slug, ErrNotFound)
			}
			return err
		}
		wasAdmin = m.IsAdmin

		return s.storage.DeactivateMember(ctx, c.ID, targetID)
	})
	if err != nil {
		return err
	}

	if err := s.authz.RemoveCircleMember(ctx, c.ID, targetID); err != nil {
		s.logger.Errorf("Failed to remove member relation on circle %s: %v", c.ID, err)
	}
	if wasAdmin {
		if err := s.authz.RemoveCircleAdmin(ctx, c.ID, targetID); err != nil {
			s.logger.Errorf("Failed to remove admin relation on circle %s: %v", c.ID, err)
		}
	}

	return nil
}

func (s *Service) SetMemberAdmin(ctx context.Context, slug, actorID, targetRef string, isAdmin bool) error {
	ctx, span := s.tracer.Start(ctx, "circle.Service.SetMemberAdmin")
	defer span.End()

	c, err := s.GetCircle(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.requireAdmin(ctx, c.ID, actorID); err != nil {
		return err
	}

	targetID, err := s.resolveUser(ctx, actorID, targetRef)
	if err != nil {
		return err
	}

	if err := s.storage.SetMemberAdmin(ctx, c.ID, targetID, isAdmin); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("membership of %s in %q: %w", targetID, slug, ErrNotFound)
		}
		return err
	}

	if isAdmin {
		err = s.authz.AssignCircleAdmin(ctx, c.ID, targetID)
	} else {
		err = s.authz.RemoveCircleAdmin(ctx, c.ID, targetID)
	}
	if err != nil {
		s.logger.Errorf("Failed to update admin relation on circle %s: %v", c.ID, err)
	}

	return nil
}

// resolveUser turns a user reference from the API into an identity ID. The
// target may already be an ID (the actor referring to themselves) or a
// credentials identifier looked up through Kratos.
func (s *Service) resolveUser(ctx context.Context, actorID, ref string) (string, error) {
	if ref == "" || ref == "me" || ref == actorID {
		return actorID, nil
	}

	id, err := s.identity.GetIdentityIDByIdentifier(ctx, ref)
	if err != nil {
		s.logger.Errorf("Failed to resolve identity %q: %v", ref, err)
		return "", fmt.Errorf("failed to resolve identity")
	}
	if id == "" {
		// Not a known identifier, assume the caller passed an ID directly.
		return ref, nil
	}
	return id, nil
}

func (s *Service) requireAdmin(ctx context.Context, circleID, actorID string) error {
	ok, err := s.authz.CheckCircleAdmin(ctx, circleID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Security().AuthzFailure(actorID, fmt.Sprintf("circle:%s", circleID))
		return ErrForbidden
	}
	return nil
}

var _ ServiceInterface = (*Service)(nil)
