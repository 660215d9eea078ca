// Copyright 2026 Comparte Ride
// SPDX-License-Identifier: AGPL-3.0

package circle

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"

	"github.com/cride/circle-service/internal/logging"
	"github.com/cride/circle-service/internal/monitoring"
	"github.com/cride/circle-service/internal/storage"
	"github.com/cride/circle-service/internal/tracing"
	"github.com/cride/circle-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package circle -destination ./mock_interfaces.go -source=./interfaces.go

const (
	testCircleID = "0191a0b2-0000-7cc0-b3f1-2d2b4f1f6a01"
	testSlug     = "pdx-commuters"
	testUserID   = "user-42"
	testIssuerID = "issuer-7"
	testCode     = "FQ2JV83KTRWM4HXA"
)

type serviceFixture struct {
	storage  *MockStorageInterface
	db       *MockTxRunnerInterface
	authz    *MockAuthzInterface
	identity *MockIdentityClientInterface
	service  *Service
}

func newServiceFixture(t *testing.T, defaultInvitations int) *serviceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &serviceFixture{
		storage:  NewMockStorageInterface(ctrl),
		db:       NewMockTxRunnerInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		identity: NewMockIdentityClientInterface(ctrl),
	}
	f.service = NewService(
		f.storage,
		f.db,
		f.authz,
		f.identity,
		defaultInvitations,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return f
}

func runTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func testCircle() *types.Circle {
	return &types.Circle{
		ID:        testCircleID,
		Name:      "PDX commuters",
		SlugName:  testSlug,
		IsLimited: true, MembersLimit: 50,
	}
}

func TestRedeemInvitationSuccess(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), testCircleID, testUserID).Return(nil, storage.ErrNotFound)
	f.storage.EXPECT().ConsumeInvitation(gomock.Any(), testCircleID, testCode, testUserID).
		Return(&types.Invitation{Code: testCode, CircleID: testCircleID, IssuedBy: testIssuerID, Used: true}, nil)
	f.storage.EXPECT().AddMember(gomock.Any(), gomock.Any(), 50).DoAndReturn(
		func(_ context.Context, m *types.Membership, _ int) (*types.Membership, error) {
			if m.InvitedBy == nil || *m.InvitedBy != testIssuerID {
				t.Errorf("expected invited_by to be the issuer, got %v", m.InvitedBy)
			}
			if m.RemainingInvitations != 10 {
				t.Errorf("expected default quota 10, got %d", m.RemainingInvitations)
			}
			if !m.IsActive || m.IsAdmin {
				t.Error("admitted member must be active and not admin")
			}
			m.ID = "membership-1"
			return m, nil
		})
	f.storage.EXPECT().DebitIssuerQuota(gomock.Any(), testCircleID, testIssuerID).Return(nil)
	f.authz.EXPECT().AssignCircleMember(gomock.Any(), testCircleID, testUserID).Return(nil)

	member, err := f.service.RedeemInvitation(context.Background(), testSlug, testUserID, testCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if member.ID != "membership-1" {
		t.Fatalf("unexpected membership: %+v", member)
	}
}

func TestRedeemInvitationUnknownCircle(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), "nowhere").Return(nil, storage.ErrNotFound)

	_, err := f.service.RedeemInvitation(context.Background(), "nowhere", testUserID, testCode)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRedeemInvitationAlreadyMember(t *testing.T) {
	for _, active := range []bool{true, false} {
		name := "active membership"
		if !active {
			name = "deactivated membership"
		}
		t.Run(name, func(t *testing.T) {
			f := newServiceFixture(t, 10)

			f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
			f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
			f.storage.EXPECT().GetMembership(gomock.Any(), testCircleID, testUserID).
				Return(&types.Membership{CircleID: testCircleID, UserID: testUserID, IsActive: active}, nil)

			// The invitation must survive a duplicate join attempt.
			_, err := f.service.RedeemInvitation(context.Background(), testSlug, testUserID, testCode)
			if !errors.Is(err, ErrAlreadyMember) {
				t.Fatalf("expected ErrAlreadyMember, got %v", err)
			}
		})
	}
}

func TestRedeemInvitationInvalidCode(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), testCircleID, testUserID).Return(nil, storage.ErrNotFound)
	f.storage.EXPECT().ConsumeInvitation(gomock.Any(), testCircleID, testCode, testUserID).Return(nil, storage.ErrNotFound)

	_, err := f.service.RedeemInvitation(context.Background(), testSlug, testUserID, testCode)
	if !errors.Is(err, ErrInvalidInvitation) {
		t.Fatalf("expected ErrInvalidInvitation, got %v", err)
	}
}

func TestRedeemInvitationCircleFull(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), testCircleID, testUserID).Return(nil, storage.ErrNotFound)
	f.storage.EXPECT().ConsumeInvitation(gomock.Any(), testCircleID, testCode, testUserID).
		Return(&types.Invitation{Code: testCode, CircleID: testCircleID, IssuedBy: testIssuerID}, nil)
	f.storage.EXPECT().AddMember(gomock.Any(), gomock.Any(), 50).Return(nil, storage.ErrCapacityReached)

	// The transaction rolls back, so the consumed invitation is restored.
	_, err := f.service.RedeemInvitation(context.Background(), testSlug, testUserID, testCode)
	if !errors.Is(err, ErrCircleFull) {
		t.Fatalf("expected ErrCircleFull, got %v", err)
	}
}

func TestRedeemInvitationQuotaExhausted(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), testCircleID, testUserID).Return(nil, storage.ErrNotFound)
	f.storage.EXPECT().ConsumeInvitation(gomock.Any(), testCircleID, testCode, testUserID).
		Return(&types.Invitation{Code: testCode, CircleID: testCircleID, IssuedBy: testIssuerID}, nil)
	f.storage.EXPECT().AddMember(gomock.Any(), gomock.Any(), 50).DoAndReturn(
		func(_ context.Context, m *types.Membership, _ int) (*types.Membership, error) { return m, nil })
	f.storage.EXPECT().DebitIssuerQuota(gomock.Any(), testCircleID, testIssuerID).Return(storage.ErrNoRemainingQuota)

	_, err := f.service.RedeemInvitation(context.Background(), testSlug, testUserID, testCode)
	if !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
}

func TestRedeemInvitationUnlimitedCircleSkipsCapacity(t *testing.T) {
	f := newServiceFixture(t, 10)

	c := testCircle()
	c.IsLimited = false

	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(c, nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), testCircleID, testUserID).Return(nil, storage.ErrNotFound)
	f.storage.EXPECT().ConsumeInvitation(gomock.Any(), testCircleID, testCode, testUserID).
		Return(&types.Invitation{Code: testCode, CircleID: testCircleID, IssuedBy: testIssuerID}, nil)
	f.storage.EXPECT().AddMember(gomock.Any(), gomock.Any(), 0).DoAndReturn(
		func(_ context.Context, m *types.Membership, _ int) (*types.Membership, error) { return m, nil })
	f.storage.EXPECT().DebitIssuerQuota(gomock.Any(), testCircleID, testIssuerID).Return(nil)
	f.authz.EXPECT().AssignCircleMember(gomock.Any(), testCircleID, testUserID).Return(nil)

	if _, err := f.service.RedeemInvitation(context.Background(), testSlug, testUserID, testCode); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRedeemInvitationRetriesSerializationFailures(t *testing.T) {
	f := newServiceFixture(t, 10)

	serErr := &pgconn.PgError{Code: "40001"}
	gomock.InOrder(
		f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).Return(serErr),
		f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).Return(serErr),
		f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx),
	)
	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), testCircleID, testUserID).Return(nil, storage.ErrNotFound)
	f.storage.EXPECT().ConsumeInvitation(gomock.Any(), testCircleID, testCode, testUserID).
		Return(&types.Invitation{Code: testCode, CircleID: testCircleID, IssuedBy: testIssuerID}, nil)
	f.storage.EXPECT().AddMember(gomock.Any(), gomock.Any(), 50).DoAndReturn(
		func(_ context.Context, m *types.Membership, _ int) (*types.Membership, error) { return m, nil })
	f.storage.EXPECT().DebitIssuerQuota(gomock.Any(), testCircleID, testIssuerID).Return(nil)
	f.authz.EXPECT().AssignCircleMember(gomock.Any(), testCircleID, testUserID).Return(nil)

	if _, err := f.service.RedeemInvitation(context.Background(), testSlug, testUserID, testCode); err != nil {
		t.Fatalf("expected a losing transaction to be retried, got %v", err)
	}
}

func TestRedeemInvitationGivesUpAfterRepeatedConflicts(t *testing.T) {
	f := newServiceFixture(t, 10)

	serErr := &pgconn.PgError{Code: "40001"}
	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).Return(serErr).Times(maxRedeemAttempts)

	_, err := f.service.RedeemInvitation(context.Background(), testSlug, testUserID, testCode)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestReconcileInvitationsMintsDeficit(t *testing.T) {
	f := newServiceFixture(t, 10)

	existing := []string{"CODEAAAAAAAAAAAA", "CODEBBBBBBBBBBBB", "CODECCCCCCCCCCCC"}
	sponsored := []*types.Membership{{CircleID: testCircleID, UserID: "rider-1"}}

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetActiveMembershipForUpdate(gomock.Any(), testCircleID, testUserID).
		Return(&types.Membership{CircleID: testCircleID, UserID: testUserID, IsActive: true, RemainingInvitations: 5}, nil)
	f.storage.EXPECT().ListUnusedInvitationCodes(gomock.Any(), testCircleID, testUserID).Return(existing, nil)
	f.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
			if inv.CircleID != testCircleID || inv.IssuedBy != testUserID {
				t.Errorf("minted invitation bound to wrong issuer: %+v", inv)
			}
			if len(inv.Code) != codeLength {
				t.Errorf("unexpected code length %d", len(inv.Code))
			}
			return inv, nil
		})
	f.storage.EXPECT().ListSponsoredMembers(gomock.Any(), testCircleID, testUserID).Return(sponsored, nil)

	bundle, err := f.service.ReconcileInvitations(context.Background(), testSlug, testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundle.Codes) != 5 {
		t.Fatalf("expected the pool topped up to 5 codes, got %d", len(bundle.Codes))
	}
	if len(bundle.SponsoredMembers) != 1 {
		t.Fatalf("expected 1 sponsored member, got %d", len(bundle.SponsoredMembers))
	}
}

func TestReconcileInvitationsIsIdempotent(t *testing.T) {
	f := newServiceFixture(t, 10)

	existing := []string{"CODEAAAAAAAAAAAA", "CODEBBBBBBBBBBBB"}

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetActiveMembershipForUpdate(gomock.Any(), testCircleID, testUserID).
		Return(&types.Membership{CircleID: testCircleID, UserID: testUserID, IsActive: true, RemainingInvitations: 2}, nil)
	f.storage.EXPECT().ListUnusedInvitationCodes(gomock.Any(), testCircleID, testUserID).Return(existing, nil)
	f.storage.EXPECT().ListSponsoredMembers(gomock.Any(), testCircleID, testUserID).Return(nil, nil)

	// No deficit, so no CreateInvitation calls are expected.
	bundle, err := f.service.ReconcileInvitations(context.Background(), testSlug, testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundle.Codes) != 2 {
		t.Fatalf("expected the existing pool back unchanged, got %d codes", len(bundle.Codes))
	}
}

func TestReconcileInvitationsRequiresActiveMembership(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetActiveMembershipForUpdate(gomock.Any(), testCircleID, testUserID).Return(nil, storage.ErrNotFound)

	_, err := f.service.ReconcileInvitations(context.Background(), testSlug, testUserID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReconcileInvitationsRetriesCodeCollision(t *testing.T) {
	f := newServiceFixture(t, 10)

	// A collision aborts the transaction, so the whole unit runs again.
	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx).Times(2)
	f.storage.EXPECT().GetActiveMembershipForUpdate(gomock.Any(), testCircleID, testUserID).
		Return(&types.Membership{CircleID: testCircleID, UserID: testUserID, IsActive: true, RemainingInvitations: 1}, nil).
		Times(2)
	f.storage.EXPECT().ListUnusedInvitationCodes(gomock.Any(), testCircleID, testUserID).Return(nil, nil).Times(2)
	gomock.InOrder(
		f.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey),
		f.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) { return inv, nil }),
	)
	f.storage.EXPECT().ListSponsoredMembers(gomock.Any(), testCircleID, testUserID).Return(nil, nil)

	bundle, err := f.service.ReconcileInvitations(context.Background(), testSlug, testUserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundle.Codes) != 1 {
		t.Fatalf("expected 1 code after a collision retry, got %d", len(bundle.Codes))
	}
}

func TestReconcileInvitationsGivesUpOnRepeatedCollisions(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.db.EXPECT().WithSerializableTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx).Times(5)
	f.storage.EXPECT().GetActiveMembershipForUpdate(gomock.Any(), testCircleID, testUserID).
		Return(&types.Membership{CircleID: testCircleID, UserID: testUserID, IsActive: true, RemainingInvitations: 1}, nil).
		Times(5)
	f.storage.EXPECT().ListUnusedInvitationCodes(gomock.Any(), testCircleID, testUserID).Return(nil, nil).Times(5)
	f.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey).Times(5)

	_, err := f.service.ReconcileInvitations(context.Background(), testSlug, testUserID)
	if err == nil {
		t.Fatal("expected an error after exhausting collision retries")
	}
	if errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("raw storage error leaked to the caller: %v", err)
	}
}

func TestDeactivateMemberSelf(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetActiveMembership(gomock.Any(), testCircleID, testUserID).
		Return(&types.Membership{CircleID: testCircleID, UserID: testUserID, IsActive: true}, nil)
	f.storage.EXPECT().DeactivateMember(gomock.Any(), testCircleID, testUserID).Return(nil)
	f.authz.EXPECT().RemoveCircleMember(gomock.Any(), testCircleID, testUserID).Return(nil)

	if err := f.service.DeactivateMember(context.Background(), testSlug, testUserID, testUserID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeactivateMemberRequiresAdminForOthers(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.identity.EXPECT().GetIdentityIDByIdentifier(gomock.Any(), "rider-9").Return("", nil)
	f.authz.EXPECT().CheckCircleAdmin(gomock.Any(), testCircleID, testUserID).Return(false, nil)

	err := f.service.DeactivateMember(context.Background(), testSlug, testUserID, "rider-9")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDeactivateMemberAsAdminRemovesAdminTuple(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.identity.EXPECT().GetIdentityIDByIdentifier(gomock.Any(), "rider@example.com").Return("rider-9", nil)
	f.authz.EXPECT().CheckCircleAdmin(gomock.Any(), testCircleID, testUserID).Return(true, nil)
	f.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetActiveMembership(gomock.Any(), testCircleID, "rider-9").
		Return(&types.Membership{CircleID: testCircleID, UserID: "rider-9", IsActive: true, IsAdmin: true}, nil)
	f.storage.EXPECT().DeactivateMember(gomock.Any(), testCircleID, "rider-9").Return(nil)
	f.authz.EXPECT().RemoveCircleMember(gomock.Any(), testCircleID, "rider-9").Return(nil)
	f.authz.EXPECT().RemoveCircleAdmin(gomock.Any(), testCircleID, "rider-9").Return(nil)

	if err := f.service.DeactivateMember(context.Background(), testSlug, testUserID, "rider@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeactivateMemberNotAMember(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().GetActiveMembership(gomock.Any(), testCircleID, testUserID).Return(nil, storage.ErrNotFound)

	err := f.service.DeactivateMember(context.Background(), testSlug, testUserID, testUserID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateCircleAssignsFoundingAdmin(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().CreateCircle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *types.Circle) (*types.Circle, error) {
			created := *c
			created.ID = testCircleID
			return &created, nil
		})
	f.storage.EXPECT().AddMember(gomock.Any(), gomock.Any(), 0).DoAndReturn(
		func(_ context.Context, m *types.Membership, _ int) (*types.Membership, error) {
			if !m.IsAdmin || !m.IsActive {
				t.Error("founder must join as an active admin")
			}
			if m.InvitedBy != nil {
				t.Error("founder has no sponsor")
			}
			if m.RemainingInvitations != 10 {
				t.Errorf("expected default quota 10, got %d", m.RemainingInvitations)
			}
			return m, nil
		})
	f.authz.EXPECT().AssignCircleAdmin(gomock.Any(), testCircleID, testUserID).Return(nil)
	f.authz.EXPECT().AssignCircleMember(gomock.Any(), testCircleID, testUserID).Return(nil)

	c, err := f.service.CreateCircle(context.Background(), testUserID, &types.Circle{Name: "PDX commuters", SlugName: testSlug})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != testCircleID {
		t.Fatalf("unexpected circle: %+v", c)
	}
}

func TestCreateCircleDuplicateSlug(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.storage.EXPECT().CreateCircle(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

	_, err := f.service.CreateCircle(context.Background(), testUserID, &types.Circle{Name: "PDX commuters", SlugName: testSlug})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestListMembersRequiresMembership(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.authz.EXPECT().CheckCircleMember(gomock.Any(), testCircleID, testUserID).Return(false, nil)

	_, err := f.service.ListMembers(context.Background(), testUserID, testSlug)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSetMemberAdmin(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.authz.EXPECT().CheckCircleAdmin(gomock.Any(), testCircleID, testUserID).Return(true, nil)
	f.identity.EXPECT().GetIdentityIDByIdentifier(gomock.Any(), "rider-9").Return("", nil)
	f.storage.EXPECT().SetMemberAdmin(gomock.Any(), testCircleID, "rider-9", true).Return(nil)
	f.authz.EXPECT().AssignCircleAdmin(gomock.Any(), testCircleID, "rider-9").Return(nil)

	if err := f.service.SetMemberAdmin(context.Background(), testSlug, testUserID, "rider-9", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateCircleRequiresAdmin(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().GetCircleBySlug(gomock.Any(), testSlug).Return(testCircle(), nil)
	f.authz.EXPECT().CheckCircleAdmin(gomock.Any(), testCircleID, testUserID).Return(false, nil)

	_, err := f.service.UpdateCircle(context.Background(), testUserID, testSlug, &types.Circle{Name: "renamed"}, []string{"name"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestListCirclesPagination(t *testing.T) {
	f := newServiceFixture(t, 10)

	f.storage.EXPECT().ListPublicCircles(gomock.Any(), uint64(0), uint64(100)).Return([]*types.Circle{testCircle()}, nil)
	f.storage.EXPECT().ListPublicCircles(gomock.Any(), uint64(40), uint64(20)).Return(nil, nil)

	// Zero values fall back to the first page with the default size.
	circles, err := f.service.ListCircles(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(circles))
	}

	if _, err := f.service.ListCircles(context.Background(), 3, 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
