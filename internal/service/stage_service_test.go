package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
)

func newStageFixture(t *testing.T, stage domain.Stage) (*StageService, *fakeContentRepo) {
	t.Helper()
	initTestLogger()
	repo := newFakeContentRepo()
	code := "ACME-1001"
	repo.put(&domain.ContentRecord{
		ID:            "r1",
		Title:         "spring campaign teaser",
		Status:        domain.StatusApproved,
		Stage:         stage,
		ContentCode:   &code,
		NamespaceCode: "ACME",
	})
	return NewStageService(repo), repo
}

func TestAdvance_OwnerDrivesForwardPath(t *testing.T) {
	svc, _ := newStageFixture(t, domain.StageNotStarted)

	steps := []struct {
		to   domain.Stage
		role domain.Role
	}{
		{domain.StagePlanning, domain.RoleVideographer},
		{domain.StageShooting, domain.RoleVideographer},
		{domain.StageShootReview, domain.RoleVideographer}, // submit for review
		{domain.StageEditing, domain.RoleAdmin},            // gate approval
		{domain.StageEditReview, domain.RoleEditor},        // submit for review
		{domain.StageReadyToPost, domain.RoleAdmin},        // gate approval
		{domain.StagePosted, domain.RolePostingManager},
	}
	for _, step := range steps {
		rec, err := svc.Advance("r1", step.to, step.role)
		require.NoError(t, err, "to %s as %s", step.to, step.role)
		assert.Equal(t, step.to, rec.Stage)
	}
}

func TestAdvance_NonAdminCannotDecideGate(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleVideographer, domain.RoleEditor, domain.RolePostingManager} {
		svc, _ := newStageFixture(t, domain.StageShootReview)

		_, err := svc.Advance("r1", domain.StageEditing, role)
		assert.ErrorIs(t, err, common.ErrInvalidStateTransition, "role %s", role)
	}
}

func TestAdvance_AdminRejectsGateBackOneStep(t *testing.T) {
	svc, _ := newStageFixture(t, domain.StageShootReview)
	rec, err := svc.Advance("r1", domain.StageShooting, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.StageShooting, rec.Stage)

	svc, _ = newStageFixture(t, domain.StageEditReview)
	rec, err = svc.Advance("r1", domain.StageEditing, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.StageEditing, rec.Stage)
}

func TestAdvance_NoSkippingStages(t *testing.T) {
	svc, _ := newStageFixture(t, domain.StagePlanning)

	_, err := svc.Advance("r1", domain.StageShootReview, domain.RoleVideographer)
	assert.ErrorIs(t, err, common.ErrInvalidStateTransition)

	// not even the admin skips
	_, err = svc.Advance("r1", domain.StageEditing, domain.RoleAdmin)
	assert.ErrorIs(t, err, common.ErrInvalidStateTransition)
}

func TestAdvance_BackwardOnlyOutOfGates(t *testing.T) {
	svc, _ := newStageFixture(t, domain.StageEditing)

	_, err := svc.Advance("r1", domain.StageShootReview, domain.RoleAdmin)
	assert.ErrorIs(t, err, common.ErrInvalidStateTransition)
}

func TestAdvance_WrongOwnerCannotMove(t *testing.T) {
	svc, _ := newStageFixture(t, domain.StageShooting)

	// shooting belongs to the videographer, not the editor
	_, err := svc.Advance("r1", domain.StageShootReview, domain.RoleEditor)
	assert.ErrorIs(t, err, common.ErrInvalidStateTransition)
}

func TestAdvance_AdminMayDriveAnyForwardStep(t *testing.T) {
	svc, _ := newStageFixture(t, domain.StageNotStarted)

	rec, err := svc.Advance("r1", domain.StagePlanning, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.StagePlanning, rec.Stage)
}

func TestAdvance_RefusedUnlessApproved(t *testing.T) {
	svc, repo := newStageFixture(t, domain.StagePlanning)
	rec, err := repo.GetByID("r1")
	require.NoError(t, err)
	rec.Status = domain.StatusPending
	repo.put(rec)

	_, err = svc.Advance("r1", domain.StageShooting, domain.RoleVideographer)
	assert.ErrorIs(t, err, common.ErrInvalidStateTransition)
}

func TestAdvance_RefusedWhenDissolved(t *testing.T) {
	svc, repo := newStageFixture(t, domain.StagePlanning)
	rec, err := repo.GetByID("r1")
	require.NoError(t, err)
	rec.IsDissolved = true
	repo.put(rec)

	_, err = svc.Advance("r1", domain.StageShooting, domain.RoleVideographer)
	assert.ErrorIs(t, err, common.ErrAlreadyDissolved)
}

func TestAdvance_PostedIsTerminal(t *testing.T) {
	svc, _ := newStageFixture(t, domain.StagePosted)

	for _, target := range []domain.Stage{domain.StageReadyToPost, domain.StageNotStarted} {
		_, err := svc.Advance("r1", target, domain.RoleAdmin)
		assert.ErrorIs(t, err, common.ErrInvalidStateTransition, "to %s", target)
	}
}

func TestAdvance_UnknownStageRejectedAtBoundary(t *testing.T) {
	svc, _ := newStageFixture(t, domain.StagePlanning)

	_, err := svc.Advance("r1", domain.Stage("color_grading"), domain.RoleAdmin)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
