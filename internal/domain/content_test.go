package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageForwardPath(t *testing.T) {
	assert.Equal(t, StagePlanning, StageNotStarted.Next())
	assert.Equal(t, StageShooting, StagePlanning.Next())
	assert.Equal(t, StageShootReview, StageShooting.Next())
	assert.Equal(t, StageEditing, StageShootReview.Next())
	assert.Equal(t, StageEditReview, StageEditing.Next())
	assert.Equal(t, StageReadyToPost, StageEditReview.Next())
	assert.Equal(t, StagePosted, StageReadyToPost.Next())
	assert.Equal(t, Stage(""), StagePosted.Next(), "posted is terminal")
}

func TestStagePrev(t *testing.T) {
	assert.Equal(t, StageShooting, StageShootReview.Prev())
	assert.Equal(t, StageEditing, StageEditReview.Prev())
	assert.Equal(t, Stage(""), StageNotStarted.Prev())
}

func TestReviewGates(t *testing.T) {
	gates := map[Stage]bool{
		StageShootReview: true,
		StageEditReview:  true,
	}
	for _, st := range []Stage{
		StageNotStarted, StagePlanning, StageShooting, StageShootReview,
		StageEditing, StageEditReview, StageReadyToPost, StagePosted,
	} {
		assert.Equal(t, gates[st], st.IsReviewGate(), "stage %s", st)
	}
}

func TestStageOwnerRole(t *testing.T) {
	assert.Equal(t, RoleVideographer, StageShooting.OwnerRole())
	assert.Equal(t, RoleAdmin, StageShootReview.OwnerRole())
	assert.Equal(t, RoleEditor, StageEditing.OwnerRole())
	assert.Equal(t, RoleAdmin, StageEditReview.OwnerRole())
	assert.Equal(t, RolePostingManager, StageReadyToPost.OwnerRole())
}

func TestStageIsActive(t *testing.T) {
	assert.True(t, StageEditing.IsActive())
	assert.False(t, StagePosted.IsActive())
}

func TestParseStage(t *testing.T) {
	st, ok := ParseStage("shoot_review")
	assert.True(t, ok)
	assert.Equal(t, StageShootReview, st)

	_, ok = ParseStage("ShootReview")
	assert.False(t, ok)
	_, ok = ParseStage("")
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("posting_manager")
	assert.True(t, ok)
	assert.Equal(t, RolePostingManager, role)

	_, ok = ParseRole("director")
	assert.False(t, ok)
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected, StatusDissolved} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("archived").Valid())
}
