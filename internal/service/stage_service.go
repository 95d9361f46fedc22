package service

import (
	"fmt"

	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/internal/metrics"
	"github.com/studioflow/studioflow-backend/internal/notify"
	"github.com/studioflow/studioflow-backend/internal/repository"
)

// StageService drives approved records along the production path:
//
//	not_started → planning → shooting → shoot_review → editing →
//	edit_review → ready_to_post → posted
//
// shoot_review and edit_review are admin gates. Role-holders may only
// submit forward into a gate; only the admin moves a record out of one,
// forward on approval or one step back on rejection. That split is an
// authorization invariant enforced here, not a UI affordance; the check
// runs on the acting role regardless of which route called in.
type StageService struct {
	contentRepo repository.ContentRepository
	notifier    *notify.Notifier
}

// NewStageService creates a new StageService
func NewStageService(contentRepo repository.ContentRepository) *StageService {
	return &StageService{contentRepo: contentRepo}
}

// SetNotifier sets the event notifier (optional dependency)
func (s *StageService) SetNotifier(notifier *notify.Notifier) {
	s.notifier = notifier
}

// Advance applies one stage move for the acting role. Records that are not
// approved, or that are dissolved, never move.
func (s *StageService) Advance(recordID string, requested domain.Stage, actingRole domain.Role) (*domain.ContentRecord, error) {
	if !requested.Valid() {
		return nil, fmt.Errorf("%w: unknown stage %q", common.ErrInvalidInput, requested)
	}

	rec, err := s.contentRepo.Mutate(recordID, func(_ repository.ContentTx, rec *domain.ContentRecord) error {
		if rec.IsDissolved {
			return common.ErrAlreadyDissolved
		}
		if rec.Status != domain.StatusApproved {
			return fmt.Errorf("%w: stage move while %s", common.ErrInvalidStateTransition, rec.Status)
		}
		if err := validateStageMove(rec.Stage, requested, actingRole); err != nil {
			return err
		}
		rec.Stage = requested
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.StageMoves.WithLabelValues(string(rec.Stage)).Inc()
	s.notifier.Publish(notify.RecordEvent(notify.EventStageMoved, rec))
	return rec, nil
}

// validateStageMove checks both the path (adjacent move only) and the
// acting role's authority over that move.
func validateStageMove(current, requested domain.Stage, actingRole domain.Role) error {
	if current.IsReviewGate() {
		// only the admin decision leaves a gate: forward on approval,
		// one step back on rejection
		if actingRole != domain.RoleAdmin {
			return fmt.Errorf("%w: %s may not decide the %s gate", common.ErrInvalidStateTransition, actingRole, current)
		}
		if requested != current.Next() && requested != current.Prev() {
			return fmt.Errorf("%w: %s → %s", common.ErrInvalidStateTransition, current, requested)
		}
		return nil
	}

	// outside a gate only the single forward step exists
	if requested != current.Next() {
		return fmt.Errorf("%w: %s → %s", common.ErrInvalidStateTransition, current, requested)
	}
	if actingRole != domain.RoleAdmin && actingRole != current.OwnerRole() {
		return fmt.Errorf("%w: %s may not move a record out of %s", common.ErrInvalidStateTransition, actingRole, current)
	}
	return nil
}
