package service

import (
	"fmt"
	"strings"

	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/internal/metrics"
	"github.com/studioflow/studioflow-backend/internal/notify"
	"github.com/studioflow/studioflow-backend/internal/repository"
	"github.com/studioflow/studioflow-backend/pkg/logger"
)

// RejectionLimit is the rejection count at which a record is permanently
// dissolved. Dissolution is a one-way latch.
const RejectionLimit = 5

// ReviewService is the admin review gateway: it owns the
// pending/approved/rejected/dissolved state machine and is the only place
// that mints content codes or moves the failure counters.
//
// Rejection and disapproval are deliberately separate decisions with
// separate counters. Reject guards the pre-production quality gate and
// accumulates toward dissolution; disapproval retracts an approval already
// in production and must never push a record toward the dissolution
// threshold.
type ReviewService struct {
	contentRepo repository.ContentRepository
	sequence    *SequenceService
	notifier    *notify.Notifier
}

// NewReviewService creates a new ReviewService
func NewReviewService(contentRepo repository.ContentRepository, sequence *SequenceService) *ReviewService {
	return &ReviewService{contentRepo: contentRepo, sequence: sequence}
}

// SetNotifier sets the event notifier (optional dependency)
func (s *ReviewService) SetNotifier(notifier *notify.Notifier) {
	s.notifier = notifier
}

// Approve moves a pending record into production and mints its content code
// exactly once. Approving an already-approved record is a no-op returning
// the current state, so a retried request never mints a second code.
func (s *ReviewService) Approve(recordID string) (*domain.ContentRecord, error) {
	minted := false
	rec, err := s.contentRepo.Mutate(recordID, func(tx repository.ContentTx, rec *domain.ContentRecord) error {
		if rec.IsDissolved {
			return common.ErrAlreadyDissolved
		}
		if rec.Status == domain.StatusApproved {
			// retried approve; code already minted or will never be re-minted
			return nil
		}
		if rec.Status != domain.StatusPending {
			return fmt.Errorf("%w: approve from %s", common.ErrInvalidStateTransition, rec.Status)
		}

		rec.Status = domain.StatusApproved
		rec.Stage = domain.StageNotStarted

		if rec.ContentCode == nil {
			code, err := s.sequence.MintCode(tx, rec.NamespaceCode)
			if err != nil {
				return err
			}
			rec.ContentCode = &code
			minted = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Decisions.WithLabelValues("approve").Inc()
	if minted {
		metrics.Allocations.WithLabelValues(rec.NamespaceCode).Inc()
		logger.Info("record %s approved, content code %s minted", rec.ID, *rec.ContentCode)
	}
	s.notifier.Publish(notify.RecordEvent(notify.EventApproved, rec))
	return rec, nil
}

// Reject turns down a pending submission. The counter increment and the
// dissolution check run in the same transaction, so a record never sits
// above the limit without being dissolved.
func (s *ReviewService) Reject(recordID string) (*domain.ContentRecord, error) {
	rec, err := s.contentRepo.Mutate(recordID, func(_ repository.ContentTx, rec *domain.ContentRecord) error {
		if rec.IsDissolved {
			return common.ErrAlreadyDissolved
		}
		if rec.Status != domain.StatusPending {
			return fmt.Errorf("%w: reject from %s", common.ErrInvalidStateTransition, rec.Status)
		}

		rec.Status = domain.StatusRejected
		rec.RejectionCount++

		if rec.RejectionCount >= RejectionLimit {
			rec.IsDissolved = true
			reason := fmt.Sprintf("rejected %d times; project permanently dissolved", rec.RejectionCount)
			rec.DissolutionReason = &reason
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Decisions.WithLabelValues("reject").Inc()
	if rec.IsDissolved {
		metrics.Dissolutions.Inc()
		logger.Info("record %s dissolved after %d rejections", rec.ID, rec.RejectionCount)
		s.notifier.Publish(notify.RecordEvent(notify.EventDissolved, rec))
	} else {
		s.notifier.Publish(notify.RecordEvent(notify.EventRejected, rec))
	}
	return rec, nil
}

// Disapprove retracts a prior approval with a mandatory human-authored
// reason. Production work past planning is discarded (stage resets);
// assignments stay so the same people pick the record back up if it is
// approved again.
func (s *ReviewService) Disapprove(recordID, reason string) (*domain.ContentRecord, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, common.ErrReasonRequired
	}

	rec, err := s.contentRepo.Mutate(recordID, func(_ repository.ContentTx, rec *domain.ContentRecord) error {
		if rec.IsDissolved {
			return common.ErrAlreadyDissolved
		}
		if rec.Status != domain.StatusApproved {
			return fmt.Errorf("%w: disapprove from %s", common.ErrInvalidStateTransition, rec.Status)
		}

		rec.Status = domain.StatusPending
		rec.DisapprovalCount++
		rec.DisapprovalReason = &reason

		if rec.Stage != domain.StageNotStarted && rec.Stage != domain.StagePlanning {
			rec.Stage = domain.StageNotStarted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Decisions.WithLabelValues("disapprove").Inc()
	event := notify.RecordEvent(notify.EventDisapproved, rec)
	event.Reason = reason
	s.notifier.Publish(event)
	return rec, nil
}

// Resubmit puts a rejected record back in the review queue, optionally with
// a reworked script. Dissolved records can never come back.
func (s *ReviewService) Resubmit(recordID, script string) (*domain.ContentRecord, error) {
	rec, err := s.contentRepo.Mutate(recordID, func(_ repository.ContentTx, rec *domain.ContentRecord) error {
		if rec.IsDissolved {
			return common.ErrAlreadyDissolved
		}
		if rec.Status != domain.StatusRejected {
			return fmt.Errorf("%w: resubmit from %s", common.ErrInvalidStateTransition, rec.Status)
		}

		rec.Status = domain.StatusPending
		if script = strings.TrimSpace(script); script != "" {
			rec.Script = script
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Decisions.WithLabelValues("resubmit").Inc()
	s.notifier.Publish(notify.RecordEvent(notify.EventResubmitted, rec))
	return rec, nil
}
