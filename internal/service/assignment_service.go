package service

import (
	"fmt"

	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/internal/metrics"
	"github.com/studioflow/studioflow-backend/internal/notify"
	"github.com/studioflow/studioflow-backend/internal/repository"
	"github.com/studioflow/studioflow-backend/pkg/logger"
)

// AssignmentService balances pipeline roles across the team. Workload is
// computed live from the assignment store at pick time; there is no
// maintained per-member counter to drift out of sync, and candidate pools
// are team-sized, so the O(n) scan is fine.
type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
	memberRepo     repository.MemberRepository
	contentRepo    repository.ContentRepository
	notifier       *notify.Notifier
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	memberRepo repository.MemberRepository,
	contentRepo repository.ContentRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		memberRepo:     memberRepo,
		contentRepo:    contentRepo,
	}
}

// SetNotifier sets the event notifier (optional dependency)
func (s *AssignmentService) SetNotifier(notifier *notify.Notifier) {
	s.notifier = notifier
}

// PickLeastLoaded returns the candidate with the fewest active assignments
// for the role. Ties break by input order, first seen wins; callers rely
// on that determinism.
func (s *AssignmentService) PickLeastLoaded(repo repository.AssignmentRepository, role domain.Role, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", common.ErrNoEligibleAssignee
	}

	best := ""
	bestLoad := int64(-1)
	for _, candidate := range candidates {
		load, err := repo.CountActive(candidate, role)
		if err != nil {
			return "", err
		}
		if bestLoad < 0 || load < bestLoad {
			best = candidate
			bestLoad = load
		}
	}
	return best, nil
}

// AssignRole binds a role on a record to a team member. With an explicit
// assignee the choice is taken as-is; with a pool (or no pool, in which
// case all active members holding the role are the pool) the least-loaded
// candidate wins. Pick and write happen in one transaction.
func (s *AssignmentService) AssignRole(recordID string, role domain.Role, assigneeID string, pool []string) (*domain.ContentRecord, error) {
	assignable := false
	for _, r := range domain.AssignableRoles {
		if r == role {
			assignable = true
			break
		}
	}
	if !assignable {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownRole, role)
	}

	mode := "explicit"
	chosen := assigneeID
	var rec *domain.ContentRecord
	err := s.assignmentRepo.InTx(func(repo repository.AssignmentRepository) error {
		// guard on the locked row, not a pre-transaction snapshot, so a
		// record dissolved moments earlier never gains an assignment
		state, err := repo.RecordState(recordID)
		if err != nil {
			return err
		}
		if state.IsDissolved {
			return common.ErrAlreadyDissolved
		}
		rec = state

		if chosen == "" {
			candidates := pool
			if len(candidates) == 0 {
				members, err := s.memberRepo.ListActiveByRole(role)
				if err != nil {
					return err
				}
				for _, m := range members {
					candidates = append(candidates, m.ID)
				}
			}
			picked, err := s.PickLeastLoaded(repo, role, candidates)
			if err != nil {
				return err
			}
			chosen = picked
			mode = "balanced"
		}
		return repo.Upsert(recordID, role, chosen)
	})
	if err != nil {
		return nil, err
	}

	metrics.Assignments.WithLabelValues(mode).Inc()
	logger.Info("record %s: %s assigned to %s (%s)", recordID, role, chosen, mode)

	event := notify.RecordEvent(notify.EventAssigned, rec)
	event.Role = role
	event.AssigneeID = chosen
	s.notifier.Publish(event)

	return s.contentRepo.GetByID(recordID)
}
