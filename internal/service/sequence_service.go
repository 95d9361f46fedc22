package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/repository"
	"github.com/studioflow/studioflow-backend/pkg/logger"
)

// FallbackNamespace receives allocations for blank or unknown namespaces
// instead of failing the caller.
const FallbackNamespace = "GEN"

// SequenceService allocates human-readable content identifiers.
//
// The primary path is the counter-row atomic increment in the sequence
// repository. Earlier designs that scanned MAX(existing_id) + 1 raced under
// concurrent inserts and handed out duplicates; the counter row is the one
// that survived, so collisions can only come from manual data edits; those
// take the suffix fallback below.
type SequenceService struct {
	seqRepo     repository.SequenceRepository
	profileRepo repository.ProfileRepository
}

// NewSequenceService creates a new SequenceService
func NewSequenceService(seqRepo repository.SequenceRepository, profileRepo repository.ProfileRepository) *SequenceService {
	return &SequenceService{seqRepo: seqRepo, profileRepo: profileRepo}
}

// ResolveNamespace maps a requested namespace to the one actually used:
// blank or unknown profile codes fall back to FallbackNamespace.
func (s *SequenceService) ResolveNamespace(namespaceCode string) string {
	namespaceCode = strings.TrimSpace(namespaceCode)
	if namespaceCode == "" {
		return FallbackNamespace
	}
	if s.profileRepo == nil {
		return namespaceCode
	}
	exists, err := s.profileRepo.Exists(namespaceCode)
	if err != nil {
		// allocation itself will surface a real storage outage
		logger.Warn("namespace lookup failed for %q: %v", namespaceCode, err)
		return namespaceCode
	}
	if !exists {
		logger.Warn("unknown namespace %q, falling back to %s", namespaceCode, FallbackNamespace)
		return FallbackNamespace
	}
	return namespaceCode
}

// Allocate reserves the next identifier in the namespace. It runs the same
// mint path as MintCode, inside a repository transaction of its own, so the
// counter bump and the taken-code check share one connection and a collision
// still takes the suffix fallback.
func (s *SequenceService) Allocate(namespaceCode string) (string, error) {
	ns := s.ResolveNamespace(namespaceCode)
	var code string
	err := s.seqRepo.InTx(func(tx repository.ContentTx) error {
		minted, err := s.mint(tx, ns)
		if err != nil {
			return err
		}
		code = minted
		return nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// MintCode allocates an identifier inside an existing record transaction and
// verifies it against codes already taken. The counter path cannot collide on
// its own; if a manually edited record occupies the slot, a random suffix is
// appended and a warning logged. The fallback is checked too:
// ErrAllocationExhausted if even that slot is taken.
func (s *SequenceService) MintCode(tx repository.ContentTx, namespaceCode string) (string, error) {
	return s.mint(tx, s.ResolveNamespace(namespaceCode))
}

func (s *SequenceService) mint(tx repository.ContentTx, ns string) (string, error) {
	value, err := tx.AllocateSequence(ns)
	if err != nil {
		return "", err
	}

	code := FormatCode(ns, value)
	taken, err := tx.CodeExists(code)
	if err != nil {
		return "", err
	}
	if !taken {
		return code, nil
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	fallback := fmt.Sprintf("%s-%s", code, suffix)
	logger.Warn("content code %s already taken, using fallback %s", code, fallback)

	taken, err = tx.CodeExists(fallback)
	if err != nil {
		return "", err
	}
	if taken {
		return "", common.ErrAllocationExhausted
	}
	return fallback, nil
}

// FormatCode renders an allocated value as "{NS}-{zero-padded value}".
func FormatCode(namespaceCode string, value int64) string {
	return fmt.Sprintf("%s-%04d", namespaceCode, value)
}
