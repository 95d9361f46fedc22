package service

import (
	"sync"

	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/internal/repository"
	"github.com/studioflow/studioflow-backend/pkg/logger"
)

var loggerOnce sync.Once

func initTestLogger() {
	loggerOnce.Do(func() { logger.InitStructured("test") })
}

// fakeContentRepo is an in-memory ContentRepository. Mutate holds the mutex
// for the whole closure, mirroring the row lock the real repository takes,
// and rolls back counter bumps when the closure fails.
type fakeContentRepo struct {
	mu       sync.Mutex
	records  map[string]*domain.ContentRecord
	counters map[string]int64
	codes    map[string]bool
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		records:  make(map[string]*domain.ContentRecord),
		counters: make(map[string]int64),
		codes:    make(map[string]bool),
	}
}

func (f *fakeContentRepo) put(rec *domain.ContentRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *rec
	f.records[rec.ID] = &clone
}

func (f *fakeContentRepo) Create(rec *domain.ContentRecord) error {
	f.put(rec)
	return nil
}

func (f *fakeContentRepo) GetByID(id string) (*domain.ContentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return nil, common.ErrRecordNotFound
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeContentRepo) List(status string, page, limit int) ([]domain.ContentRecord, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ContentRecord
	for _, rec := range f.records {
		if status == "" || string(rec.Status) == status {
			out = append(out, *rec)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeContentRepo) Mutate(id string, fn func(tx repository.ContentTx, rec *domain.ContentRecord) error) (*domain.ContentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	if !ok {
		return nil, common.ErrRecordNotFound
	}

	savedCounters := make(map[string]int64, len(f.counters))
	for k, v := range f.counters {
		savedCounters[k] = v
	}

	clone := *rec
	if err := fn(&fakeContentTx{repo: f}, &clone); err != nil {
		f.counters = savedCounters
		return nil, err
	}

	f.records[id] = &clone
	result := clone
	return &result, nil
}

type fakeContentTx struct {
	repo *fakeContentRepo
}

func (t *fakeContentTx) AllocateSequence(namespaceCode string) (int64, error) {
	next, ok := t.repo.counters[namespaceCode]
	if !ok {
		next = 1001
	}
	t.repo.counters[namespaceCode] = next + 1
	return next, nil
}

func (t *fakeContentTx) CodeExists(code string) (bool, error) {
	if t.repo.codes[code] {
		return true, nil
	}
	for _, rec := range t.repo.records {
		if rec.ContentCode != nil && *rec.ContentCode == code {
			return true, nil
		}
	}
	return false, nil
}

// fakeSequenceRepo is an in-memory SequenceRepository safe for concurrent
// use. InTx holds the store mutex for the whole closure and rolls back
// counter bumps on failure, mirroring the real transaction.
type fakeSequenceRepo struct {
	store    *fakeContentRepo
	allTaken bool // every code reads as already in use
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{store: newFakeContentRepo()}
}

func (f *fakeSequenceRepo) InTx(fn func(tx repository.ContentTx) error) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	saved := make(map[string]int64, len(f.store.counters))
	for k, v := range f.store.counters {
		saved[k] = v
	}

	var tx repository.ContentTx = &fakeContentTx{repo: f.store}
	if f.allTaken {
		tx = &exhaustedTx{inner: tx.(*fakeContentTx)}
	}
	if err := fn(tx); err != nil {
		f.store.counters = saved
		return err
	}
	return nil
}

// fakeProfileRepo knows a fixed set of namespace codes.
type fakeProfileRepo struct {
	known map[string]bool
}

func newFakeProfileRepo(codes ...string) *fakeProfileRepo {
	known := make(map[string]bool, len(codes))
	for _, code := range codes {
		known[code] = true
	}
	return &fakeProfileRepo{known: known}
}

func (f *fakeProfileRepo) Exists(code string) (bool, error) { return f.known[code], nil }

func (f *fakeProfileRepo) List() ([]domain.Profile, error) {
	var out []domain.Profile
	for code := range f.known {
		out = append(out, domain.Profile{Code: code, IsActive: true})
	}
	return out, nil
}

func (f *fakeProfileRepo) Create(profile *domain.Profile) error {
	f.known[profile.Code] = true
	return nil
}

// fakeAssignmentRepo tracks assignments and a preset workload per
// (assignee, role) so balancer tests control the counts directly. Record
// state is served from the linked content store; beforeTx lets a test
// mutate that store between the caller's read and the transaction.
type fakeAssignmentRepo struct {
	mu          sync.Mutex
	store       *fakeContentRepo
	assignments map[string]map[domain.Role]string // recordID → role → assignee
	loads       map[string]map[domain.Role]int64
	beforeTx    func()
}

func newFakeAssignmentRepo(store *fakeContentRepo) *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		store:       store,
		assignments: make(map[string]map[domain.Role]string),
		loads:       make(map[string]map[domain.Role]int64),
	}
}

func (f *fakeAssignmentRepo) setLoad(assigneeID string, role domain.Role, load int64) {
	if f.loads[assigneeID] == nil {
		f.loads[assigneeID] = make(map[domain.Role]int64)
	}
	f.loads[assigneeID][role] = load
}

func (f *fakeAssignmentRepo) assigned(recordID string, role domain.Role) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.assignments[recordID][role]
}

func (f *fakeAssignmentRepo) Upsert(recordID string, role domain.Role, assigneeID string) error {
	if f.assignments[recordID] == nil {
		f.assignments[recordID] = make(map[domain.Role]string)
	}
	f.assignments[recordID][role] = assigneeID
	return nil
}

func (f *fakeAssignmentRepo) ListByRecord(recordID string) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for role, assignee := range f.assignments[recordID] {
		out = append(out, domain.Assignment{RecordID: recordID, Role: role, AssigneeID: assignee})
	}
	return out, nil
}

func (f *fakeAssignmentRepo) CountActive(assigneeID string, role domain.Role) (int64, error) {
	return f.loads[assigneeID][role], nil
}

func (f *fakeAssignmentRepo) RecordState(recordID string) (*domain.ContentRecord, error) {
	return f.store.GetByID(recordID)
}

func (f *fakeAssignmentRepo) InTx(fn func(repo repository.AssignmentRepository) error) error {
	if f.beforeTx != nil {
		f.beforeTx()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f)
}

// fakeMemberRepo serves a fixed roster in insertion order.
type fakeMemberRepo struct {
	members []domain.TeamMember
}

func (f *fakeMemberRepo) ListActiveByRole(role domain.Role) ([]domain.TeamMember, error) {
	var out []domain.TeamMember
	for _, m := range f.members {
		if m.Role == role && m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemberRepo) List() ([]domain.TeamMember, error) { return f.members, nil }

func (f *fakeMemberRepo) Create(member *domain.TeamMember) error {
	f.members = append(f.members, *member)
	return nil
}
