package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/internal/repository"
)

// ContentService handles submission CRUD around the workflow core.
type ContentService struct {
	contentRepo repository.ContentRepository
}

// NewContentService creates a new ContentService
func NewContentService(contentRepo repository.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

// Create stores a new pending submission.
func (s *ContentService) Create(title, script, namespaceCode, authorID string) (*domain.ContentRecord, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, fmt.Errorf("%w: script is required", common.ErrInvalidInput)
	}

	rec := &domain.ContentRecord{
		ID:            uuid.NewString(),
		Title:         title,
		Script:        script,
		Status:        domain.StatusPending,
		Stage:         domain.StageNotStarted,
		NamespaceCode: strings.TrimSpace(namespaceCode),
		AuthorID:      authorID,
	}
	if err := s.contentRepo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get fetches one record with its assignments.
func (s *ContentService) Get(id string) (*domain.ContentRecord, error) {
	return s.contentRepo.GetByID(id)
}

// List pages through records, optionally filtered by status.
func (s *ContentService) List(status string, page, limit int) ([]domain.ContentRecord, int64, error) {
	if status != "" && !domain.Status(status).Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", common.ErrInvalidInput, status)
	}
	return s.contentRepo.List(status, page, limit)
}
