package stockledger

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/arus-retail/arus-retail/internal/shared"
)

// RepositoryPort abstracts persistence for the service.
type RepositoryPort interface {
	Insert(ctx context.Context, entry Entry) error
	Get(ctx context.Context, id string) (Entry, error)
	Update(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, kind Kind, date string) ([]Entry, error)
}

// AuditPort abstracts audit logging.
type AuditPort interface {
	Record(ctx context.Context, log shared.AuditLog) error
}

// Service coordinates stock entry mutations. Concurrent edits to the same
// (date, item, unit) slot are not coordinated here; last write wins and the
// next report recomputation reflects whatever is latest.
type Service struct {
	repo     RepositoryPort
	audit    AuditPort
	validate *validator.Validate
}

// NewService builds Service.
func NewService(repo RepositoryPort, audit AuditPort) *Service {
	return &Service{repo: repo, audit: audit, validate: validator.New()}
}

// Create validates and stores a new entry.
func (s *Service) Create(ctx context.Context, req CreateEntryRequest, actorID int64) (Entry, error) {
	if err := s.validate.Struct(req); err != nil {
		return Entry{}, fmt.Errorf("stockledger: %w", err)
	}
	entry := Entry{
		ID:       uuid.NewString(),
		Kind:     req.Kind,
		Date:     req.Date,
		ItemID:   req.ItemID,
		ItemName: req.ItemName,
		Qty:      req.Qty,
		Unit:     req.Unit,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return Entry{}, err
	}
	s.recordAudit(ctx, actorID, "stock_entry:create", entry)
	return entry, nil
}

// Update validates and applies a partial edit.
func (s *Service) Update(ctx context.Context, id string, req UpdateEntryRequest, actorID int64) (Entry, error) {
	if err := s.validate.Struct(req); err != nil {
		return Entry{}, fmt.Errorf("stockledger: %w", err)
	}
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.ItemID != nil {
		entry.ItemID = *req.ItemID
	}
	if req.ItemName != nil {
		entry.ItemName = *req.ItemName
	}
	if req.Qty != nil {
		entry.Qty = *req.Qty
	}
	if req.Unit != nil {
		entry.Unit = *req.Unit
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return Entry{}, err
	}
	s.recordAudit(ctx, actorID, "stock_entry:update", entry)
	return entry, nil
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, id string, actorID int64) error {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, actorID, "stock_entry:delete", entry)
	return nil
}

// ListByDate bulk-reads entries of one kind for a date.
func (s *Service) ListByDate(ctx context.Context, kind Kind, date string) ([]Entry, error) {
	if kind != KindOpening && kind != KindClosing {
		return nil, ErrInvalidKind
	}
	return s.repo.ListByDate(ctx, kind, date)
}

func (s *Service) recordAudit(ctx context.Context, actorID int64, action string, entry Entry) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  actorID,
		Action:   action,
		Entity:   "stock_entry",
		EntityID: entry.ID,
		Meta: map[string]any{
			"kind":      string(entry.Kind),
			"date":      entry.Date,
			"item_id":   entry.ItemID,
			"item_name": entry.ItemName,
			"qty":       entry.Qty,
			"unit":      string(entry.Unit),
		},
	})
}
