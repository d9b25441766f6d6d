// Package scan owns the upload/edit/export workflow: it drives per-image
// extraction, reconciles the batches into one document and applies edit
// operations against the session-persisted copy.
package scan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
	"github.com/Erictomm2002/Menu-Scanner/internal/session"
	"github.com/Erictomm2002/Menu-Scanner/internal/storage"
)

// Extractor is the slice of the extraction client this service needs.
type Extractor interface {
	ExtractMenu(ctx context.Context, image []byte, mimeType string) (*menu.ExtractionResult, error)
}

// ErrNoMenu is returned when an edit operation targets a session that has
// no reconciled document yet.
var ErrNoMenu = errors.New("session has no menu")

// UploadedImage is one file from a multipart upload, already read into
// memory.
type UploadedImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service struct {
	extractor Extractor
	store     session.Store
	archive   storage.Archiver // nil disables archival
	idgen     menu.IDGenerator
	log       *zap.Logger
}

func NewService(
	extractor Extractor,
	store session.Store,
	archive storage.Archiver,
	idgen menu.IDGenerator,
	log *zap.Logger,
) *Service {
	return &Service{
		extractor: extractor,
		store:     store,
		archive:   archive,
		idgen:     idgen,
		log:       log,
	}
}

// StartSession creates a fresh session at the upload step and returns its
// id plus a signed bearer token for it.
func (s *Service) StartSession(ctx context.Context) (string, string, error) {
	sessionID := uuid.New().String()

	if err := s.store.Save(ctx, sessionID, &session.State{Step: session.StepUpload}); err != nil {
		return "", "", err
	}

	token, err := session.GenerateToken(sessionID)
	if err != nil {
		return "", "", err
	}
	return sessionID, token, nil
}

// GetState returns the persisted state for resumption after a reload.
func (s *Service) GetState(ctx context.Context, sessionID string) (*session.State, error) {
	return s.store.Load(ctx, sessionID)
}

// Reset discards the session's document and step.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// ExtractSingle runs one stateless extraction. Nothing is persisted; the
// caller owns the resulting batch.
func (s *Service) ExtractSingle(ctx context.Context, img UploadedImage) (*menu.ExtractionResult, error) {
	return s.extractor.ExtractMenu(ctx, img.Data, img.ContentType)
}

// CreateMenu extracts every image sequentially in upload order, reconciles
// the batches and commits the document to the session at the edit step.
//
// The batch is all-or-nothing: if extraction fails for any image, the whole
// operation aborts and the session is left exactly as it was — results from
// images that already succeeded are discarded, and the remaining images are
// never submitted.
func (s *Service) CreateMenu(ctx context.Context, sessionID string, images []UploadedImage) (*menu.MenuData, error) {
	batches := make([]menu.ExtractionResult, 0, len(images))
	for _, img := range images {
		batch, err := s.extractor.ExtractMenu(ctx, img.Data, img.ContentType)
		if err != nil {
			return nil, fmt.Errorf("lỗi xử lý ảnh %s: %w", img.Filename, err)
		}
		batches = append(batches, *batch)
	}

	doc := menu.Reconcile(batches)

	s.archiveImages(ctx, sessionID, images)

	state := &session.State{Step: session.StepEdit, Menu: &doc}
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	s.log.Info("menu reconciled",
		zap.String("sessionID", sessionID),
		zap.Int("images", len(images)),
		zap.Int("categories", len(doc.Categories)),
	)
	return &doc, nil
}

// archiveImages stores the originals for later re-inspection. Best effort
// only: failures are logged and swallowed.
func (s *Service) archiveImages(ctx context.Context, sessionID string, images []UploadedImage) {
	if s.archive == nil {
		return
	}

	for _, img := range images {
		key := fmt.Sprintf("menus/%s/%s%s", sessionID, uuid.New().String(), filepath.Ext(img.Filename))
		if _, err := s.archive.Archive(ctx, key, img.ContentType, img.Data); err != nil {
			s.log.Warn("image archive failed",
				zap.String("sessionID", sessionID),
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

// SetStep records a step transition (edit -> export and back).
func (s *Service) SetStep(ctx context.Context, sessionID string, step session.Step) (*session.State, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Step = step
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// mutate loads the session document, applies one edit operation and
// write-through saves the result.
func (s *Service) mutate(ctx context.Context, sessionID string, op func(*menu.MenuData) error) (*menu.MenuData, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Menu == nil {
		return nil, ErrNoMenu
	}

	if err := op(state.Menu); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Menu, nil
}

func (s *Service) RenameRestaurant(ctx context.Context, sessionID, name string) (*menu.MenuData, error) {
	return s.mutate(ctx, sessionID, func(doc *menu.MenuData) error {
		menu.RenameRestaurant(doc, name)
		return nil
	})
}

func (s *Service) RenameCategory(ctx context.Context, sessionID, categoryID, name string) (*menu.MenuData, error) {
	return s.mutate(ctx, sessionID, func(doc *menu.MenuData) error {
		return menu.RenameCategory(doc, categoryID, name)
	})
}

func (s *Service) UpdateItemField(ctx context.Context, sessionID, categoryID, itemID string, field menu.ItemField, value string) (*menu.MenuData, error) {
	return s.mutate(ctx, sessionID, func(doc *menu.MenuData) error {
		return menu.UpdateItemField(doc, categoryID, itemID, field, value)
	})
}

func (s *Service) AddItem(ctx context.Context, sessionID, categoryID string) (*menu.MenuData, error) {
	return s.mutate(ctx, sessionID, func(doc *menu.MenuData) error {
		_, err := menu.AddItem(doc, s.idgen, categoryID)
		return err
	})
}

func (s *Service) DeleteItem(ctx context.Context, sessionID, categoryID, itemID string) (*menu.MenuData, error) {
	return s.mutate(ctx, sessionID, func(doc *menu.MenuData) error {
		return menu.DeleteItem(doc, categoryID, itemID)
	})
}

func (s *Service) AddCategory(ctx context.Context, sessionID string) (*menu.MenuData, error) {
	return s.mutate(ctx, sessionID, func(doc *menu.MenuData) error {
		menu.AddCategory(doc, s.idgen)
		return nil
	})
}

func (s *Service) DeleteCategory(ctx context.Context, sessionID, categoryID string) (*menu.MenuData, error) {
	return s.mutate(ctx, sessionID, func(doc *menu.MenuData) error {
		return menu.DeleteCategory(doc, categoryID)
	})
}

func (s *Service) MoveItem(ctx context.Context, sessionID, categoryID, itemID string, direction menu.MoveDirection) (*menu.MenuData, error) {
	return s.mutate(ctx, sessionID, func(doc *menu.MenuData) error {
		return menu.MoveItem(doc, categoryID, itemID, direction)
	})
}
