// Package session persists the per-session editing state so a page reload
// resumes mid-flow. The store mirror is best-effort and never authoritative
// over the document a handler is currently working on.
package session

import (
	"context"
	"errors"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
)

// Step is where the user currently is in the upload/edit/export flow.
type Step string

const (
	StepUpload Step = "upload"
	StepEdit   Step = "edit"
	StepExport Step = "export"
)

// State is everything mirrored for one session.
type State struct {
	Step Step           `json:"step"`
	Menu *menu.MenuData `json:"menu,omitempty"`
}

// ErrNotFound is returned by Load when the session has no saved state.
var ErrNotFound = errors.New("session state not found")

// Store persists session state keyed by session id. Implementations:
// in-memory (tests, dev), redis and postgres.
type Store interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Clear(ctx context.Context, sessionID string) error
}
