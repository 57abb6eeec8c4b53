package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/google/uuid"
	"time"
)

type Kind string

const (
	KindAktionsart Kind = "aktionsart"
	KindLS         Kind = "ls"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindAktionsart, KindLS:
		return k, nil
	}
	return "", fmt.Errorf("unknown session kind '%s'", s)
}

var ErrSessionNotFound = errors.New("session not found")

// Record is a stored dialog session of either kind.
type Record struct {
	ID         string              `json:"id"`
	Kind       Kind                `json:"kind"`
	Lang       aktionsart.Lang     `json:"lang,omitempty"`
	Parent     string              `json:"parent,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Aktionsart *aktionsart.Session `json:"aktionsart,omitempty"`
	LS         *ls.Session         `json:"ls,omitempty"`
}

// Store keeps sessions between requests. Update runs fn with the session
// locked and saves the record when fn succeeds.
type Store interface {
	Create(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn func(rec *Record) error) (*Record, error)
}

// prepare gives a new record its id and timestamps.
func prepare(rec *Record) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
}

func encode(rec *Record) ([]byte, error) {
	return json.Marshal(rec)
}

func decode(b []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &rec, nil
}
