package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/fittrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fittrack/internal/dbx"
)

// Metadata keys used by MetadataStore.
const (
	KeyAccessToken = "access_token"
	KeyUsername    = "username"
)

var ErrEmptyToken = errors.New("empty token")

// Store persists the single session token slot plus the username of the
// last identity, shown while a session is being restored.
type Store interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	Username(ctx context.Context) (string, error)
	SaveUsername(ctx context.Context, username string) error
	// Clear drops both the token and the username.
	Clear(ctx context.Context) error
}

// MetadataStore keeps the session in the SQLite metadata table.
type MetadataStore struct {
	db *sql.DB
}

var _ Store = (*MetadataStore)(nil)

func NewMetadataStore(db *sql.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

func (s *MetadataStore) repo() *metadata.SQLiteRepository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *MetadataStore) Token(ctx context.Context) (string, error) {
	return s.repo().GetString(ctx, KeyAccessToken)
}

func (s *MetadataStore) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return s.repo().Set(ctx, KeyAccessToken, []byte(token))
}

func (s *MetadataStore) Username(ctx context.Context) (string, error) {
	return s.repo().GetString(ctx, KeyUsername)
}

func (s *MetadataStore) SaveUsername(ctx context.Context, username string) error {
	return s.repo().Set(ctx, KeyUsername, []byte(username))
}

func (s *MetadataStore) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, KeyAccessToken, KeyUsername)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu       sync.RWMutex
	token    string
	username string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) SaveToken(_ context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Username(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, nil
}

func (s *MemoryStore) SaveUsername(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username = username
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.username = "", ""
	return nil
}
