package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/showreel/internal/domain"
	"github.com/redis/go-redis/v9"
)

// DefaultSnapshotTTL is the TTL of the catalog snapshot (30 days)
const DefaultSnapshotTTL = 30 * 24 * time.Hour

// Snapshot is the persisted copy of the last good catalog
type Snapshot struct {
	Catalog *domain.Catalog `json:"catalog"`
	Source  string          `json:"source"`
	SavedAt time.Time       `json:"saved_at"`
}

// SaveCatalog stores the catalog snapshot
func (s *Store) SaveCatalog(ctx context.Context, cat *domain.Catalog, source string) error {
	data, err := encodeSnapshot(Snapshot{Catalog: cat, Source: source, SavedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, CatalogKey(), data, DefaultSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	return nil
}

// GetCatalog retrieves the catalog snapshot.
// A missing snapshot returns nil, nil.
func (s *Store) GetCatalog(ctx context.Context) (*Snapshot, error) {
	data, err := s.client.Get(ctx, CatalogKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // No snapshot yet
		}
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	return decodeSnapshot(data)
}

func encodeSnapshot(snap Snapshot) ([]byte, error) {
	if snap.Catalog == nil {
		return nil, fmt.Errorf("refusing to save empty catalog")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if snap.Catalog == nil || len(snap.Catalog.Categories) == 0 {
		return nil, fmt.Errorf("catalog snapshot is empty")
	}
	return &snap, nil
}
