package repositories

import (
	"context"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
)

// YachtRepository provides read access to the normalized charter catalog
type YachtRepository interface {
	// List returns the full normalized catalog for the current fetch
	List(ctx context.Context) ([]*entities.Yacht, error)

	// GetBySlug returns the yacht whose slug matches, or a not found error
	GetBySlug(ctx context.Context, slug string) (*entities.Yacht, error)
}
