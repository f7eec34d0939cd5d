package provider

import (
	"context"

	"pokedex/internal/domain/pokemon"
)

// Source supplies list pages and detail records from the upstream API.
// Implementations must be safe for concurrent use.
type Source interface {
	FetchList(ctx context.Context, offset, limit int) (*pokemon.ListPage, error)
	FetchItem(ctx context.Context, id string) (*pokemon.Detail, error)
}
