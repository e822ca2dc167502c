package entries

import (
	"context"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
)

// Repository describes the operations on the entries table.
type Repository interface {
	// Insert writes entry at the given log position.
	Insert(ctx context.Context, position int, entry models.Entry) error

	// GetAll returns every stored entry ordered by position.
	GetAll(ctx context.Context) ([]models.Entry, error)

	// DeleteAll empties the table and reports how many rows were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
