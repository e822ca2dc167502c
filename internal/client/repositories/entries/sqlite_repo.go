package entries

import (
	"context"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/dmitrijs2005/gophjournal/internal/client/models"
	"github.com/dmitrijs2005/gophjournal/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, position int, e models.Entry) error {
	record, err := msgpack.Marshal(&e)
	if err != nil {
		return fmt.Errorf("failed to encode entry %d: %w", e.Id, err)
	}

	query := `INSERT INTO entries (id, position, record) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, e.Id, position, record); err != nil {
		return fmt.Errorf("failed to insert entry %d: %w", e.Id, err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Entry, error) {
	query := `SELECT id, record FROM entries ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		var (
			id     int64
			record []byte
		)
		if err := rows.Scan(&id, &record); err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}

		var e models.Entry
		if err := msgpack.Unmarshal(record, &e); err != nil {
			return nil, fmt.Errorf("failed to decode entry %d: %w", id, err)
		}
		// The key column is authoritative.
		e.Id = id
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entry rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
