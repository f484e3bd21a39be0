package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/saccade/align"
	"github.com/revelaction/saccade/feature"
	"github.com/revelaction/saccade/storage"
	"zombiezen.com/go/sqlite/sqlitex"
)

type FeatureStore struct {
	pool *sqlitex.Pool
}

var _ storage.FeatureWriter = (*FeatureStore)(nil)

func NewFeatureStore(pool *sqlitex.Pool) *FeatureStore {
	return &FeatureStore{pool: pool}
}

func (h *FeatureStore) Write(rows []feature.Row) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	for _, row := range rows {
		var tokenId interface{}
		if row.TokenId != align.Unaligned {
			tokenId = row.TokenId
		}

		err = sqlitex.Execute(conn, `
			INSERT INTO features
			(subject, item, doc_id, aoi_index, aoi_text, token_id, pos, dep, dep_distance, dep_depth, is_punct, total_reading_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, &sqlitex.ExecOptions{
			Args: []interface{}{
				row.Subject,
				row.Item,
				row.DocId,
				row.AoiIndex,
				row.AoiText,
				tokenId,
				row.Pos,
				row.Dep,
				row.DepDistance,
				row.DepDepth,
				row.IsPunct,
				row.TotalReadingTime,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to insert feature row: %w", err)
		}
	}

	return nil
}
