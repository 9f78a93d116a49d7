package vector

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"docreader/internal/models"
	"docreader/internal/store"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// StoreImpl is a pgx/pgvector-backed store.VectorStore, adapted from the
// teacher's store/vector/vector.go to index chunking.Chunk-derived
// embeddings keyed by document ID and byte offsets rather than whole
// Content rows.
type StoreImpl struct {
	db     *pgxpool.Pool
	logger logrus.FieldLogger
}

func NewStore(ctx context.Context, dsn string, logger logrus.FieldLogger) (store.VectorStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("vector store DSN cannot be empty")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse vector store DSN: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping vector store: %w", err)
	}
	logger.Info("connected to postgresql vector store")
	return &StoreImpl{db: pool, logger: logger}, nil
}

func (vs *StoreImpl) Close() error {
	if vs.db != nil {
		vs.logger.Info("closing vector store connection")
		vs.db.Close()
	}
	return nil
}

func (vs *StoreImpl) Ping(ctx context.Context) error {
	if vs.db == nil {
		return fmt.Errorf("vector store connection is not initialized")
	}
	return vs.db.Ping(ctx)
}

func (vs *StoreImpl) AddEmbedding(ctx context.Context, entry *models.EmbeddingEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	query := `INSERT INTO embeddings (id, document_id, chunk_text, start_offset, end_offset, vector, metadata)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	err := vs.db.QueryRow(ctx, query, entry.ID, entry.DocumentID, entry.ChunkText, entry.Start, entry.End,
		pgvector.NewVector(entry.Vector.Slice()), entry.Metadata).Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("add embedding: %w", err)
	}
	return nil
}

func (vs *StoreImpl) GetEmbedding(ctx context.Context, id uuid.UUID) (*models.EmbeddingEntry, error) {
	query := `SELECT id, document_id, chunk_text, start_offset, end_offset, vector, metadata, created_at
	          FROM embeddings WHERE id = $1`
	entry := &models.EmbeddingEntry{}
	var vector pgvector.Vector
	err := vs.db.QueryRow(ctx, query, id).Scan(&entry.ID, &entry.DocumentID, &entry.ChunkText,
		&entry.Start, &entry.End, &vector, &entry.Metadata, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get embedding: %w", err)
	}
	entry.Vector = vector
	return entry, nil
}

func (vs *StoreImpl) DeleteEmbeddingsByDocumentID(ctx context.Context, documentID int64) error {
	query := `DELETE FROM embeddings WHERE document_id = $1`
	_, err := vs.db.Exec(ctx, query, documentID)
	if err != nil {
		return fmt.Errorf("delete embeddings: %w", err)
	}
	return nil
}

func (vs *StoreImpl) SimilaritySearch(ctx context.Context, queryVector pgvector.Vector, k int, filterMetadata map[string]interface{}) ([]models.SearchResult, error) {
	if len(filterMetadata) > 0 {
		vs.logger.Warn("metadata filtering not yet implemented for pgvector similarity search")
	}

	query := `SELECT id, document_id, chunk_text, (vector <-> $1) as score
	          FROM embeddings ORDER BY vector <-> $1 LIMIT $2`

	rows, err := vs.db.Query(ctx, query, queryVector, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search query: %w", err)
	}
	defer rows.Close()

	var results []models.SearchResult
	for rows.Next() {
		var result models.SearchResult
		if err := rows.Scan(&result.ID, &result.DocumentID, &result.ChunkText, &result.RelevanceScore); err != nil {
			return nil, fmt.Errorf("scan similarity search row: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similarity search rows: %w", err)
	}
	return results, nil
}

var _ store.VectorStore = (*StoreImpl)(nil)
