package docstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ma3_reports/internal/models"
)

// GormStore persists documents in a single relational table with a
// JSON payload column, queried through JSON-field filters.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Collection(name string) Collection {
	return &gormCollection{db: s.db, name: name}
}

type gormCollection struct {
	db   *gorm.DB
	name string
}

func (c *gormCollection) NewID() string {
	return uuid.NewString()
}

func (c *gormCollection) Set(ctx context.Context, id string, data map[string]any) error {
	row := models.Document{
		Collection: c.name,
		DocID:      id,
		Data:       datatypes.JSONMap(data),
	}
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateID
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (c *gormCollection) Get(ctx context.Context, id string) (Doc, error) {
	var row models.Document
	err := c.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", c.name, id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Doc{}, ErrNotFound
		}
		return Doc{}, err
	}
	return Doc{ID: row.DocID, Data: map[string]any(row.Data)}, nil
}

func (c *gormCollection) Find(ctx context.Context, q Query) ([]Doc, error) {
	rows, err := c.findRows(ctx, q)
	if err != nil {
		return nil, err
	}
	docs := make([]Doc, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, Doc{ID: row.DocID, Data: map[string]any(row.Data)})
	}
	return docs, nil
}

func (c *gormCollection) Update(ctx context.Context, id string, fields map[string]any) error {
	doc, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc.Data[k] = v
	}
	return c.db.WithContext(ctx).Model(&models.Document{}).
		Where("collection = ? AND doc_id = ?", c.name, id).
		Update("data", datatypes.JSONMap(doc.Data)).Error
}

func (c *gormCollection) Delete(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", c.name, id).
		Delete(&models.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *gormCollection) DeleteMatching(ctx context.Context, q Query) ([]string, error) {
	rows, err := c.findRows(ctx, q)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.DocID)
	}

	// Commit deletes in bounded batches; each chunk is its own
	// transaction.
	for _, chunk := range chunkIDs(ids, BatchSize) {
		err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Where("collection = ? AND doc_id IN ?", c.name, chunk).
				Delete(&models.Document{}).Error
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func (c *gormCollection) findRows(ctx context.Context, q Query) ([]models.Document, error) {
	tx := c.db.WithContext(ctx).Model(&models.Document{}).
		Where("collection = ?", c.name)
	for _, f := range q.filters {
		tx = tx.Where(datatypes.JSONQuery("data").Equals(f.value, f.field))
	}
	if q.startAfter != "" {
		tx = tx.Where("doc_id > ?", q.startAfter)
	}
	tx = tx.Order("doc_id")
	if q.limit > 0 {
		tx = tx.Limit(q.limit)
	}

	var rows []models.Document
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
