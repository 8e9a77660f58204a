package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Query describes a filtered read. Expand lists relations to preload,
// nested ones with dots ("Interviews.Interviewer").
type Query struct {
	Where  map[string]any
	Scopes []func(*gorm.DB) *gorm.DB
	Order  string
	Limit  int
	Expand []string
}

// Repo is a generic record collection on top of gorm.
type Repo[T any] struct {
	db *gorm.DB
}

// NewRepo binds a collection to db, which may be a transaction.
func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{db: db}
}

// Insert creates rec without touching its associations.
func (r Repo[T]) Insert(ctx context.Context, rec *T) error {
	return Translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error)
}

// Save updates every column of rec.
func (r Repo[T]) Save(ctx context.Context, rec *T) error {
	return Translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(rec).Error)
}

func (r Repo[T]) UpdateByID(ctx context.Context, id uint, updates map[string]any) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r Repo[T]) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r Repo[T]) Get(ctx context.Context, id uint, expand ...string) (*T, error) {
	var rec T
	tx := r.db.WithContext(ctx)
	for _, rel := range expand {
		tx = tx.Preload(rel)
	}
	if err := tx.First(&rec, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &rec, nil
}

func (r Repo[T]) Find(ctx context.Context, q Query) ([]T, error) {
	var recs []T
	if err := r.apply(ctx, q).Find(&recs).Error; err != nil {
		return nil, Translate(err)
	}
	return recs, nil
}

// First returns the first record matching q or ErrNotFound.
func (r Repo[T]) First(ctx context.Context, q Query) (*T, error) {
	var rec T
	if err := r.apply(ctx, q).First(&rec).Error; err != nil {
		return nil, Translate(err)
	}
	return &rec, nil
}

// ListRecent returns all records, newest first.
func (r Repo[T]) ListRecent(ctx context.Context, expand ...string) ([]T, error) {
	return r.Find(ctx, Query{Order: "created_at desc", Expand: expand})
}

func (r Repo[T]) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	q.Expand, q.Order, q.Limit = nil, "", 0
	if err := r.apply(ctx, q).Model(new(T)).Count(&n).Error; err != nil {
		return 0, Translate(err)
	}
	return n, nil
}

func (r Repo[T]) apply(ctx context.Context, q Query) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if len(q.Where) > 0 {
		tx = tx.Where(q.Where)
	}
	if len(q.Scopes) > 0 {
		tx = tx.Scopes(q.Scopes...)
	}
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	for _, rel := range q.Expand {
		tx = tx.Preload(rel)
	}
	return tx
}
