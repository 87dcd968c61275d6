// Package orm wraps GORM with the small fluent query surface the
// repositories use, plus read-through caching and offset pagination.
package orm

import (
	"time"

	"github.com/shashiranjanraj/vendora/pkg/cache"
	"github.com/shashiranjanraj/vendora/pkg/database"
	"gorm.io/gorm"
)

// Pagination is the metadata returned alongside a paged result set.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type Query struct {
	db *gorm.DB
}

// DB starts a query against the shared connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// With starts a query against an explicit connection (tests use this to
// point repositories at an in-memory database).
func With(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(cond string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(cond, args...)}
}

func (q *Query) Order(expr string) *Query {
	return &Query{db: q.db.Order(expr)}
}

func (q *Query) Preload(assoc string) *Query {
	return &Query{db: q.db.Preload(assoc)}
}

func (q *Query) Select(expr string) *Query {
	return &Query{db: q.db.Select(expr)}
}

func (q *Query) GroupByColumn(column string) *Query {
	return &Query{db: q.db.Group(column)}
}

// Get loads every matching row into dest.
func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

// First loads the first matching row. Returns gorm.ErrRecordNotFound when
// nothing matches.
func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

// Count returns the number of matching rows.
func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Create inserts v.
func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

// Save persists all fields of v.
func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// SumColumn stores the sum of a numeric column into dest. Empty result
// sets sum to zero.
func (q *Query) SumColumn(column string, dest *float64) error {
	return q.db.Select("coalesce(sum(" + column + "), 0)").Scan(dest).Error
}

// Forget drops cached query results, used after writes that would make
// them stale.
func Forget(keys ...string) error {
	return cache.Del(keys...)
}

// Cached answers from the cache when possible, otherwise runs the query and
// stores the result under key for ttl.
func (q *Query) Cached(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	_ = cache.Set(key, dest, ttl)
	return nil
}

// Page loads one 1-indexed page of size items into dest and returns the
// pagination metadata for the full result set.
func (q *Query) Page(page, size int, dest interface{}) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	total, err := q.Count()
	if err != nil {
		return Pagination{}, err
	}

	if err := q.db.Offset((page - 1) * size).Limit(size).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	return Pagination{
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
	}, nil
}
