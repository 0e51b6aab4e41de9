package repo

import (
	"context"
	"reflect"
	"time"

	"gorm.io/gorm"
)

type keyed interface {
	PK() uint64
	SetPK(uint64)
}

// Model constrains repositories to model pointer types carrying an integer
// primary key.
type Model[T any] interface {
	*T
	keyed
}

// Store implements the uniform create/get/list/patch/delete contract every
// resource shares. Entity-specific repositories embed it and add their own
// queries; the store surfaces constraint violations as ErrValidation and
// missing rows as ErrNotFound.
type Store[T any, P Model[T]] struct {
	db *gorm.DB
}

func NewStore[T any, P Model[T]](db *gorm.DB) *Store[T, P] {
	return &Store[T, P]{db: db}
}

// DB exposes the underlying handle for entity-specific queries.
func (s *Store[T, P]) DB() *gorm.DB {
	return s.db
}

func (s *Store[T, P]) Create(m P) error {
	if err := s.clearManagedTimestamps(m); err != nil {
		return err
	}
	return translate(s.db.Create(m).Error)
}

// clearManagedTimestamps zeroes the store-managed time columns (created_at,
// updated_at and the autoCreateTime fields) so a value a client happened to
// send is replaced by the store's own clock on insert.
func (s *Store[T, P]) clearManagedTimestamps(m P) error {
	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(m); err != nil {
		return err
	}

	rv := reflect.ValueOf(m).Elem()
	for _, f := range stmt.Schema.Fields {
		if f.AutoCreateTime == 0 && f.AutoUpdateTime == 0 {
			continue
		}
		if err := f.Set(context.Background(), rv, time.Time{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store[T, P]) Get(id uint64) (P, error) {
	var out T
	if err := s.db.First(&out, id).Error; err != nil {
		return nil, translate(err)
	}
	return P(&out), nil
}

// List returns all rows in default store order (primary key ascending, which
// is insertion order for auto-increment keys).
func (s *Store[T, P]) List() ([]T, error) {
	var out []T
	if err := s.db.Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Patch applies the given column values to the row with the given key and
// returns the updated row. Missing rows fail with ErrNotFound before any
// write happens. Keys that do not name a writable column of T (computed
// counts, embedded representations, unknown fields) are dropped, so a client
// can read a representation, change a field and write the whole thing back.
func (s *Store[T, P]) Patch(id uint64, fields map[string]interface{}) (P, error) {
	cur, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	cols, err := s.writableColumns()
	if err != nil {
		return nil, err
	}
	for k := range fields {
		if !cols[k] {
			delete(fields, k)
		}
	}
	if len(fields) > 0 {
		if err := s.db.Model(cur).Updates(fields).Error; err != nil {
			return nil, translate(err)
		}
	}
	return s.Get(id)
}

// writableColumns reports the updatable non-primary-key columns of T by
// database name.
func (s *Store[T, P]) writableColumns() (map[string]bool, error) {
	stmt := &gorm.Statement{DB: s.db}
	var zero T
	if err := stmt.Parse(&zero); err != nil {
		return nil, err
	}
	cols := make(map[string]bool, len(stmt.Schema.FieldsByDBName))
	for name, f := range stmt.Schema.FieldsByDBName {
		if f.Updatable && !f.PrimaryKey {
			cols[name] = true
		}
	}
	return cols, nil
}

// Delete removes the row with the given key. Dependent rows go with it via
// the store's ON DELETE CASCADE constraints.
func (s *Store[T, P]) Delete(id uint64) error {
	var zero T
	res := s.db.Delete(&zero, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
