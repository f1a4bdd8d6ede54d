package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// ORM is the subset of gorm's chainable API the application relies on. The
// indirection keeps repositories mockable and the span instrumentation in
// one place.
type ORM interface {
	AutoMigrate(dst ...any) error
	Create(value any) ORM
	Find(dest any, conds ...any) ORM
	First(dest any, conds ...any) ORM
	Model(value any) ORM
	Order(value any) ORM
	Save(value any) ORM
	Updates(values any) ORM
	Where(query any, args ...any) ORM
	WithContext(ctx context.Context) ORM
	Transaction(fc func(tx ORM) error, opts ...*sql.TxOptions) error

	Error() error
}

var ErrRecordNotFound = errors.New("record not found")

type DB struct {
	*gorm.DB
	autoMigrationEnabled bool
}

var _ ORM = (*DB)(nil)

func (d DB) Error() error {
	switch {
	case errors.Is(d.DB.Error, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case d.DB.Error != nil:
		return fmt.Errorf("database error: %w", d.DB.Error)
	default:
		return nil
	}
}

func (d DB) AutoMigrate(dst ...any) error {
	if d.autoMigrationEnabled {
		return d.DB.AutoMigrate(dst...)
	}

	return nil
}

func (d DB) Create(value any) ORM {
	d.setSpanAttributes("create")
	tx := d.DB.Create(value)
	d.DB = tx
	return &d
}

func (d DB) Find(value any, conds ...any) ORM {
	d.setSpanAttributes("find")
	tx := d.DB.Find(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) First(value any, conds ...any) ORM {
	d.setSpanAttributes("first")
	tx := d.DB.First(value, conds...)
	d.DB = tx
	return &d
}

func (d DB) Model(value any) ORM {
	tx := d.DB.Model(value)
	d.DB = tx
	return &d
}

func (d DB) Order(value any) ORM {
	tx := d.DB.Order(value)
	d.DB = tx
	return &d
}

func (d DB) Save(value any) ORM {
	d.setSpanAttributes("save")
	tx := d.DB.Save(value)
	d.DB = tx
	return &d
}

func (d DB) Updates(values any) ORM {
	d.setSpanAttributes("update")
	tx := d.DB.Updates(values)
	d.DB = tx
	return &d
}

func (d DB) Where(query any, args ...any) ORM {
	tx := d.DB.Where(query, args...)
	d.DB = tx
	return &d
}

func (d DB) WithContext(ctx context.Context) ORM {
	tx := d.DB.WithContext(ctx)
	d.DB = tx
	return &d
}

func (d DB) Transaction(fc func(tx ORM) error, opts ...*sql.TxOptions) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		return fc(&DB{tx, d.autoMigrationEnabled})
	}, opts...)
}

func (d DB) setSpanAttributes(operation string) {
	if ctx := d.DB.Statement.Context; ctx != nil {
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(
				attribute.String("span.kind", "client"),
				attribute.String("component", "database"),
				attribute.String("db.system", "sqlite"),
				attribute.String("db.operation", operation),
			)
		}
	}
}
