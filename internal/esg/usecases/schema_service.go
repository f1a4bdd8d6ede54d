package usecases

import (
	"context"
	"fmt"
	"time"

	"esg-server/internal/esg/domain"
	"esg-server/internal/infra/cache"
)

var _ SchemaService = &SimpleSchemaService{}

const schemaCacheKey = "esg/schema"

func NewSchemaService(provider SchemaProvider, c cache.Cache, ttl time.Duration) *SimpleSchemaService {
	return &SimpleSchemaService{
		provider: provider,
		cache:    c,
		ttl:      ttl,
	}
}

// SimpleSchemaService loads the field definitions from the backend once per
// cache window. A schema that fails its consistency check never enters the
// cache; callers keep seeing ErrSchemaLoad until the backend serves a sane
// definition set.
type SimpleSchemaService struct {
	provider SchemaProvider
	cache    cache.Cache
	ttl      time.Duration
}

func (s *SimpleSchemaService) Schema(ctx context.Context) ([]domain.Field, error) {
	value, err := s.cache.GetOrSet(ctx, schemaCacheKey, s.ttl, func() (any, error) {
		fields, err := s.provider.FetchSchema(ctx)
		if err != nil {
			return nil, err
		}
		for _, field := range fields {
			if err := field.CheckDefinition(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSchemaLoad, err)
			}
		}
		if _, err := domain.FieldsByName(fields); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchemaLoad, err)
		}
		return fields, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.Field), nil
}

func (s *SimpleSchemaService) SchemaByName(ctx context.Context) (map[string]domain.Field, error) {
	fields, err := s.Schema(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FieldsByName(fields)
}

func (s *SimpleSchemaService) GroupedSchema(ctx context.Context, method domain.Method) (domain.GroupedSchema, error) {
	fields, err := s.Schema(ctx)
	if err != nil {
		return domain.GroupedSchema{}, err
	}
	return domain.GroupFields(fields, method), nil
}
