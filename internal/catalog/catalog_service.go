package catalog

import (
	"context"

	catalogerrors "github.com/Garvit-office/smart-agriguard/internal/catalog/errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
}

// service composes a primary provider with the sample fallback. Upstream
// failures are recovered here and never surfaced to clients: listing
// falls back to the demo catalog, creation falls back to local synthesis.
type service struct {
	primary  Provider
	fallback Provider
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(primary, fallback Provider, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	return &service{
		primary:  primary,
		fallback: fallback,
		validate: validator.New(),
		logger:   l,
	}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	products, err := s.primary.List(ctx)
	if err != nil {
		// Backend unavailable. Logged distinctly from genuine absence,
		// but both serve the fallback catalog.
		s.logger.Warn("catalog upstream unavailable, serving demo catalog", zap.Error(err))
		return s.fallback.List(ctx)
	}

	if len(products) == 0 {
		s.logger.Debug("catalog upstream empty, serving demo catalog")
		return s.fallback.List(ctx)
	}

	return products, nil
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return Product{}, catalogerrors.MapValidationError(err)
	}

	product, err := s.primary.Create(ctx, req)
	if err != nil {
		s.logger.Warn("catalog upstream create failed, synthesizing locally",
			zap.String("name", req.Name),
			zap.Error(err),
		)
		return s.fallback.Create(ctx, req)
	}

	return product, nil
}
