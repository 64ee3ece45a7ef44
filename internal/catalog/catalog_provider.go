package catalog

import "context"

// Provider is a source of catalog records. The remote provider talks to
// the upstream Florista API; the sample provider serves the fixed demo
// catalog and synthesizes records locally.
//
//go:generate mockgen -source=catalog_provider.go -destination=../mock/catalog/catalog_provider_mock.go -package=mock
type Provider interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
}
