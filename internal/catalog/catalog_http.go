package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// httpProvider talks to the upstream Florista product API. A single
// request per call, no retries: callers fall back to the sample provider
// when this one fails.
type httpProvider struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string) Provider {
	return &httpProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *httpProvider) List(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("upstream product list: unexpected status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("upstream product list: decode: %w", err)
	}
	return products, nil
}

func (p *httpProvider) Create(ctx context.Context, createReq CreateProductRequest) (Product, error) {
	body, err := json.Marshal(createReq)
	if err != nil {
		return Product{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/products", bytes.NewReader(body))
	if err != nil {
		return Product{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		io.Copy(io.Discard, resp.Body)
		return Product{}, fmt.Errorf("upstream product create: unexpected status %d", resp.StatusCode)
	}

	var created Product
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return Product{}, fmt.Errorf("upstream product create: decode: %w", err)
	}
	return created, nil
}
