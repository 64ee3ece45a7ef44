package catalog

import (
	"context"
	"crypto/rand"
	"sync"
)

// Demo catalog served whenever no backend data is available.
var demoProducts = []Product{
	{ID: "1", Name: "Organic Fertilizer", Price: 299, Image: "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=400&q=80"},
	{ID: "2", Name: "Garden Shovel", Price: 499, Image: "https://images.unsplash.com/photo-1464983953574-0892a716854b?auto=format&fit=crop&w=400&q=80"},
	{ID: "3", Name: "Plant Seeds Pack", Price: 199, Image: "https://images.unsplash.com/photo-1501004318641-b39e6451bec6?auto=format&fit=crop&w=400&q=80"},
	{ID: "4", Name: "Watering Can", Price: 350, Image: "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=400&q=80"},
}

// sampleProvider serves the demo catalog plus anything created during the
// process lifetime. Created records are never persisted.
type sampleProvider struct {
	mu    sync.Mutex
	extra []Product
}

func NewSampleProvider() Provider {
	return &sampleProvider{}
}

func (p *sampleProvider) List(_ context.Context) ([]Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Product, 0, len(demoProducts)+len(p.extra))
	out = append(out, demoProducts...)
	out = append(out, p.extra...)
	return out, nil
}

func (p *sampleProvider) Create(_ context.Context, req CreateProductRequest) (Product, error) {
	product := Product{
		ID:    randomID(),
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	}

	p.mu.Lock()
	p.extra = append(p.extra, product)
	p.mu.Unlock()

	return product, nil
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomID returns a 9-character base36 identifier for locally
// synthesized records.
func randomID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf)
}
