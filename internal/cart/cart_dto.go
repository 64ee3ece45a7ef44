package cart

type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type CartResponse struct {
	Items Items `json:"items"`
	Count int   `json:"count"`
}

func newCartResponse(items Items) CartResponse {
	count := 0
	for _, qty := range items {
		count += qty
	}
	return CartResponse{Items: items, Count: count}
}
