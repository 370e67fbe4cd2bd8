package api

import (
	"context"
	"fmt"
	"time"
)

type InventoryService struct {
	client *Client
}

func NewInventoryService(baseURL string, timeout time.Duration, tokens TokenSource) *InventoryService {
	return &InventoryService{client: NewClient(baseURL, "Inventory", timeout, tokens)}
}

func (s *InventoryService) ForProduct(ctx context.Context, productID int) (*Inventory, error) {
	var inventory Inventory
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/product/%d", productID), nil, &inventory); err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (s *InventoryService) SetStock(ctx context.Context, req CreateInventory) (*Inventory, error) {
	var inventory Inventory
	if err := s.client.do(ctx, "POST", "", req, &inventory); err != nil {
		return nil, err
	}
	return &inventory, nil
}
