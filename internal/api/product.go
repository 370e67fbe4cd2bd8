package api

import (
	"context"
	"fmt"
	"time"
)

type ProductService struct {
	client *Client
}

func NewProductService(baseURL string, timeout time.Duration, tokens TokenSource) *ProductService {
	return &ProductService{client: NewClient(baseURL, "Product", timeout, tokens)}
}

func (s *ProductService) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.client.do(ctx, "GET", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, productID int) (*Product, error) {
	var product Product
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/%d", productID), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) BySeller(ctx context.Context, sellerID int) ([]Product, error) {
	var products []Product
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/seller/%d", sellerID), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, req CreateProduct) (*Product, error) {
	var product Product
	if err := s.client.do(ctx, "POST", "", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(ctx context.Context, productID int, req UpdateProduct) (*Product, error) {
	var product Product
	if err := s.client.do(ctx, "PUT", fmt.Sprintf("/%d", productID), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(ctx context.Context, productID int) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/%d", productID), nil, nil)
}
