package api

import (
	"context"
	"fmt"
	"time"
)

type SellerService struct {
	client *Client
}

func NewSellerService(baseURL string, timeout time.Duration, tokens TokenSource) *SellerService {
	return &SellerService{client: NewClient(baseURL, "Seller", timeout, tokens)}
}

// MyProfile fetches the seller profile bound to the authenticated user.
func (s *SellerService) MyProfile(ctx context.Context) (*Seller, error) {
	var seller Seller
	if err := s.client.do(ctx, "GET", "/my-seller-profile", nil, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (s *SellerService) Create(ctx context.Context, req CreateSeller) (*Seller, error) {
	var seller Seller
	if err := s.client.do(ctx, "POST", "/create-seller", req, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (s *SellerService) Update(ctx context.Context, req UpdateSeller) (*Seller, error) {
	var seller Seller
	if err := s.client.do(ctx, "PUT", "/update-seller-profile", req, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (s *SellerService) ByID(ctx context.Context, sellerID int) (*Seller, error) {
	var seller Seller
	if err := s.client.do(ctx, "GET", fmt.Sprintf("/seller-id/%d", sellerID), nil, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (s *SellerService) DeleteMyProfile(ctx context.Context) error {
	return s.client.do(ctx, "DELETE", "/delete-my-seller-profile", nil, nil)
}
