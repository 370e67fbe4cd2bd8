package api

import (
	"context"
	"time"
)

type AuthService struct {
	client *Client
}

func NewAuthService(baseURL string, timeout time.Duration, tokens TokenSource) *AuthService {
	return &AuthService{client: NewClient(baseURL, "Auth", timeout, tokens)}
}

func (s *AuthService) Register(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.do(ctx, "POST", "/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.do(ctx, "POST", "/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
