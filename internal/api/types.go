package api

import "time"

// Canonical wire contracts for the backend. One definition per endpoint;
// older client iterations carried diverging copies of these shapes.

type User struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Seller struct {
	SellerID         int       `json:"sellerId"`
	UserID           int       `json:"userId"`
	StoreName        string    `json:"storeName"`
	StoreDescription string    `json:"storeDescription,omitempty"`
	ReturnPolicy     string    `json:"returnPolicy,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	City             string    `json:"city,omitempty"`
	Country          string    `json:"country,omitempty"`
	ZipCode          *int      `json:"zipCode,omitempty"`
	Region           string    `json:"region,omitempty"`
	AddressLine      string    `json:"addressLine,omitempty"`
}

type CreateSeller struct {
	StoreName        string `json:"storeName"`
	StoreDescription string `json:"storeDescription,omitempty"`
	ReturnPolicy     string `json:"returnPolicy,omitempty"`
	City             string `json:"city,omitempty"`
	Country          string `json:"country,omitempty"`
	ZipCode          *int   `json:"zipCode,omitempty"`
	Region           string `json:"region,omitempty"`
	AddressLine      string `json:"addressLine,omitempty"`
}

type UpdateSeller struct {
	StoreName        string `json:"storeName,omitempty"`
	StoreDescription string `json:"storeDescription,omitempty"`
	ReturnPolicy     string `json:"returnPolicy,omitempty"`
	City             string `json:"city,omitempty"`
	Country          string `json:"country,omitempty"`
	ZipCode          *int   `json:"zipCode,omitempty"`
	Region           string `json:"region,omitempty"`
	AddressLine      string `json:"addressLine,omitempty"`
}

type Product struct {
	ProductID   int      `json:"productId"`
	SellerID    int      `json:"sellerId"`
	CategoryID  int      `json:"categoryId"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Status      int      `json:"status"`
	Brand       string   `json:"brand"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Length      *float64 `json:"length,omitempty"`
}

type CreateProduct struct {
	CategoryID  int      `json:"categoryId"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Brand       string   `json:"brand"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Length      *float64 `json:"length,omitempty"`
}

// UpdateProduct is deliberately narrower than CreateProduct: the update
// endpoint accepts only these fields, brand in particular is create-only.
type UpdateProduct struct {
	ProductID   int      `json:"productId"`
	Name        string   `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description string   `json:"description,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

type Inventory struct {
	InventoryID       int       `json:"inventoryId"`
	SellerID          int       `json:"sellerId"`
	ProductID         int       `json:"productId"`
	QuantityAvailable int       `json:"quantityAvailable"`
	LastStockUpdate   time.Time `json:"lastStockUpdate"`
	Status            string    `json:"status"`
}

type CreateInventory struct {
	ProductID         int `json:"productId"`
	QuantityAvailable int `json:"quantityAvailable"`
}
