package forms

import (
	"strconv"
	"strings"

	"lazapee/internal/api"
)

// ProductForm is the raw product form as typed: numbers arrive as text and
// are only converted after validation.
type ProductForm struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Weight      string `json:"weight"`
	Width       string `json:"width"`
	Height      string `json:"height"`
	Length      string `json:"length"`
	CategoryID  int    `json:"categoryId"`
}

// ParseProduct validates the form and builds the create payload. On failure
// it returns field-keyed messages and the request must not be sent.
func ParseProduct(form ProductForm) (*api.CreateProduct, map[string]string) {
	fieldErrors := make(map[string]string)

	name := strings.TrimSpace(form.Name)
	if name == "" {
		fieldErrors["name"] = "name is required"
	}
	brand := strings.TrimSpace(form.Brand)
	if brand == "" {
		fieldErrors["brand"] = "brand is required"
	}

	price, ok := ParsePrice(form.Price)
	if !ok {
		fieldErrors["price"] = "price must be a positive number"
	}

	dimensions := map[string]string{
		"weight": form.Weight,
		"width":  form.Width,
		"height": form.Height,
		"length": form.Length,
	}
	parsed := make(map[string]*float64, len(dimensions))
	for field, value := range dimensions {
		number, err := parseOptionalNumber(value)
		if err != nil {
			fieldErrors[field] = field + " must be a number"
			continue
		}
		parsed[field] = number
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	categoryID := form.CategoryID
	if categoryID == 0 {
		categoryID = 1 // backend requires a category; the UI has no picker yet
	}

	return &api.CreateProduct{
		CategoryID:  categoryID,
		Name:        name,
		Price:       price,
		Brand:       brand,
		Description: strings.TrimSpace(form.Description),
		ImageURL:    strings.TrimSpace(form.ImageURL),
		Weight:      parsed["weight"],
		Width:       parsed["width"],
		Height:      parsed["height"],
		Length:      parsed["length"],
	}, nil
}

// ParsePrice normalizes a comma decimal separator to a dot and accepts only
// positive numeric values.
func ParsePrice(raw string) (float64, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if normalized == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

func parseOptionalNumber(raw string) (*float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if normalized == "" {
		return nil, nil
	}
	number, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil, err
	}
	return &number, nil
}
