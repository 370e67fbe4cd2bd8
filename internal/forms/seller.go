package forms

import (
	"strconv"
	"strings"

	"lazapee/internal/api"
)

// SellerForm is the seller onboarding / profile edit form. ZipCode is edited
// as text; an empty string means absent, never zero.
type SellerForm struct {
	StoreName        string `json:"storeName"`
	StoreDescription string `json:"storeDescription"`
	ReturnPolicy     string `json:"returnPolicy"`
	City             string `json:"city"`
	Country          string `json:"country"`
	ZipCode          string `json:"zipCode"`
	Region           string `json:"region"`
	AddressLine      string `json:"addressLine"`
}

func ParseSeller(form SellerForm) (*api.CreateSeller, map[string]string) {
	fieldErrors := make(map[string]string)

	storeName := strings.TrimSpace(form.StoreName)
	if storeName == "" {
		fieldErrors["storeName"] = "storeName is required"
	}

	zip, err := parseZipCode(form.ZipCode)
	if err != nil {
		fieldErrors["zipCode"] = "zipCode must be a number"
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &api.CreateSeller{
		StoreName:        storeName,
		StoreDescription: strings.TrimSpace(form.StoreDescription),
		ReturnPolicy:     strings.TrimSpace(form.ReturnPolicy),
		City:             strings.TrimSpace(form.City),
		Country:          strings.TrimSpace(form.Country),
		ZipCode:          zip,
		Region:           strings.TrimSpace(form.Region),
		AddressLine:      strings.TrimSpace(form.AddressLine),
	}, nil
}

// ParseSellerUpdate applies the same rules but builds the update payload.
func ParseSellerUpdate(form SellerForm) (*api.UpdateSeller, map[string]string) {
	created, fieldErrors := ParseSeller(form)
	if fieldErrors != nil {
		return nil, fieldErrors
	}
	return &api.UpdateSeller{
		StoreName:        created.StoreName,
		StoreDescription: created.StoreDescription,
		ReturnPolicy:     created.ReturnPolicy,
		City:             created.City,
		Country:          created.Country,
		ZipCode:          created.ZipCode,
		Region:           created.Region,
		AddressLine:      created.AddressLine,
	}, nil
}

// SellerFormFrom renders a fetched profile back into editable text fields.
func SellerFormFrom(profile api.Seller) SellerForm {
	form := SellerForm{
		StoreName:        profile.StoreName,
		StoreDescription: profile.StoreDescription,
		ReturnPolicy:     profile.ReturnPolicy,
		City:             profile.City,
		Country:          profile.Country,
		Region:           profile.Region,
		AddressLine:      profile.AddressLine,
	}
	if profile.ZipCode != nil {
		form.ZipCode = strconv.Itoa(*profile.ZipCode)
	}
	return form
}

func parseZipCode(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	zip, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, err
	}
	return &zip, nil
}
