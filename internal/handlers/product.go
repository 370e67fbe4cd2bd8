package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lazapee/internal/api"
	"lazapee/internal/forms"
)

// ProductList is the public catalog: fetch-all, no pagination, no filters.
// An empty backend response renders an explicit empty state.
func ProductList(products *api.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "CATALOG")

		list, err := products.List(c.Request.Context())
		if err != nil {
			respondBackendError(c, "CATALOG", err, "Failed to load products.")
			return
		}

		if len(list) == 0 {
			c.JSON(http.StatusOK, gin.H{"state": "empty", "products": []api.Product{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"state": "ok", "products": list})
	}
}

// ProductDetail returns one product with its available stock when the
// inventory record can be fetched.
func ProductDetail(products *api.ProductService, inventory *api.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "CATALOG")

		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		product, err := products.Get(c.Request.Context(), id)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"state": "error", "error": "Product not found."})
				return
			}
			respondBackendError(c, "CATALOG", err, "Failed to load product.")
			return
		}

		view := gin.H{"state": "ok", "product": product}
		if stock, err := inventory.ForProduct(c.Request.Context(), id); err == nil {
			view["stock"] = stock.QuantityAvailable
		}
		c.JSON(http.StatusOK, view)
	}
}

// AddProduct validates the form locally and posts the create payload. An
// invalid form issues zero backend calls.
func AddProduct(products *api.ProductService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "PRODUCT")

		var form forms.ProductForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondValidationError(c, err)
			return
		}

		payload, fieldErrors := forms.ParseProduct(form)
		if fieldErrors != nil {
			respondFieldErrors(c, fieldErrors)
			return
		}

		if !acquireSubmit(c, guard, "product-create") {
			return
		}
		defer guard.Release("product-create")

		created, err := products.Create(c.Request.Context(), *payload)
		if err != nil {
			respondBackendError(c, "PRODUCT", err, "Failed to add product. Please try again.")
			return
		}

		log.Println("[PRODUCT] [INFO] product created:", created.ProductID)
		respondRedirect(c, "/seller/dashboard")
	}
}

type editProductForm struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// EditProduct pre-fills the editable subset of a product. Brand is shown
// but not editable; the update contract does not carry it.
func EditProduct(products *api.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "PRODUCT")

		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		product, err := products.Get(c.Request.Context(), id)
		if err != nil {
			if api.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"state": "error", "error": "Product not found."})
				return
			}
			respondBackendError(c, "PRODUCT", err, "Failed to load product.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"state": "ok",
			"form": editProductForm{
				Name:        product.Name,
				Price:       strconv.FormatFloat(product.Price, 'f', -1, 64),
				Description: product.Description,
			},
			"brand":     product.Brand,
			"productId": product.ProductID,
		})
	}
}

func EditProductSubmit(products *api.ProductService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "PRODUCT")

		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var form editProductForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondValidationError(c, err)
			return
		}

		fieldErrors := make(map[string]string)
		name := strings.TrimSpace(form.Name)
		if name == "" {
			fieldErrors["name"] = "name is required"
		}
		price, ok := forms.ParsePrice(form.Price)
		if !ok {
			fieldErrors["price"] = "price must be a positive number"
		}
		if len(fieldErrors) > 0 {
			respondFieldErrors(c, fieldErrors)
			return
		}

		key := fmt.Sprintf("product-update:%d", id)
		if !acquireSubmit(c, guard, key) {
			return
		}
		defer guard.Release(key)

		_, err := products.Update(c.Request.Context(), id, api.UpdateProduct{
			ProductID:   id,
			Name:        name,
			Price:       &price,
			Description: strings.TrimSpace(form.Description),
		})
		if err != nil {
			respondBackendError(c, "PRODUCT", err, "Failed to save product. Please try again.")
			return
		}

		respondRedirect(c, "/seller/dashboard")
	}
}

// DeleteProduct requires the same explicit confirmation as seller-account
// deletion; destructive actions are gated consistently.
func DeleteProduct(products *api.ProductService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "PRODUCT")

		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var req confirmRequest
		if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
			c.JSON(http.StatusBadRequest, gin.H{"state": "error", "error": "confirmation required"})
			return
		}

		key := fmt.Sprintf("product-delete:%d", id)
		if !acquireSubmit(c, guard, key) {
			return
		}
		defer guard.Release(key)

		if err := products.Delete(c.Request.Context(), id); err != nil {
			respondBackendError(c, "PRODUCT", err, "Failed to delete product. Please try again.")
			return
		}

		log.Println("[PRODUCT] [INFO] product deleted:", id)
		respondRedirect(c, "/seller/dashboard")
	}
}

type stockForm struct {
	Quantity string `json:"quantity"`
}

// SetStock updates the inventory record for one product.
func SetStock(inventory *api.InventoryService, guard *forms.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "INVENTORY")

		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var form stockForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondValidationError(c, err)
			return
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(form.Quantity))
		if err != nil || quantity < 0 {
			respondFieldErrors(c, map[string]string{"quantity": "quantity must be a non-negative number"})
			return
		}

		key := fmt.Sprintf("stock:%d", id)
		if !acquireSubmit(c, guard, key) {
			return
		}
		defer guard.Release(key)

		updated, err := inventory.SetStock(c.Request.Context(), api.CreateInventory{
			ProductID:         id,
			QuantityAvailable: quantity,
		})
		if err != nil {
			respondBackendError(c, "INVENTORY", err, "Failed to update stock. Please try again.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"state": "ok", "stock": updated.QuantityAvailable, "redirect": "/seller/dashboard"})
	}
}
