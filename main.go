package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"lazapee/internal/api"
	"lazapee/internal/config"
	"lazapee/internal/forms"
	"lazapee/internal/handlers"
	"lazapee/internal/seller"
	"lazapee/internal/session"
)

func main() {
	config.Load()

	store, err := session.Open(config.AppEnv.StateDir)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("[SESSION] [INFO] state dir:", config.AppEnv.StateDir)

	base := config.AppEnv.APIBaseURL
	timeout := config.AppEnv.RequestTimeout

	auth := api.NewAuthService(base, timeout, store)
	sellers := api.NewSellerService(base, timeout, store)
	products := api.NewProductService(base, timeout, store)
	inventory := api.NewInventoryService(base, timeout, store)

	resolver := seller.NewResolver(sellers)
	guard := forms.NewGuard()

	r := gin.Default()

	ui := r.Group("/ui")
	{
		ui.GET("/shell", handlers.Shell(store, resolver))

		ui.POST("/login", handlers.LogIn(store, auth, guard))
		ui.POST("/signup", handlers.SignUp(store, auth, guard))
		ui.POST("/logout", handlers.LogOut(store))

		ui.GET("/products", handlers.ProductList(products))
		ui.GET("/products/:id", handlers.ProductDetail(products, inventory))

		ui.GET("/seller/onboarding", handlers.Onboarding(store, resolver))
		ui.POST("/seller/onboarding", handlers.OnboardingSubmit(store, sellers, guard))
		ui.GET("/seller/profile", handlers.ProfileEdit(sellers))
		ui.PUT("/seller/profile", handlers.ProfileEditSubmit(sellers, guard))
		ui.GET("/seller/dashboard", handlers.Dashboard(sellers, products, inventory))
		ui.DELETE("/seller/account", handlers.DeleteAccount(store, sellers, guard))

		ui.POST("/seller/products", handlers.AddProduct(products, guard))
		ui.GET("/seller/products/:id", handlers.EditProduct(products))
		ui.PUT("/seller/products/:id", handlers.EditProductSubmit(products, guard))
		ui.DELETE("/seller/products/:id", handlers.DeleteProduct(products, guard))
		ui.POST("/seller/products/:id/stock", handlers.SetStock(inventory, guard))
	}

	log.Println("[APP] [INFO] backend base URL:", base)
	if err := r.Run(config.AppEnv.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
