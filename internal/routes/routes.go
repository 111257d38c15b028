package routes

import (
	"orvela_back_end/internal/config"
	"orvela_back_end/internal/handlers"
	"orvela_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.RequestLogger())

	// ✅ Whitelist CORS injectée depuis la configuration
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "auth-token"},
		AllowCredentials: true,
	}
	origins := config.AllowedOrigins()
	if len(origins) == 1 && origins[0] == "*" {
		// le mode wildcard est incompatible avec les credentials
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/", handlers.Health)

	// Catalogue
	r.POST("/addproduct", handlers.AddProduct)
	r.POST("/removeproduct", handlers.RemoveProduct)
	r.GET("/allproducts", handlers.AllProducts)
	r.GET("/newcollections", handlers.NewCollections)
	r.GET("/popularinwomen", handlers.PopularInWomen)
	r.GET("/searchproducts", handlers.SearchProducts)

	// Images
	r.POST("/upload", handlers.Upload)
	r.GET("/images/:filename", handlers.ServeImage)

	// Comptes
	r.POST("/signup", handlers.Signup)
	r.POST("/login", handlers.Login)

	// Panier (routes protégées par le token auth-token)
	authRequired := middleware.FetchUser()
	r.POST("/addtocart", authRequired, handlers.AddToCart)
	r.POST("/removefromcart", authRequired, handlers.RemoveFromCart)
	r.POST("/getcart", authRequired, handlers.GetCart)
}
