package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/accounts"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/cart"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/catalog"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/middleware"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/orderfeed"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/orders"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/ratelim"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/*filepath", http.Dir("static"))
	router.GET("/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		http.ServeFile(w, r, "static/index.html")
	})
}

func AddProductRoutes(router *httprouter.Router, h *catalog.Handler) {
	router.GET("/api/products", h.GetProducts)
	router.GET("/api/products/:productid", h.GetProduct)
}

func AddAuthRoutes(router *httprouter.Router, h *accounts.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/register", rateLimiter.Limit(h.Register))
	router.POST("/api/login", rateLimiter.Limit(h.Login))
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.POST("/api/cart", middleware.OptionalAuth(h.AddToCart))
	router.GET("/api/cart", middleware.OptionalAuth(h.GetCart))
	router.PUT("/api/cart", middleware.OptionalAuth(h.UpdateCart))
	router.DELETE("/api/cart", middleware.OptionalAuth(h.RemoveFromCart))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler) {
	router.POST("/api/orders", middleware.OptionalAuth(h.PlaceOrder))
	router.GET("/api/orders", middleware.OptionalAuth(h.GetOrders))
	router.GET("/api/orders/:userid/:orderid/receipt", middleware.Authenticate(h.PrintReceipt))
}

func AddOrderFeedRoutes(router *httprouter.Router, hub *orderfeed.Hub) {
	router.GET("/ws/orders/:userid", orderfeed.WebSocketHandler(hub))
}
