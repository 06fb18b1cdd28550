package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/accounts"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/cart"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/catalog"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/orderfeed"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/orders"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/ratelim"
	"github.com/kiruthika18-a/codealpha-E-commerce-store/routes"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// setupRouter builds the router over the stores constructed in main. All
// state lives in those stores; nothing here is a package-level variable.
func setupRouter(
	catalogHandler *catalog.Handler,
	accountsHandler *accounts.Handler,
	cartHandler *cart.Handler,
	ordersHandler *orders.Handler,
	hub *orderfeed.Hub,
	rateLimiter *ratelim.RateLimiter,
) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddProductRoutes(router, catalogHandler)
	routes.AddAuthRoutes(router, accountsHandler, rateLimiter)
	routes.AddCartRoutes(router, cartHandler)
	routes.AddOrderRoutes(router, ordersHandler)
	routes.AddOrderFeedRoutes(router, hub)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":3000"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// stores: catalog is immutable, carts and orders share one lock so
	// that order placement is atomic against every other operation
	productCatalog := catalog.New()
	directory := accounts.NewDirectory()

	var storeMu sync.RWMutex
	cartStore := cart.NewStore(productCatalog, &storeMu)
	ledger := orders.NewLedger(cartStore, productCatalog, &storeMu)

	// order feed hub
	hub := orderfeed.NewHub()
	go hub.Run()

	rateLimiter := ratelim.NewRateLimiter()

	router := setupRouter(
		catalog.NewHandler(productCatalog),
		accounts.NewHandler(directory),
		cart.NewHandler(cartStore),
		orders.NewHandler(ledger, hub),
		hub,
		rateLimiter,
	)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// on shutdown: stop the order feed hub
	server.RegisterOnShutdown(func() {
		log.Println("Shutting down order feed hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
