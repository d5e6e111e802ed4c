package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tanam/catalog"
	"tanam/db"
	"tanam/estimate"
	"tanam/logger"
	"tanam/middleware"
	"tanam/rdx"
	"tanam/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Write([]byte("200"))
}

// Set up all routes and middleware layers
func setupRouter(cat *catalog.Catalog) http.Handler {
	router := httprouter.New()
	router.GET("/health", Index)

	est := &estimate.Estimator{Catalog: cat}

	routes.AddAuthRoutes(router)
	routes.AddCatalogRoutes(router, cat)
	routes.AddFarmerRoutes(router)
	routes.AddHarvestRoutes(router, est)
	routes.AddHomeRoutes(router, cat)
	routes.AddPlantingRoutes(router)
	routes.AddReminderRoutes(router)
	routes.AddStaticRoutes(router)
	routes.AddTipsRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return middleware.RecoverMiddleware(
		middleware.LoggingMiddleware(
			middleware.SecurityHeaders(c.Handler(router))))
}

func main() {
	logger.L = logger.Must(logger.New())
	defer logger.L.Sync()

	if err := godotenv.Load(); err != nil {
		logger.L.Warn("no .env file loaded", zap.Error(err))
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := db.Connect(ctx, mongoURI); err != nil {
		logger.L.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer func() {
		if err := db.Client.Disconnect(context.Background()); err != nil {
			logger.L.Error("mongodb disconnect failed", zap.Error(err))
		}
	}()

	if err := rdx.Connect(ctx); err != nil {
		logger.L.Fatal("redis connection failed", zap.Error(err))
	}

	cat := catalog.New()
	handler := setupRouter(cat)

	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		logger.L.Info("server started", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L.Fatal("listen failed", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	logger.L.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L.Fatal("server shutdown failed", zap.Error(err))
	}

	logger.L.Info("server stopped cleanly")
}
