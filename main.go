// main.go
package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"go-storefront/config"
	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/repository"
	"go-storefront/routes"
	"go-storefront/store"
	"go-storefront/utils"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Proceeding with environment variables.")
	}
	cfg := config.Load()

	fileStore, err := store.NewFileStore(cfg.DataDir, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open data directory")
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.WithError(err).Fatal("failed to create uploads directory")
	}

	// Initialize repositories
	users := repository.NewUsers(fileStore)
	products := repository.NewProducts(fileStore)
	orders := repository.NewOrders(fileStore)

	// First boot: write the starter catalog and empty collection files
	seeded, err := products.EnsureSeeded()
	if err != nil {
		log.WithError(err).Fatal("failed to seed product catalog")
	}
	if seeded {
		log.Info("Seeded starter product catalog")
	}
	if err := users.EnsureInitialized(); err != nil {
		log.WithError(err).Fatal("failed to initialize users collection")
	}
	if err := orders.EnsureInitialized(); err != nil {
		log.WithError(err).Fatal("failed to initialize orders collection")
	}

	// Email notifications are optional; without an API key sends are no-ops
	emailService := utils.NewEmailService(cfg.SendGridAPIKey, cfg.EmailSender)

	// Initialize controllers
	userController := controllers.NewUserController(users, log)
	productController := controllers.NewProductController(products, cfg.UploadsDir, log)
	orderController := controllers.NewOrderController(orders, users, emailService, log)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(log))
	routes.RegisterRoutes(router, userController, productController, orderController)

	// Uploaded product images are served back from the uploads directory
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.Fail(w, http.StatusNotFound, "Not found")
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	log.Infof("Server is running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
