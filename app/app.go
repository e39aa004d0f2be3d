package app

import (
	"fmt"
	"os"

	"monkey-boards/app/controller"
	"monkey-boards/app/router"
	"monkey-boards/planner"
	"monkey-boards/repository"
	"monkey-boards/service"
)

// Initialize initializes the application
func Initialize() error {
	// Get credentials path from environment variable
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}

	// Initialize Sheets service (order log)
	sheetsService, err := service.NewSheetsService(credentialsPath)
	if err != nil {
		return err
	}

	// Initialize snapshot renderer
	snapshotService, err := service.NewSnapshotService()
	if err != nil {
		return err
	}

	// Initialize planner session store
	sessionRepo := repository.NewSessionRepository()

	// Create controllers
	controllers := &router.Controllers{
		Order:   controller.NewOrderController(sheetsService),
		Catalog: controller.NewCatalogController(),
		Pricing: controller.NewPricingController(),
		Planner: controller.NewPlannerController(sessionRepo, planner.NewIDGenerator(), snapshotService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
