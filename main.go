package main

import (
	"fmt"
	"log"
	"os"

	"cindrella-backend/config"
	"cindrella-backend/controllers"
	"cindrella-backend/routes"
	"cindrella-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectStore()

	// Seed the staff directory once, at startup
	directory := services.NewDirectory(config.Store)
	staff, err := directory.EnsureDefaults()
	if err != nil {
		log.Printf("Staff seeding failed: %v", err)
	} else {
		log.Printf("Staff directory ready (%d members)", len(staff))
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "./backups"
	}
	services.NewBackup(config.Store, backupDir).StartScheduler()

	controllers.Notifier = services.NewReceiptNotifier()
	if controllers.Notifier.Enabled() {
		log.Println("Receipt notifications enabled")
	}

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
