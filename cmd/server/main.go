package main

import (
	"fmt"
	"log"
	"os"

	"hr-portal/internal/config"
	"hr-portal/internal/database"
	"hr-portal/internal/server"
	"hr-portal/internal/service"
)

func main() {
	cfg := config.Load()

	db := database.Init(cfg.DBDriver, cfg.DBDSN, database.SeedOptions{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	defer database.Close(db)

	if err := os.MkdirAll(cfg.UploadDir, 0o750); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}
	if cfg.DemoLogin {
		log.Printf("demo login enabled: seeded demo accounts accept any password")
	}

	svc := service.New(db, service.Options{
		DemoLogin:       cfg.DemoLogin,
		BulkConcurrency: cfg.BulkConcurrency,
	})
	r := server.NewRouter(cfg, svc)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
