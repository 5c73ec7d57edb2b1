package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/TheQuantumSilver/ReceiptVakaGen/config"
	"github.com/TheQuantumSilver/ReceiptVakaGen/db"
	"github.com/TheQuantumSilver/ReceiptVakaGen/mailer"
	"github.com/TheQuantumSilver/ReceiptVakaGen/route"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := config.NewLogger(cfg.Environment)
	defer logger.Sync()

	gormDB, sqlDB, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("connected to PostgreSQL")

	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	app := config.NewApp()
	route.SetupRoutes(app, cfg, gormDB, sqlDB, sender, logger)

	logger.Info("server listening", zap.String("port", cfg.AppPort))
	log.Fatal(app.Listen(":" + cfg.AppPort))
}
