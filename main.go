// main.go
package main

import (
	"log"
	"time"

	"seva-booking/cmd"
	"seva-booking/internal/data/repository"
	"seva-booking/internal/scheduler"
	"seva-booking/internal/usecase"
	"seva-booking/internal/wire"
	"seva-booking/pkg/database"
	"seva-booking/pkg/mailer"
	"seva-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Reminder times are read on the Indian wall clock
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		logger.Fatal("Failed to load Asia/Kolkata location", zap.Error(err))
	}

	// Reminder mailer; without valid recipients the API still runs, only
	// the daily reminders are disabled
	var notifier usecase.Notifier
	reminderMailer, err := mailer.New(config.Email, config.Reminder.Recipients, logger)
	if err != nil {
		logger.Warn("Reminder mailer disabled", zap.Error(err))
	} else {
		notifier = reminderMailer
	}

	// Wire services and router
	service := usecase.NewService(repos, notifier, kolkata, logger)
	app := wire.Wiring(service, logger)

	// Daily reminder schedule
	if notifier != nil {
		sched := scheduler.New(kolkata, logger)
		if err := sched.AddJob(config.Reminder.Cron, service.Reminder.Run); err != nil {
			logger.Fatal("Invalid reminder cron spec",
				zap.String("spec", config.Reminder.Cron), zap.Error(err))
		}
		sched.Start()
		defer sched.Stop()

		logger.Info("Daily reminder scheduled",
			zap.String("cron", config.Reminder.Cron),
			zap.String("timezone", "Asia/Kolkata"),
		)
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
