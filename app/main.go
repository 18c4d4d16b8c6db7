package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bloglistapp/bloglist/internal/auditservice"
	"github.com/bloglistapp/bloglist/internal/blogservice"
	"github.com/bloglistapp/bloglist/internal/common"
	"github.com/bloglistapp/bloglist/internal/userservice"
)

type application struct {
	config       *Config
	logger       *slog.Logger
	userService  *userservice.UserService
	blogService  *blogservice.BlogService
	auditService *auditservice.AuditService
	broker       *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DBURI, cfg.DBName, 10*time.Second)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.MQUser, cfg.MQPassword, cfg.MQHost, cfg.MQPort)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	err = common.SetupEventExchange(broker)
	if err != nil {
		logger.Error("failed to setup the event exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	app := &application{
		config:       cfg,
		logger:       logger,
		userService:  userservice.NewUserService(db, broker, cache, []byte(cfg.TokenSecret)),
		blogService:  blogservice.NewBlogService(db, broker),
		auditService: auditservice.NewAuditService(broker, logger),
		broker:       broker,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = app.userService.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		logger.Error("failed to create indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app.auditService.Run()
	defer app.auditService.Close()

	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
