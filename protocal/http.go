package protocal

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bookshelf/configs"
	httpAdapter "bookshelf/internal/adapters/input/http"
	"bookshelf/internal/adapters/output/memory"
	"bookshelf/internal/adapters/output/postgres"
	redisAdapter "bookshelf/internal/adapters/output/redis"
	"bookshelf/internal/application"
	"bookshelf/internal/ports/output"
	"bookshelf/pkg/database_driver/gorm"
	"bookshelf/pkg/database_driver/redis"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// Default values applied when the config leaves a setting at zero
const (
	defaultStoreTimeout = 3 * time.Second
	defaultCookieMaxAge = 100
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()

	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	initLogger(conf.App)
	logrus.Info(conf.App.Env)

	timeout := time.Duration(conf.Store.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	maxAge := conf.Session.MaxAge
	if maxAge <= 0 {
		maxAge = defaultCookieMaxAge
	}

	// Output adapter (document store), shared by every request
	store, closeStore, err := openDocumentStore(conf, timeout)
	if err != nil {
		return err
	}

	if conf.Catalog.SeedDir != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err := application.NewCatalogSeeder(store).Seed(ctx, conf.Catalog.SeedDir)
		cancel()
		if err != nil {
			logrus.Errorf("Failed to seed catalog: %v", err)
		}
	}

	// Application services (use cases)
	catalog := application.NewCatalog(store)
	tracker := application.NewSessionTracker(store)
	recommender := application.NewRecommendationService(catalog, tracker)
	bookSrv := application.NewBookService(store, catalog, tracker, recommender)
	searchSrv := application.NewSearchService(catalog)

	// Input adapter (HTTP handler)
	hdl, err := httpAdapter.New(bookSrv, searchSrv, bookSrv, httpAdapter.SessionCookie{
		Name:   conf.Session.CookieName,
		MaxAge: maxAge,
	})
	if err != nil {
		closeStore()
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:      "bookshelf",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logrus.Println("Gracefull shut down ...")
		if err := app.Shutdown(); err != nil {
			logrus.Println("Error when shutdown server: ", err)
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	hdl.Register(app)

	logrus.Println("Listening on port: ", conf.App.Port)
	err = app.Listen(":" + conf.App.Port)
	closeStore()
	return err
}

func initLogger(conf configs.App) {
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if conf.Debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	if conf.Env != "local" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// openDocumentStore connects the backend named by store.driver and returns
// a func releasing its connections
func openDocumentStore(conf *configs.Config, timeout time.Duration) (output.DocumentStore, func(), error) {
	switch strings.ToLower(conf.Store.Driver) {
	case "", "redis":
		client, err := redis.ConnectToRedis(conf.Redis.Host, conf.Redis.Port, conf.Redis.Password, conf.Redis.DB, timeout)
		if err != nil {
			return nil, nil, err
		}
		historyTTL := time.Duration(conf.Session.HistoryTTL) * time.Second
		store := redisAdapter.NewRedisDocumentStore(client, timeout, historyTTL)
		return store, func() { redis.DisconnectRedis(client) }, nil
	case "postgres":
		db, err := gorm.ConnectToPostgreSQL(
			conf.Postgres.Host,
			conf.Postgres.Port,
			conf.Postgres.Username,
			conf.Postgres.Password,
			conf.Postgres.DbName,
			conf.Postgres.SSLMode,
			timeout,
		)
		if err != nil {
			return nil, nil, err
		}
		store, err := postgres.NewDocumentStore(db, timeout)
		if err != nil {
			gorm.DisconnectPostgres(db)
			return nil, nil, err
		}
		return store, func() { gorm.DisconnectPostgres(db) }, nil
	case "memory":
		logrus.Warn("Using in-memory document store; data is lost on restart")
		return memory.NewMemoryDocumentStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", conf.Store.Driver)
	}
}
