package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"excursion-booking/config"
	repository "excursion-booking/internal/database/jsonfile"
	"excursion-booking/internal/entity"
	"excursion-booking/internal/service"
	"excursion-booking/internal/transport"
	"excursion-booking/internal/worker"
	"excursion-booking/pkg/jsondb"
	"excursion-booking/pkg/redis"
	"excursion-booking/pkg/session"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize flat-file store
	store, err := jsondb.NewStore(&cfg.Storage)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(store)
	excursionRepo := repository.NewExcursionRepository(store)
	bookingRepo := repository.NewBookingRepository(store)

	if err := ensureAdminAccount(context.Background(), userRepo, &cfg.Auth); err != nil {
		logrus.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	// Sessions live in redis when configured, in memory otherwise.
	var sessions session.Store
	if cfg.Redis.Host != "" {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, cfg.Session.TTL)
		logrus.Info("Redis session store initialized")
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
		logrus.Info("In-memory session store initialized")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(excursionRepo)
	excursionService := service.NewExcursionService(excursionRepo)
	bookingService := service.NewBookingService(bookingRepo, excursionRepo)
	statsService := service.NewStatsService(userRepo, excursionRepo, bookingRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seat counter audit
	if cfg.Worker.AuditInterval > 0 {
		auditWorker := worker.NewSeatAuditWorker(excursionRepo, bookingRepo, cfg.Worker.AuditInterval, cfg.Worker.Repair)
		go auditWorker.Start(ctx)
	}

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService, sessions, cfg.Session)
	excursionHandler := transport.NewExcursionHandler(catalogService)
	bookingHandler := transport.NewBookingHandler(bookingService, authService)
	adminHandler := transport.NewAdminHandler(excursionService, bookingService, statsService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		routes := transport.InitRoutes(cfg, sessions, authHandler, excursionHandler, bookingHandler, adminHandler)
		if err := srv.Run(cfg, routes); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}

// ensureAdminAccount seeds the configured admin user once, when the user
// collection is still empty.
func ensureAdminAccount(ctx context.Context, userRepo repository.UserRepository, cfg *config.AuthConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logrus.Warn("Admin account not configured, skipping bootstrap")
		return nil
	}

	users, err := userRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    entity.Now(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logrus.Infof("Admin account created: %s", admin.Email)
	return nil
}
