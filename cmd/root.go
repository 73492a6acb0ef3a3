package cmd

import (
	"time"

	"github.com/AzielCF/az-photofeed/core/config"
	"github.com/AzielCF/az-photofeed/core/database"
	domainAuth "github.com/AzielCF/az-photofeed/domains/auth"
	domainFeed "github.com/AzielCF/az-photofeed/domains/feed"
	domainHealth "github.com/AzielCF/az-photofeed/domains/health"
	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	"github.com/AzielCF/az-photofeed/infrastructure/flickr"
	"github.com/AzielCF/az-photofeed/infrastructure/valkey"
	"github.com/AzielCF/az-photofeed/pkg/security"
	"github.com/AzielCF/az-photofeed/pkg/utils"
	"github.com/AzielCF/az-photofeed/repository"
	"github.com/AzielCF/az-photofeed/usecase"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	db       *gorm.DB
	vkClient *valkey.Client

	userRepo domainUser.IUserRepository

	authUsecase   domainAuth.IAuthUsecase
	userUsecase   domainUser.IUserUsecase
	feedUsecase   domainFeed.IFeedUsecase
	healthUsecase domainHealth.IHealthUsecase
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "az-photofeed",
	Short: "Photo feed API with cached Flickr aggregation",
	Long: `User management backend with JWT authentication and a cache-backed
proxy over the Flickr photo API.`,
}

func init() {
	utils.LoadConfig(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	cobra.OnInitialize(initApp)
}

func initApp() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("[INIT] failed to load configuration: %v", err)
	}

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	security.SetSecretKey(cfg.Security.JWTSecret)

	db, err = database.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("[INIT] failed to open database: %v", err)
	}

	vkClient, err = valkey.NewClient(valkey.Config{
		Address:   cfg.Database.ValkeyAddress,
		Password:  cfg.Database.ValkeyPassword,
		DB:        cfg.Database.ValkeyDB,
		KeyPrefix: cfg.Database.ValkeyKeyPrefix,
	})
	if err != nil {
		logrus.Fatalf("[INIT] failed to connect to valkey: %v", err)
	}

	userRepo = repository.NewGormUserRepository(db)
	historyRepo := repository.NewGormHistoryRepository(db)
	feedCache := repository.NewValkeyFeedCache(vkClient)
	flickrClient := flickr.NewClient(cfg.Flickr)

	authUsecase = usecase.NewAuthService(userRepo)
	userUsecase = usecase.NewUserService(userRepo)
	feedUsecase = usecase.NewFeedService(feedCache, flickrClient, historyRepo, cfg.Flickr.FeedTTL, cfg.Flickr.PhotoTTL)
	healthUsecase = usecase.NewHealthService(db, vkClient, cfg.App.Version)
}

// StopApp releases the shared database and cache handles.
func StopApp() {
	if vkClient != nil {
		vkClient.Close()
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logrus.Errorf("[SHUTDOWN] error closing database: %v", err)
			}
		}
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalln(err)
	}
}
