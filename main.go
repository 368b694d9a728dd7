package main

import (
	"net/http"

	"civicreport-be/config"
	"civicreport-be/controllers"
	"civicreport-be/data"
	"civicreport-be/logger"
	"civicreport-be/middlewares"
	"civicreport-be/notify"
	"civicreport-be/routes"
	"civicreport-be/session"
	"civicreport-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	dotenvErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.AppEnv)
	if dotenvErr != nil {
		log.Info().Msg("no .env file found")
	}

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	departments := store.NewDepartmentStore(data.Departments())
	issues := store.NewIssueStore(departments)
	users := store.NewUserStore()

	feed := notify.NewFeed()
	issues.Subscribe(feed.HandleEvent)

	if cfg.SeedDemoData {
		if err := data.SeedDemo(issues, users); err != nil {
			log.Fatal().Err(err).Msg("seeding demo data")
		}
		log.Info().Msg("demo data seeded")
	}

	issueSession := session.New(issues, cfg.SimulatedLatency)
	controllers.Setup(issueSession, departments, users, feed)
	controllers.RegisterValidations()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	var createGuards []gin.HandlerFunc
	if cfg.RedisAddr != "" {
		if err := config.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			log.Fatal().Err(err).Msg("connecting to Redis")
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")
		createGuards = append(createGuards, middlewares.IssueRateLimiter(cfg.IssueLimitQueue, cfg.IssueDailyLimit))
	} else {
		log.Warn().Msg("REDIS_ADDRESS not set, issue rate limiting disabled")
	}

	routes.AuthRoutes(r)
	routes.IssueRoutes(r, createGuards...)
	routes.DepartmentRoutes(r)
	routes.AnalyticsRoutes(r)
	routes.NotificationRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting server")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
