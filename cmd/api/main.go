package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"signalist/db"
	"signalist/internal/digest"
	"signalist/internal/handler"
	"signalist/internal/repository"
	"signalist/pkg/llm"
	"signalist/pkg/mail"
	"signalist/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var cache news.Cache
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		cache = news.NewRedisCache(db.Redis)
	} else {
		slog.Warn("REDIS_URL not set, provider cache disabled")
	}

	newsClient, err := news.NewFinnhubClient(os.Getenv("FINNHUB_API_KEY"), cache, news.Config{})
	if err != nil {
		log.Fatalf("error creating news client: %v", err)
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	mailer, err := mail.NewMailer(mail.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("MAIL_FROM"),
	})
	if err != nil {
		log.Fatalf("error creating mailer: %v", err)
	}

	userRepo := repository.NewUserRepository(db.DB)
	inferencer := newInferencer()
	builder := digest.NewBuilder(newsClient)

	batchRunner := digest.NewBatchRunner(
		userRepo,
		userRepo,
		builder,
		digest.NewSummarizer(inferencer),
		digest.NewDispatcher(mailer),
	)
	welcomeRunner := digest.NewWelcomeRunner(inferencer, mailer)

	jobHandler := handler.NewJobHandler(batchRunner, welcomeRunner, userRepo)
	newsHandler := handler.NewNewsHandler(builder, newsClient)
	watchlistHandler := handler.NewWatchlistHandler(userRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/jobs/daily-news", jobHandler.RunDailyNews)
	r.POST("/jobs/welcome", jobHandler.SendWelcome)
	r.GET("/news", newsHandler.GetNews)
	r.GET("/search", newsHandler.SearchStocks)
	r.GET("/quote/:symbol", newsHandler.GetQuote)
	r.GET("/watchlist", watchlistHandler.GetWatchlist)
	r.POST("/watchlist", watchlistHandler.AddSymbol)
	r.DELETE("/watchlist", watchlistHandler.RemoveSymbol)
	r.GET("/health", jobHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newInferencer() llm.Inferencer {
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	}
	return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}
