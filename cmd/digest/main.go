package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"signalist/db"
	"signalist/internal/digest"
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

	runner := digest.NewBatchRunner(
		userRepo,
		userRepo,
		digest.NewBuilder(newsClient),
		digest.NewSummarizer(newInferencer()),
		digest.NewDispatcher(mailer),
	)

	res := runner.Run(context.Background())
	if !res.Success {
		slog.Error("daily news digest failed", "message", res.Message)
		os.Exit(1)
	}

	slog.Info("daily news digest complete", "message", res.Message)
}

func newInferencer() llm.Inferencer {
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	}
	return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}
