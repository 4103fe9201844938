package main

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	youtube "github.com/kkdai/youtube/v2"
	openai "github.com/sashabaranov/go-openai"

	"tubesummary/config"
	"tubesummary/handlers"
	"tubesummary/internal/audio"
	"tubesummary/internal/captions"
	"tubesummary/internal/qa"
	"tubesummary/internal/stt"
	"tubesummary/internal/stt/localwhisper"
	"tubesummary/internal/stt/openaiwhisper"
	"tubesummary/internal/summarize"
	"tubesummary/internal/transcript"
	"tubesummary/middleware"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)
	log := config.Log

	// Model clients are created once at startup and shared read-only across
	// requests. A model that fails to load is logged and left unavailable;
	// requests that need it fail with a descriptive error instead of crashing.
	var openaiClient *openai.Client
	if cfg.OpenAIAPIKey != "" {
		openaiClient = openai.NewClient(cfg.OpenAIAPIKey)
		log.Info("OpenAI client initialized")
	} else {
		log.Warn("OPENAI_API_KEY not set; summarization, QA and hosted transcription are unavailable")
	}

	engines := stt.NewRegistry()
	if cfg.WhisperBin != "" {
		engine, err := localwhisper.New(localwhisper.Config{
			BinaryPath: cfg.WhisperBin,
			ModelPath:  cfg.WhisperModel,
		})
		if err != nil {
			log.WithError(err).Error("Local whisper engine failed to load")
		} else {
			engines.Register(engine.Name(), engine)
			log.WithField("engine", engine.Name()).Info("Speech-to-text engine registered")
		}
	}
	if openaiClient != nil {
		engine := openaiwhisper.New(openaiClient)
		engines.Register(engine.Name(), engine)
		if _, ok := engines.Get("local_whisper"); ok {
			engines.SetFallback(engine.Name())
		}
		log.WithField("engine", engine.Name()).Info("Speech-to-text engine registered")
	}

	ytClient := &youtube.Client{HTTPClient: http.DefaultClient}
	captionService := captions.NewService(ytClient, http.DefaultClient, cfg.CaptionLanguage)
	audioDownloader := audio.NewDownloader(ytClient, cfg.TempDir)
	acquirer := transcript.NewAcquirer(captionService, audioDownloader, engines, log)

	summarizer := summarize.New(openaiClient, cfg.OpenAIModel)
	answerer := qa.New(openaiClient, cfg.OpenAIModel)

	h := handlers.NewApplicationHandler(acquirer, summarizer, answerer, log)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Transcript summarizer is healthy",
		})
	})

	app.Post("/process_video", h.ProcessVideo)

	// Landing page for the bundled front end.
	app.Static("/", cfg.StaticDir)

	log.WithField("port", cfg.Port).Info("Starting transcript summarizer")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
