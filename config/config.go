package config

import "os"

// Config holds the process configuration, read once at startup.
type Config struct {
	Port            string
	LogLevel        string
	StaticDir       string
	TempDir         string
	CaptionLanguage string

	// OpenAI powers the summarization and QA adapters and the hosted Whisper
	// engine. An empty key leaves those models in the unavailable state.
	OpenAIAPIKey string
	OpenAIModel  string

	// Local whisper CLI transcription. An empty binary path disables the
	// local engine.
	WhisperBin   string
	WhisperModel string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StaticDir:       getEnv("STATIC_DIR", "./static"),
		TempDir:         getEnv("TEMP_DIR", os.TempDir()),
		CaptionLanguage: getEnv("CAPTION_LANGUAGE", "en"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		WhisperBin:      os.Getenv("WHISPER_BIN"),
		WhisperModel:    os.Getenv("WHISPER_MODEL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
