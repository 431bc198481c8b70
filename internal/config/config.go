package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cyberowl/owl-tts/internal/core/timewords"
	"github.com/cyberowl/owl-tts/internal/core/tts"
)

type Config struct {
	Host      string
	Port      string
	LogLevel  string
	LogFormat string
	LogFile   string
	DocRoot   string

	Engine           string
	UseModelManager  bool
	ModelURL         string
	ModelPath        string
	RunnerPath       string
	Speaker          string
	SampleRate       int
	SoundEnabled     bool
	SoundDevice      string
	CacheSize        int
	RedisAddr        string
	CacheTTL         time.Duration
	AnnounceInterval time.Duration
	AnnounceStyle    string
	RateLimitRPS     float64
	RateLimitBurst   int

	GeminiAPIKey string
	GeminiModel  string
	GeminiVoice  string
}

func Load() Config {
	return Config{
		Host:      getenv("TTS_HOST", "0.0.0.0"),
		Port:      getenv("TTS_PORT", "8080"),
		LogLevel:  getenv("TTS_LOG_LEVEL", "info"),
		LogFormat: getenv("TTS_LOG_FORMAT", "json"),
		LogFile:   getenv("TTS_LOG_FILE", ""),
		DocRoot:   getenv("TTS_DOC_ROOT", "./content"),

		Engine:           getenv("TTS_ENGINE", "local"),
		UseModelManager:  getbool("TTS_USE_MODEL_MANAGER", false),
		ModelURL:         getenv("TTS_MODEL_URL", "https://models.silero.ai/models/tts/ru/v4_ru.pt"),
		ModelPath:        getenv("TTS_MODEL_PATH", "./models/silero_model_ru.pt"),
		RunnerPath:       getenv("TTS_RUNNER", "./bin/silero-runner"),
		Speaker:          getenv("TTS_SPEAKER", "kseniya"),
		SampleRate:       getint("TTS_SAMPLE_RATE", 48000),
		SoundEnabled:     getbool("TTS_SOUND_ENABLED", true),
		SoundDevice:      getenv("TTS_SOUND_DEVICE_NAME", ""),
		CacheSize:        getint("TTS_CACHE_SIZE", 128),
		RedisAddr:        getenv("TTS_REDIS_ADDR", ""),
		CacheTTL:         getduration("TTS_CACHE_TTL", 24*time.Hour),
		AnnounceInterval: getduration("TTS_ANNOUNCE_INTERVAL", 0),
		AnnounceStyle:    getenv("TTS_ANNOUNCE_STYLE", "spoken"),
		RateLimitRPS:     getfloat("TTS_RATE_LIMIT_RPS", 2),
		RateLimitBurst:   getint("TTS_RATE_LIMIT_BURST", 5),

		GeminiAPIKey: getenv("GEMINI_API_KEY", ""),
		GeminiModel:  getenv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		GeminiVoice:  getenv("GEMINI_VOICE", "Kore"),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("TTS_PORT: invalid port %q", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("TTS_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("TTS_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	switch c.Engine {
	case "local":
		if c.ModelPath == "" || c.RunnerPath == "" {
			return fmt.Errorf("TTS_MODEL_PATH and TTS_RUNNER are required for the local engine")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini engine")
		}
	default:
		return fmt.Errorf("TTS_ENGINE: unknown engine %q", c.Engine)
	}
	if _, err := tts.ParseSpeaker(c.Speaker, tts.SpeakerKseniya); err != nil {
		return fmt.Errorf("TTS_SPEAKER: %w", err)
	}
	if _, err := timewords.ParseStyle(c.AnnounceStyle); err != nil {
		return fmt.Errorf("TTS_ANNOUNCE_STYLE: %w", err)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("TTS_SAMPLE_RATE: must be positive, got %d", c.SampleRate)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("TTS_CACHE_SIZE: must not be negative, got %d", c.CacheSize)
	}
	if c.AnnounceInterval < 0 {
		return fmt.Errorf("TTS_ANNOUNCE_INTERVAL: must not be negative")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("TTS_RATE_LIMIT_RPS and TTS_RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if n, err := strconv.Atoi(getenv(k, "")); err == nil {
		return n
	}
	return d
}

func getfloat(k string, d float64) float64 {
	if f, err := strconv.ParseFloat(getenv(k, ""), 64); err == nil {
		return f
	}
	return d
}

func getduration(k string, d time.Duration) time.Duration {
	if v, err := time.ParseDuration(getenv(k, "")); err == nil {
		return v
	}
	return d
}

func getbool(k string, d bool) bool {
	switch strings.ToLower(getenv(k, "")) {
	case "true", "1", "yes", "on", "enable":
		return true
	case "false", "0", "no", "off", "disable":
		return false
	}
	return d
}
