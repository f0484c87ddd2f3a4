package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host            string
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	AIConfig struct {
		Enabled bool
		BaseURL string
		APIKey  string
		Timeout time.Duration
	}

	NotificationConfig struct {
		Enabled      bool
		Icon         string
		Badge        string
		ReplyTimeout time.Duration
	}

	PWAConfig struct {
		Enabled      bool
		CacheVersion int
	}

	Config struct {
		Debug            bool
		TestMode         bool
		Env              string
		Build            string
		AppName          string
		WorkDir          string
		FrontendBaseURL  string
		DefaultFromEmail mail.Address
		SendgridApiKey   string
		RollbarToken     string
		Server           ServerConfig
		AI               AIConfig
		Notification     NotificationConfig
		PWA              PWAConfig
	}
)

// NewConfig loads the app configuration from the environment;
// an optional `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "EduHub")
	conf.SetDefault("build", "dev")
	conf.SetDefault("frontendBaseURL", "http://localhost:3000")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("enableAIAssistant", true)
	conf.SetDefault("aiBaseURL", "http://localhost:9000/api")
	conf.SetDefault("aiTimeoutMS", 10000)
	conf.SetDefault("enableNotifications", true)
	conf.SetDefault("notificationIcon", "/pwa-192x192.png")
	conf.SetDefault("notificationBadge", "/pwa-192x192.png")
	conf.SetDefault("notificationReplyTimeoutMS", 5000)
	conf.SetDefault("enablePWA", true)
	conf.SetDefault("cacheVersion", 1)

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	wd := Getwd()
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		Env:              env,
		Build:            conf.GetString("build"),
		AppName:          conf.GetString("appName"),
		WorkDir:          wd,
		FrontendBaseURL:  conf.GetString("frontendBaseURL"),
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Addr:            conf.GetString("serverAddr"),
			DebugAddr:       conf.GetString("serverDebugAddr"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		AI: AIConfig{
			Enabled: conf.GetBool("enableAIAssistant"),
			BaseURL: strings.TrimRight(conf.GetString("aiBaseURL"), "/"),
			APIKey:  conf.GetString("aiApiKey"),
			Timeout: time.Duration(conf.GetInt("aiTimeoutMS")) * time.Millisecond,
		},
		Notification: NotificationConfig{
			Enabled:      conf.GetBool("enableNotifications"),
			Icon:         conf.GetString("notificationIcon"),
			Badge:        conf.GetString("notificationBadge"),
			ReplyTimeout: time.Duration(conf.GetInt("notificationReplyTimeoutMS")) * time.Millisecond,
		},
		PWA: PWAConfig{
			Enabled:      conf.GetBool("enablePWA"),
			CacheVersion: conf.GetInt("cacheVersion"),
		},
	}
}
