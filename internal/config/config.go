package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/miix-automations/website/internal/motion"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds the website configuration
type Config struct {
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:""`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// Public origin used in canonical links and structured data
	SiteURL string `env:"SITE_URL" envDefault:"http://localhost:4002"`
	Theme   string `env:"WEBSITE_THEME" envDefault:"miix-dark"`

	Motion MotionConfig

	ReadTimeout     time.Duration `env:"WEBSITE_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WEBSITE_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"WEBSITE_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// MotionConfig tunes the scroll reveal and parallax effects
type MotionConfig struct {
	RevealThreshold  float64       `env:"MOTION_REVEAL_THRESHOLD" envDefault:"0.2"`
	RevealRootMargin float64       `env:"MOTION_REVEAL_ROOT_MARGIN" envDefault:"0"`
	RevealStagger    time.Duration `env:"MOTION_REVEAL_STAGGER" envDefault:"120ms"`
	RevealBaseDelay  time.Duration `env:"MOTION_REVEAL_BASE_DELAY" envDefault:"0s"`

	ParallaxMaxOffset  float64 `env:"MOTION_PARALLAX_MAX_OFFSET" envDefault:"24"`
	ParallaxMinScale   float64 `env:"MOTION_PARALLAX_MIN_SCALE" envDefault:"0.95"`
	ParallaxMaxScale   float64 `env:"MOTION_PARALLAX_MAX_SCALE" envDefault:"1.05"`
	ParallaxMinOpacity float64 `env:"MOTION_PARALLAX_MIN_OPACITY" envDefault:"0.6"`
	ParallaxMaxOpacity float64 `env:"MOTION_PARALLAX_MAX_OPACITY" envDefault:"1"`

	// Coalesce scroll handling to one update per animation frame
	FrameThrottle bool `env:"MOTION_FRAME_THROTTLE" envDefault:"true"`
}

// Settings converts the configuration to motion settings
func (m MotionConfig) Settings() motion.Settings {
	return motion.Settings{
		Reveal: motion.RevealOptions{
			Threshold:  m.RevealThreshold,
			RootMargin: m.RevealRootMargin,
			Stagger:    m.RevealStagger,
			BaseDelay:  m.RevealBaseDelay,
		},
		Falloff: motion.Falloff{
			MaxOffset:  m.ParallaxMaxOffset,
			MinScale:   m.ParallaxMinScale,
			MaxScale:   m.ParallaxMaxScale,
			MinOpacity: m.ParallaxMinOpacity,
			MaxOpacity: m.ParallaxMaxOpacity,
		},
		FrameThrottle: m.FrameThrottle,
	}
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate checks the values env parsing cannot
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid WEBSITE_PORT %d", c.Port)
	}
	if c.SiteURL == "" {
		return fmt.Errorf("SITE_URL must not be empty")
	}
	if err := c.Motion.Settings().Validate(); err != nil {
		return fmt.Errorf("motion config: %w", err)
	}
	return nil
}

// LoadDotEnv loads .env.local and then .env from dir. Missing files are
// ignored. Variables already set in the process environment always win,
// and .env.local wins over .env.
func LoadDotEnv(dir string) {
	_ = godotenv.Load(dir + "/.env.local")
	_ = godotenv.Load(dir + "/.env")
}

// Parse reads the configuration from the environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig parses the configuration and logs a summary
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.String("site_url", cfg.SiteURL),
		slog.Float64("reveal_threshold", cfg.Motion.RevealThreshold),
		slog.Bool("frame_throttle", cfg.Motion.FrameThrottle),
	)

	return cfg, nil
}
