package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/memora-labs/memora/internal/adaptive"
	"github.com/memora-labs/memora/internal/mastery"
	"github.com/memora-labs/memora/internal/spacedrep"
)

// Config holds all engine tuning. The zero value is not usable; start
// from DefaultConfig and override via file or environment.
type Config struct {
	Mastery  mastery.Params
	Schedule spacedrep.Policy
	Trigger  adaptive.Config

	// RegenQueueSize bounds the async regeneration backlog.
	RegenQueueSize int
	// RegenTimeout limits a single regeneration call.
	RegenTimeout time.Duration
	// StoreTimeout limits one full submission transaction.
	StoreTimeout time.Duration
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Mastery:        mastery.DefaultParams(),
		Schedule:       spacedrep.DefaultPolicy(),
		Trigger:        adaptive.DefaultConfig(),
		RegenQueueSize: adaptive.DefaultQueueSize,
		RegenTimeout:   30 * time.Second,
		StoreTimeout:   5 * time.Second,
	}
}

// fileConfig is the on-disk shape. All sections and fields are optional;
// absent values keep their defaults.
type fileConfig struct {
	Mastery *struct {
		DecayBase            *float64 `json:"decay_base"`
		SlowFactor           *float64 `json:"slow_factor"`
		SlowCredit           *float64 `json:"slow_credit"`
		NeedsReviewThreshold *float64 `json:"needs_review_threshold"`
	} `json:"mastery"`
	Schedule *struct {
		StrongThreshold   *float64 `json:"strong_threshold"`
		PartialThreshold  *float64 `json:"partial_threshold"`
		StrongMultiplier  *float64 `json:"strong_multiplier"`
		PartialMultiplier *float64 `json:"partial_multiplier"`
		WeakMultiplier    *float64 `json:"weak_multiplier"`
		InitialDays       *int     `json:"initial_days"`
		MaxDays           *int     `json:"max_days"`
	} `json:"schedule"`
	Trigger *struct {
		Period        *int     `json:"period"`
		WeakThreshold *float64 `json:"weak_threshold"`
	} `json:"trigger"`
	Regen *struct {
		QueueSize   *int `json:"queue_size"`
		TimeoutSecs *int `json:"timeout_secs"`
	} `json:"regen"`
	StoreTimeoutSecs *int `json:"store_timeout_secs"`
}

// LoadFile reads a JSON config file, validates it against the embedded
// schema and applies it over the defaults.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := validateConfig(raw); err != nil {
		return Config{}, err
	}

	var fc fileConfig
	if err := json.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	fc.apply(&cfg)
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) {
	if m := fc.Mastery; m != nil {
		setF(&cfg.Mastery.DecayBase, m.DecayBase)
		setF(&cfg.Mastery.SlowFactor, m.SlowFactor)
		setF(&cfg.Mastery.SlowCredit, m.SlowCredit)
		setF(&cfg.Mastery.NeedsReviewThreshold, m.NeedsReviewThreshold)
	}
	if s := fc.Schedule; s != nil {
		setF(&cfg.Schedule.StrongThreshold, s.StrongThreshold)
		setF(&cfg.Schedule.PartialThreshold, s.PartialThreshold)
		setF(&cfg.Schedule.StrongMultiplier, s.StrongMultiplier)
		setF(&cfg.Schedule.PartialMultiplier, s.PartialMultiplier)
		setF(&cfg.Schedule.WeakMultiplier, s.WeakMultiplier)
		setI(&cfg.Schedule.InitialDays, s.InitialDays)
		setI(&cfg.Schedule.MaxDays, s.MaxDays)
	}
	if t := fc.Trigger; t != nil {
		setI(&cfg.Trigger.Period, t.Period)
		setF(&cfg.Trigger.WeakThreshold, t.WeakThreshold)
	}
	if r := fc.Regen; r != nil {
		setI(&cfg.RegenQueueSize, r.QueueSize)
		if r.TimeoutSecs != nil {
			cfg.RegenTimeout = time.Duration(*r.TimeoutSecs) * time.Second
		}
	}
	if fc.StoreTimeoutSecs != nil {
		cfg.StoreTimeout = time.Duration(*fc.StoreTimeoutSecs) * time.Second
	}
}

func setF(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setI(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// ApplyEnv overrides selected fields from MEMORA_* environment
// variables, falling back to the existing values when unset or
// malformed.
func (c Config) ApplyEnv() Config {
	if v, ok := envInt("MEMORA_TRIGGER_PERIOD"); ok {
		c.Trigger.Period = v
	}
	if v, ok := envFloat("MEMORA_WEAK_THRESHOLD"); ok {
		c.Trigger.WeakThreshold = v
		c.Mastery.NeedsReviewThreshold = v
	}
	if v, ok := envInt("MEMORA_MAX_INTERVAL_DAYS"); ok {
		c.Schedule.MaxDays = v
	}
	if v, ok := envInt("MEMORA_REGEN_QUEUE_SIZE"); ok {
		c.RegenQueueSize = v
	}
	if v, ok := envInt("MEMORA_REGEN_TIMEOUT_SECS"); ok {
		c.RegenTimeout = time.Duration(v) * time.Second
	}
	if v, ok := envInt("MEMORA_STORE_TIMEOUT_SECS"); ok {
		c.StoreTimeout = time.Duration(v) * time.Second
	}
	return c
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate checks cross-field consistency the JSON schema cannot
// express.
func (c Config) Validate() error {
	if c.Schedule.PartialThreshold >= c.Schedule.StrongThreshold {
		return fmt.Errorf("schedule partial_threshold %.2f must be below strong_threshold %.2f",
			c.Schedule.PartialThreshold, c.Schedule.StrongThreshold)
	}
	if c.Schedule.InitialDays < 1 {
		return fmt.Errorf("schedule initial_days must be at least 1")
	}
	if c.Schedule.MaxDays < c.Schedule.InitialDays {
		return fmt.Errorf("schedule max_days %d must be at least initial_days %d",
			c.Schedule.MaxDays, c.Schedule.InitialDays)
	}
	if c.Trigger.Period < 1 {
		return fmt.Errorf("trigger period must be at least 1")
	}
	return nil
}
