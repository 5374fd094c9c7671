package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Streaming StreamingConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	FrameInterval   time.Duration
}

type LoggingConfig struct {
	Level string
	File  string
}

// StreamingConfig holds the world grid, spawn policy and load thresholds.
// Field names follow the tuning file keys.
type StreamingConfig struct {
	Seed int64 `yaml:"seed"`

	ChunkSize      float64       `yaml:"chunk_size"`
	ChunksX        int           `yaml:"chunks_x"`
	ChunksY        int           `yaml:"chunks_y"`
	UpdateInterval time.Duration `yaml:"update_interval"`
	LoadRadius     int           `yaml:"load_radius"`
	UnloadDistance int           `yaml:"unload_distance"`

	GlobalMaxResources int     `yaml:"global_max_resources"`
	MatterSpawnRate    float64 `yaml:"matter_spawn_rate"`
	GlobalRiftCount    int     `yaml:"global_rift_count"`
	RiftSpawnRate      float64 `yaml:"rift_spawn_rate"`
	RiftMinRadius      float64 `yaml:"rift_min_radius"`
	RiftMaxRadius      float64 `yaml:"rift_max_radius"`
	RiftNoiseScale     float64 `yaml:"rift_noise_scale"`

	ArtifactChance           float64 `yaml:"artifact_chance"`
	PortalChance             float64 `yaml:"portal_chance"`
	MysteryChance            float64 `yaml:"mystery_chance"`
	MysteryMaterializeChance float64 `yaml:"mystery_materialize_chance"`

	ResourceInset float64 `yaml:"resource_inset"`
	HazardInset   float64 `yaml:"hazard_inset"`
	ArtifactInset float64 `yaml:"artifact_inset"`
	PortalInset   float64 `yaml:"portal_inset"`
	MysteryInset  float64 `yaml:"mystery_inset"`

	PortalAttempts      int     `yaml:"portal_attempts"`
	MinPortalSeparation float64 `yaml:"min_portal_separation"`
}

// DefaultStreaming returns the stock 6x6 arena of 2000-unit chunks.
func DefaultStreaming() StreamingConfig {
	return StreamingConfig{
		ChunkSize:      2000,
		ChunksX:        6,
		ChunksY:        6,
		UpdateInterval: 500 * time.Millisecond,
		LoadRadius:     1,
		UnloadDistance: 2,

		GlobalMaxResources: 1800,
		MatterSpawnRate:    0.6,
		GlobalRiftCount:    72,
		RiftSpawnRate:      0.8,
		RiftMinRadius:      120,
		RiftMaxRadius:      320,
		RiftNoiseScale:     1500,

		ArtifactChance:           0.05,
		PortalChance:             0.02,
		MysteryChance:            0.08,
		MysteryMaterializeChance: 0.3,

		ResourceInset: 50,
		HazardInset:   100,
		ArtifactInset: 150,
		PortalInset:   200,
		MysteryInset:  150,

		PortalAttempts:      10,
		MinPortalSeparation: 1500,
	}
}

// Load reads the configuration from the environment. When STREAM_TUNING_FILE
// is set, the YAML file is applied over the streaming defaults before the
// individual STREAM_* variables.
func Load() (*Config, error) {
	streaming := DefaultStreaming()
	if path := os.Getenv("STREAM_TUNING_FILE"); path != "" {
		tuned, err := LoadTuning(path, streaming)
		if err != nil {
			return nil, err
		}
		streaming = tuned
	}
	streaming = applyStreamingEnv(streaming)

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvStr("PORT", "8080"),
			ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
			FrameInterval:   getEnvDuration("FRAME_INTERVAL", 16*time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: getEnvStr("LOG_LEVEL", "info"),
			File:  getEnvStr("LOG_FILE", ""),
		},
		Streaming: streaming,
	}

	if err := cfg.Streaming.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTuning decodes a YAML tuning file over base. Keys missing from the file
// keep their value from base.
func LoadTuning(path string, base StreamingConfig) (StreamingConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read tuning file: %w", err)
	}
	tuned := base
	if err := yaml.Unmarshal(raw, &tuned); err != nil {
		return base, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	return tuned, nil
}

// Validate reports every violated constraint at once.
func (c StreamingConfig) Validate() error {
	var errs []error
	if c.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("chunk_size must be positive, got %v", c.ChunkSize))
	}
	if c.ChunksX <= 0 || c.ChunksY <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.ChunksX, c.ChunksY))
	}
	if c.LoadRadius < 0 {
		errs = append(errs, fmt.Errorf("load_radius must not be negative, got %d", c.LoadRadius))
	}
	if c.LoadRadius >= c.UnloadDistance {
		errs = append(errs, fmt.Errorf("load_radius (%d) must be less than unload_distance (%d)", c.LoadRadius, c.UnloadDistance))
	}
	if c.UpdateInterval < 0 {
		errs = append(errs, fmt.Errorf("update_interval must not be negative, got %s", c.UpdateInterval))
	}
	if c.RiftMinRadius > c.RiftMaxRadius {
		errs = append(errs, fmt.Errorf("rift_min_radius (%v) exceeds rift_max_radius (%v)", c.RiftMinRadius, c.RiftMaxRadius))
	}
	if c.PortalAttempts < 0 {
		errs = append(errs, fmt.Errorf("portal_attempts must not be negative, got %d", c.PortalAttempts))
	}
	for name, p := range map[string]float64{
		"matter_spawn_rate":          c.MatterSpawnRate,
		"rift_spawn_rate":            c.RiftSpawnRate,
		"artifact_chance":            c.ArtifactChance,
		"portal_chance":              c.PortalChance,
		"mystery_chance":             c.MysteryChance,
		"mystery_materialize_chance": c.MysteryMaterializeChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %v", name, p))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func applyStreamingEnv(c StreamingConfig) StreamingConfig {
	c.Seed = getEnvInt64("STREAM_SEED", c.Seed)
	c.ChunkSize = getEnvFloat("STREAM_CHUNK_SIZE", c.ChunkSize)
	c.ChunksX = getEnvInt("STREAM_CHUNKS_X", c.ChunksX)
	c.ChunksY = getEnvInt("STREAM_CHUNKS_Y", c.ChunksY)
	c.UpdateInterval = getEnvDuration("STREAM_UPDATE_INTERVAL", c.UpdateInterval)
	c.LoadRadius = getEnvInt("STREAM_LOAD_RADIUS", c.LoadRadius)
	c.UnloadDistance = getEnvInt("STREAM_UNLOAD_DISTANCE", c.UnloadDistance)
	c.GlobalMaxResources = getEnvInt("STREAM_GLOBAL_MAX_RESOURCES", c.GlobalMaxResources)
	c.MatterSpawnRate = getEnvFloat("STREAM_MATTER_SPAWN_RATE", c.MatterSpawnRate)
	c.GlobalRiftCount = getEnvInt("STREAM_GLOBAL_RIFT_COUNT", c.GlobalRiftCount)
	return c
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
