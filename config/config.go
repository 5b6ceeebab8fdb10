package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/physics"
	"github.com/lixenwraith/skyfarer/sandbox"
	"github.com/lixenwraith/skyfarer/spawn"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is prepended to upper-cased keys with dots replaced by underscores
const EnvPrefix = "SKYFARER"

type ThrustConfig struct {
	K               float64 `mapstructure:"k"`
	BoostOffset     float64 `mapstructure:"boostOffset"`
	BoostDivisorMin float64 `mapstructure:"boostDivisorMin"`
	TurnTorque      float64 `mapstructure:"turnTorque"`
}

type InputConfig struct {
	RepeatInterval time.Duration `mapstructure:"repeatInterval"`
	Keymap         string        `mapstructure:"keymap"`
	HoldInitial    time.Duration `mapstructure:"holdInitial"`
	HoldRepeat     time.Duration `mapstructure:"holdRepeat"`
}

type WorldConfig struct {
	Seed            uint64  `mapstructure:"seed"` // 0 picks a time-based seed
	FieldCount      int     `mapstructure:"fieldCount"`
	FieldHalfExtent float64 `mapstructure:"fieldHalfExtent"`
	BrickSide       float64 `mapstructure:"brickSide"`
	Layout          string  `mapstructure:"layout"`
}

type CollectorConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	Magnitude float64       `mapstructure:"magnitude"`
}

type PhysicsConfig struct {
	Gravity float64       `mapstructure:"gravity"`
	Tick    time.Duration `mapstructure:"tick"`
}

type AudioConfig struct {
	Enabled  bool    `mapstructure:"enabled"`
	PoolSize int     `mapstructure:"poolSize"`
	Volume   float64 `mapstructure:"volume"` // beep gain in log2 steps
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

type LedgerConfig struct {
	Path string `mapstructure:"path"` // Empty disables the session ledger
}

type RenderConfig struct {
	Scale float64 `mapstructure:"scale"` // World units per radar cell
}

// Config is the full runtime configuration
type Config struct {
	Thrust    ThrustConfig    `mapstructure:"thrust"`
	Input     InputConfig     `mapstructure:"input"`
	World     WorldConfig     `mapstructure:"world"`
	Collector CollectorConfig `mapstructure:"collector"`
	Physics   PhysicsConfig   `mapstructure:"physics"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Log       LogConfig       `mapstructure:"log"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Render    RenderConfig    `mapstructure:"render"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("thrust.k", parameter.ThrustDetentScale)
	v.SetDefault("thrust.boostOffset", parameter.ThrustBoostOffset)
	v.SetDefault("thrust.boostDivisorMin", parameter.ThrustBoostDivisorMin)
	v.SetDefault("thrust.turnTorque", parameter.TurnTorque)

	v.SetDefault("input.repeatInterval", parameter.KeyRepeatInterval)
	v.SetDefault("input.keymap", "")
	v.SetDefault("input.holdInitial", parameter.KeyHoldInitial)
	v.SetDefault("input.holdRepeat", parameter.KeyHoldRepeat)

	v.SetDefault("world.seed", 0)
	v.SetDefault("world.fieldCount", parameter.FieldCount)
	v.SetDefault("world.fieldHalfExtent", parameter.FieldHalfExtent)
	v.SetDefault("world.brickSide", parameter.BrickSide)
	v.SetDefault("world.layout", "")

	v.SetDefault("collector.interval", parameter.CollectorInterval)
	v.SetDefault("collector.magnitude", parameter.CollectorMagnitude)

	v.SetDefault("physics.gravity", parameter.Gravity)
	v.SetDefault("physics.tick", parameter.PhysicsTick)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.poolSize", parameter.ExplosionPoolSize)
	v.SetDefault("audio.volume", 0.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", "logs")

	v.SetDefault("ledger.path", "")

	v.SetDefault("render.scale", parameter.RadarScale)
}

// Load reads defaults, an optional config file and SKYFARER_* environment overrides
// An empty path skips the file; its format follows the extension (toml, yaml, json)
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading files or environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config: built-in defaults do not decode: %v", err))
	}
	return &cfg
}

// Validate rejects values the control core cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Thrust.K <= 0:
		return fmt.Errorf("%w: thrust.k must be positive, got %v", ErrInvalid, c.Thrust.K)
	case c.Thrust.BoostDivisorMin <= 0:
		return fmt.Errorf("%w: thrust.boostDivisorMin must be positive, got %v", ErrInvalid, c.Thrust.BoostDivisorMin)
	case c.Input.RepeatInterval <= 0:
		return fmt.Errorf("%w: input.repeatInterval must be positive, got %v", ErrInvalid, c.Input.RepeatInterval)
	case c.World.FieldCount < 0:
		return fmt.Errorf("%w: world.fieldCount must not be negative, got %d", ErrInvalid, c.World.FieldCount)
	case c.World.FieldHalfExtent <= 0:
		return fmt.Errorf("%w: world.fieldHalfExtent must be positive, got %v", ErrInvalid, c.World.FieldHalfExtent)
	case c.World.BrickSide <= 0:
		return fmt.Errorf("%w: world.brickSide must be positive, got %v", ErrInvalid, c.World.BrickSide)
	case c.Physics.Tick <= 0:
		return fmt.Errorf("%w: physics.tick must be positive, got %v", ErrInvalid, c.Physics.Tick)
	case c.Audio.PoolSize < 0:
		return fmt.Errorf("%w: audio.poolSize must not be negative, got %d", ErrInvalid, c.Audio.PoolSize)
	case c.Render.Scale <= 0:
		return fmt.Errorf("%w: render.scale must be positive, got %v", ErrInvalid, c.Render.Scale)
	}
	return nil
}

// ThrustParams returns the thrust calculator configuration
func (c *Config) ThrustParams() physics.ThrustConfig {
	return physics.ThrustConfig{
		K:               c.Thrust.K,
		BoostOffset:     c.Thrust.BoostOffset,
		BoostDivisorMin: c.Thrust.BoostDivisorMin,
		TurnTorque:      c.Thrust.TurnTorque,
	}
}

// SpawnParams returns the entity factory configuration
func (c *Config) SpawnParams() spawn.Config {
	sc := spawn.DefaultConfig()
	sc.FieldHalfExtent = c.World.FieldHalfExtent
	sc.BrickSide = c.World.BrickSide
	sc.CollectorInterval = c.Collector.Interval
	sc.CollectorMagnitude = c.Collector.Magnitude
	return sc
}

// SandboxParams returns the host simulation configuration
func (c *Config) SandboxParams() sandbox.Config {
	sc := sandbox.DefaultConfig()
	sc.Gravity = c.Physics.Gravity
	return sc
}
