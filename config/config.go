package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/egowarka/corridor/cerror"
	"github.com/egowarka/corridor/game"
	"github.com/egowarka/corridor/level"
	"github.com/egowarka/corridor/sim"
)

type Config struct {
	Movement MovementConfig `yaml:"movement"`
	Corridor CorridorConfig `yaml:"corridor"`
	Door     DoorConfig     `yaml:"door"`
	Lamps    LampConfig     `yaml:"lamps"`
	Logging  LoggingConfig  `yaml:"logging"`
	Sentry   SentryConfig   `yaml:"sentry"`
	Debug    DebugConfig    `yaml:"debug"`
	Assets   AssetConfig    `yaml:"assets"`
}

type MovementConfig struct {
	Strategy     string  `yaml:"strategy"`
	WalkSpeed    float64 `yaml:"walk_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	Sensitivity  float32 `yaml:"sensitivity"`
	PitchClamp   float32 `yaml:"pitch_clamp"`
	MaxStepDelta float64 `yaml:"max_step_delta"`
}

type CorridorConfig struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type DoorConfig struct {
	Unlocked bool `yaml:"unlocked"`
}

type LampConfig struct {
	Count     int     `yaml:"count"`
	Intensity float64 `yaml:"intensity"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn"`
}

type DebugConfig struct {
	StatsAddr string `yaml:"stats_addr"`
}

type AssetConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Movement: MovementConfig{
			Strategy:     string(sim.StrategyControllerBased),
			WalkSpeed:    game.DefaultWalkSpeed,
			RunSpeed:     game.DefaultRunSpeed,
			Gravity:      game.DefaultGravity,
			JumpSpeed:    game.DefaultJumpSpeed,
			Sensitivity:  game.DefaultSensitivity,
			PitchClamp:   game.DefaultPitchClamp,
			MaxStepDelta: game.DefaultMaxStepDelta,
		},
		Corridor: CorridorConfig{
			Length: game.CorridorLength,
			Width:  game.CorridorWidth,
			Height: game.CorridorHeight,
		},
		Door:    DoorConfig{Unlocked: false},
		Lamps:   LampConfig{Count: game.DefaultLampCount, Intensity: 1.4},
		Logging: LoggingConfig{Level: "info"},
		Assets:  AssetConfig{Dir: "assets"},
	}
}

// Load reads and validates a config file. Settings absent from the file keep
// their defaults; invalid settings fail fast.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects misconfiguration instead of clamping it away.
func (c *Config) Validate() error {
	if err := c.SimOptions().Validate(); err != nil {
		return err
	}
	if c.Corridor.Length <= 0 || c.Corridor.Width <= 0 || c.Corridor.Height <= 0 {
		return cerror.New("config: corridor dimensions must be positive, got %v x %v x %v",
			c.Corridor.Length, c.Corridor.Width, c.Corridor.Height)
	}
	if c.Lamps.Count <= 0 {
		return cerror.New("config: lamp count must be positive, got %d", c.Lamps.Count)
	}
	if c.Lamps.Intensity <= 0 {
		return cerror.New("config: lamp intensity must be positive, got %v", c.Lamps.Intensity)
	}
	return nil
}

// SimOptions converts the movement section into simulator options.
func (c *Config) SimOptions() sim.Options {
	return sim.Options{
		Strategy:     sim.StrategyName(c.Movement.Strategy),
		WalkSpeed:    c.Movement.WalkSpeed,
		RunSpeed:     c.Movement.RunSpeed,
		Gravity:      c.Movement.Gravity,
		JumpSpeed:    c.Movement.JumpSpeed,
		Sensitivity:  c.Movement.Sensitivity,
		PitchClamp:   c.Movement.PitchClamp,
		MaxStepDelta: c.Movement.MaxStepDelta,
	}
}

// CorridorParams converts the corridor section into level parameters.
func (c *Config) CorridorParams() level.CorridorParams {
	p := level.DefaultCorridor()
	p.Length = c.Corridor.Length
	p.Width = c.Corridor.Width
	p.Height = c.Corridor.Height
	return p
}
