package mapgen

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/tunnelgen/pkg/mutation"
	"github.com/dshills/tunnelgen/pkg/rng"
	"github.com/dshills/tunnelgen/pkg/tile"
	"github.com/dshills/tunnelgen/pkg/walker"
	"github.com/dshills/tunnelgen/pkg/waypoint"
)

// GeneratorParams bundles the post-processing tunables that live outside
// the walker itself.
type GeneratorParams struct {
	MinFreezeSize     uint    `yaml:"minFreezeSize"`
	MaxDistance       float64 `yaml:"maxDistance"`
	SkipMinLen        uint    `yaml:"skipMinLen"`
	SkipMaxLen        uint    `yaml:"skipMaxLen"`
	SkipMinSpacingSqr uint64  `yaml:"skipMinSpacingSqr"`
}

// Validate checks GeneratorParams's internal constraints.
func (g *GeneratorParams) Validate() error {
	if g.SkipMinLen > g.SkipMaxLen {
		return fmt.Errorf("skipMinLen (%d) must be <= skipMaxLen (%d)", g.SkipMinLen, g.SkipMaxLen)
	}
	if g.MaxDistance < 0 {
		return fmt.Errorf("maxDistance must be >= 0, got %f", g.MaxDistance)
	}
	return nil
}

// Config is the single YAML-serializable root consumed by the CLI and by
// tests: map dimensions, the seed, the waypoint list, and both the
// generator-level and walker-level tunables.
type Config struct {
	// Seed, if non-empty, is hashed via SHA-256 to derive the master seed
	// (see pkg/rng.NewFromString). Takes precedence over SeedValue.
	Seed string `yaml:"seed,omitempty"`
	// SeedValue is used directly as the master seed when Seed is empty.
	SeedValue uint64 `yaml:"seedValue,omitempty"`

	Width       uint   `yaml:"width"`
	Height      uint   `yaml:"height"`
	ChunkSize   uint   `yaml:"chunkSize"`
	InitialFill string `yaml:"initialFill,omitempty"`

	Waypoints []waypoint.Normalized `yaml:"waypoints"`

	Generator GeneratorParams `yaml:"generator"`
	Walker    walker.Params   `yaml:"walker"`

	// Mutators is an optional ordered pipeline of config-driven steering
	// overrides, run once per walker step ahead of its own probabilistic
	// move. Empty by default: the walker then runs unmutated.
	Mutators []mutation.Spec `yaml:"mutators,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.Seed == "" && cfg.SeedValue == 0 {
		cfg.SeedValue = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks every sub-config's constraints.
func (c *Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("width and height must both be > 0, got %dx%d", c.Width, c.Height)
	}
	if len(c.Waypoints) == 0 {
		return fmt.Errorf("waypoints must not be empty")
	}
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := c.Walker.Validate(); err != nil {
		return fmt.Errorf("walker: %w", err)
	}
	if _, err := parseTile(c.InitialFill); err != nil {
		return err
	}
	for _, spec := range c.Mutators {
		if mutation.Get(spec.Kind) == nil {
			return fmt.Errorf("mutators: unknown kind %q", spec.Kind)
		}
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic SHA-256 fingerprint of the configuration's
// YAML form. It is not used for seeding: the RNG is built from Seed or
// SeedValue alone (see rng).
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.SeedValue)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// rng builds the master RNG from the config's seed fields: a non-empty
// string Seed wins over SeedValue.
func (c *Config) rng() *rng.RNG {
	if c.Seed != "" {
		return rng.NewFromString(c.Seed)
	}
	return rng.NewFromSeed(c.SeedValue)
}

// generateSeed derives a seed from the current time for configs that leave
// both Seed and SeedValue unset.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// parseTile maps a config tile name to a tile.Tile. An empty name defaults
// to Hookable, the map's natural "unexcavated rock" fill.
func parseTile(name string) (tile.Tile, error) {
	switch name {
	case "", "Hookable":
		return tile.Hookable, nil
	case "Empty":
		return tile.Empty, nil
	case "EmptyReserved":
		return tile.EmptyReserved, nil
	case "Freeze":
		return tile.Freeze, nil
	default:
		return 0, fmt.Errorf("initialFill: unknown tile name %q", name)
	}
}
