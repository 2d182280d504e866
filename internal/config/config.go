// Package config loads the argb CLI configuration.
package config

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/unkn0wn-root/argb/codec"
)

//go:embed default.yaml
var defaultYAML []byte

// Config selects the property store backend and logging.
type Config struct {
	Namespace string        `yaml:"namespace"`
	Provider  string        `yaml:"provider"` // sqlite | redis | bigcache | ristretto
	Codec     string        `yaml:"codec"`    // text | json | msgpack | cbor | protobuf
	TTL       time.Duration `yaml:"ttl"`      // 0 => store default; negative => no expiry

	MaxPayload   int           `yaml:"max_payload"`   // largest stored payload decoded; 0 disables the limit
	RevRetention time.Duration `yaml:"rev_retention"` // revisions idle longer are pruned; negative keeps them

	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Redis     RedisConfig     `yaml:"redis"`
	BigCache  BigCacheConfig  `yaml:"bigcache"`
	Ristretto RistrettoConfig `yaml:"ristretto"`
	Log       LogConfig       `yaml:"log"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type BigCacheConfig struct {
	LifeWindow         time.Duration `yaml:"life_window"`
	MaxEntriesInWindow int           `yaml:"max_entries_in_window"`
	MaxEntrySize       int           `yaml:"max_entry_size"` // bytes; stored frames are small
}

type RistrettoConfig struct {
	NumCounters int64 `yaml:"num_counters"`
	MaxCost     int64 `yaml:"max_cost"`
	BufferItems int64 `yaml:"buffer_items"`
}

type LogConfig struct {
	Level       string `yaml:"level"` // debug | info | warn | error
	Development bool   `yaml:"development"`
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("config: namespace is required")
	}
	switch c.Provider {
	case "sqlite", "redis", "bigcache", "ristretto":
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		return fmt.Errorf("config: unknown codec %q", c.Codec)
	}
	if c.MaxPayload < 0 {
		return fmt.Errorf("config: max_payload must not be negative")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
