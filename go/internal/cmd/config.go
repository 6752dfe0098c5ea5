package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/imposter/go/internal/reveal"
	"github.com/mcdev12/imposter/go/internal/roundclock"
)

// Config is the on-disk shape of a session config file.
type Config struct {
	Game struct {
		RoomCode      string `yaml:"room_code"`
		SlotCount     int    `yaml:"slot_count"`
		Slot          int    `yaml:"slot"`
		WindowSeconds int64  `yaml:"window_seconds"`
	} `yaml:"game"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// resolveConfig merges the optional config file with environment overrides
// into the session config the reveal app consumes.
func resolveConfig() (reveal.Config, error) {
	cfg := reveal.Config{
		SlotCount:     4,
		Slot:          1,
		WindowSeconds: roundclock.DefaultWindowSeconds,
	}

	if path := getEnv("IMPOSTER_CONFIG", ""); path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return reveal.Config{}, err
		}
		cfg.RoomCode = fileCfg.Game.RoomCode
		if fileCfg.Game.SlotCount != 0 {
			cfg.SlotCount = fileCfg.Game.SlotCount
		}
		if fileCfg.Game.Slot != 0 {
			cfg.Slot = fileCfg.Game.Slot
		}
		if fileCfg.Game.WindowSeconds != 0 {
			cfg.WindowSeconds = fileCfg.Game.WindowSeconds
		}
	}

	cfg.RoomCode = getEnv("IMPOSTER_ROOM", cfg.RoomCode)
	cfg.SlotCount = getEnvAsInt("IMPOSTER_SLOTS", cfg.SlotCount)
	cfg.Slot = getEnvAsInt("IMPOSTER_SLOT", cfg.Slot)
	cfg.WindowSeconds = int64(getEnvAsInt("IMPOSTER_WINDOW", int(cfg.WindowSeconds)))

	return cfg, nil
}
