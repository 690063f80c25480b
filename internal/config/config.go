package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"checkers/internal/engine"
)

// 环境变量名
const (
	EnvAddr        = "CHECKERS_ADDR"
	EnvWebDir      = "CHECKERS_WEB"
	EnvDifficulty  = "CHECKERS_DIFFICULTY"
	EnvAIDelay     = "CHECKERS_AI_DELAY"
	EnvLogLevel    = "CHECKERS_LOG_LEVEL"
	EnvSeed        = "CHECKERS_SEED"
	EnvOpenBrowser = "CHECKERS_OPEN_BROWSER"
)

type Config struct {
	Addr        string
	WebDir      string
	Difficulty  engine.Difficulty
	AIDelay     time.Duration
	LogLevel    string
	Seed        int64
	OpenBrowser bool
}

func Default() Config {
	return Config{
		Addr:        ":2888",
		WebDir:      "./web",
		Difficulty:  engine.Medium(),
		AIDelay:     500 * time.Millisecond,
		LogLevel:    "info",
		Seed:        0,
		OpenBrowser: true,
	}
}

// Load 先读 .env（可选，已有的环境变量优先），再从环境变量覆盖默认值
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv 只看 lookup，方便测试
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := nonEmpty(lookup, EnvAddr); ok {
		cfg.Addr = v
	}
	if v, ok := nonEmpty(lookup, EnvWebDir); ok {
		cfg.WebDir = v
	}
	if v, ok := nonEmpty(lookup, EnvDifficulty); ok {
		d, err := engine.ParseDifficulty(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDifficulty, err)
		}
		cfg.Difficulty = d
	}
	if v, ok := nonEmpty(lookup, EnvAIDelay); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return cfg, fmt.Errorf("%s: invalid duration %q", EnvAIDelay, v)
		}
		cfg.AIDelay = d
	}
	if v, ok := nonEmpty(lookup, EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := nonEmpty(lookup, EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = n
	}
	if v, ok := nonEmpty(lookup, EnvOpenBrowser); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvOpenBrowser, err)
		}
		cfg.OpenBrowser = b
	}
	return cfg, nil
}

func nonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
