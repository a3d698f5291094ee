package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/termsweeper/internal/mines"
)

// EnvPrefix marks the environment variables read by [Load], e.g. MINES_SIZE.
const EnvPrefix = "MINES_"

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.ZeroEmpty(true)
}

type Config struct {
	Size        int    `schema:"size"`
	MineCount   int    `schema:"mines"`
	Seed        uint64 `schema:"seed"` // 0 picks a random seed
	LogFile     string `schema:"log_file"`
	Development bool   `schema:"development"`
}

func Default() Config {
	return Config{
		Size:      10,
		MineCount: 8,
		LogFile:   "minesweeper.log",
	}
}

// Load starts from [Default], applies MINES_* variables from environ and
// then key=value arguments, which win over the environment.
func Load(args []string, environ []string) (Config, error) {
	values := url.Values{}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		values.Set(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value)
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return Config{}, fmt.Errorf("argument %q is not in key=value form", arg)
		}
		values.Set(strings.ToLower(key), value)
	}

	cfg := Default()
	if err := decoder.Decode(&cfg, values); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size=%d", mines.ErrInvalidSize, c.Size)
	}
	if c.MineCount < 0 || c.MineCount > c.Size*c.Size {
		return fmt.Errorf(
			"%w: mines=%d, size=%d", mines.ErrInvalidMineCount, c.MineCount, c.Size,
		)
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"size":        c.Size,
		"mines":       c.MineCount,
		"seed":        c.Seed,
		"log_file":    c.LogFile,
		"development": c.Development,
	}
}
