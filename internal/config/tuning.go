package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override tuning file values.
const (
	EnvConfigPath = "DAWN_CONFIG"
	EnvSeed       = "DAWN_SEED"
	EnvLogLevel   = "DAWN_LOG_LEVEL"
	EnvLogFile    = "DAWN_LOG_FILE"
	EnvTickRate   = "DAWN_TICK_RATE"
)

// Tuning holds the host-level knobs for a play session. The simulation rules
// themselves are fixed and live in the object and world packages.
type Tuning struct {
	// Lives is the number of player ships per game.
	Lives int `yaml:"lives"`
	// TickRate is the number of simulation ticks per second.
	TickRate int `yaml:"tick_rate"`
	// Seed is a phrase hashed into the random seed. Empty means time-based.
	Seed string `yaml:"seed"`

	LogLevel string `yaml:"log_level"`
	// LogFile receives logs for terminal play so they don't garble the screen.
	LogFile string `yaml:"log_file"`

	SSH SSHConfig `yaml:"ssh"`
	Web WebConfig `yaml:"web"`
}

type SSHConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

type WebConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	DisplayHost string `yaml:"display_host"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Lives:    3,
		TickRate: 30,
		LogLevel: "info",
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
		},
		Web: WebConfig{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
	}
}

// Load reads a YAML tuning file over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Tuning, error) {
	t := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return t, errors.Wrapf(err, "open tuning file %s", path)
		}
		defer f.Close()

		// An empty or comment-only file decodes to io.EOF: no overrides.
		if err := yaml.NewDecoder(f).Decode(&t); err != nil && !errors.Is(err, io.EOF) {
			return t, errors.Wrapf(err, "decode tuning file %s", path)
		}
	}

	t.Seed = GetEnv(EnvSeed, t.Seed)
	t.LogLevel = GetEnv(EnvLogLevel, t.LogLevel)
	t.LogFile = GetEnv(EnvLogFile, t.LogFile)
	t.TickRate = GetEnvInt(EnvTickRate, t.TickRate)

	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate rejects values the session cannot run with.
func (t Tuning) Validate() error {
	if t.Lives <= 0 {
		return errors.Errorf("lives must be positive, got %d", t.Lives)
	}
	if t.TickRate <= 0 || t.TickRate > 240 {
		return errors.Errorf("tick_rate must be in [1,240], got %d", t.TickRate)
	}
	return nil
}
