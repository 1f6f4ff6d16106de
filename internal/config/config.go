package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
// Precedence: CLI flags > YAML config > environment variables > defaults.
type Config struct {
	// ProjectRoot is the directory the spec tree and relative paths hang off.
	ProjectRoot string
	// SpecDir is the subdirectory under ProjectRoot searched for spec files.
	SpecDir string
	// SpecSuffix identifies spec files by file name suffix.
	SpecSuffix string
	// TimingsKey is the JSON key holding the timing table.
	TimingsKey string

	// Static weight estimation knobs.
	DefaultWeight float64
	BlockBonus    float64
	BlockKeywords []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags after parsing.
type Flags struct {
	ConfigFile string
	Root       string
	SpecDir    string
	Timings    string
	Weights    bool
	Verbose    bool
	Progress   bool
}

// yamlConfig mirrors the YAML configuration file structure.
type yamlConfig struct {
	ProjectRoot   string   `yaml:"project_root"`
	SpecDir       string   `yaml:"spec_dir"`
	SpecSuffix    string   `yaml:"spec_suffix"`
	TimingsKey    string   `yaml:"timings_key"`
	DefaultWeight *float64 `yaml:"default_weight"`
	BlockBonus    *float64 `yaml:"block_bonus"`
	BlockKeywords []string `yaml:"block_keywords"`
}

// New creates a Config with defaults. The project root defaults to the parent
// of the directory containing the executable, so a binary installed under
// <project>/bin resolves its own project tree; when the executable path is
// unavailable it falls back to the working directory.
func New() *Config {
	cfg := &Config{
		ProjectRoot:   defaultProjectRoot(),
		SpecDir:       DefaultSpecDir,
		SpecSuffix:    DefaultSpecSuffix,
		TimingsKey:    DefaultTimingsKey,
		DefaultWeight: DefaultWeight,
		BlockBonus:    DefaultBlockBonus,
	}
	cfg.BlockKeywords = make([]string, len(DefaultBlockKeywords))
	copy(cfg.BlockKeywords, DefaultBlockKeywords)
	return cfg
}

// Load resolves configuration from all sources and applies the parsed flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	// A --root flag also decides where .env and the default config file are
	// looked up, even though flag values are applied last.
	lookupRoot := cfg.ProjectRoot
	if flags.Root != "" {
		lookupRoot = flags.Root
	}

	// .env under the project root feeds the environment layer. The file is
	// optional.
	_ = godotenv.Load(filepath.Join(lookupRoot, ".env"))

	if err := applyFileConfig(cfg, flags.ConfigFile, lookupRoot); err != nil {
		return nil, err
	}
	applyEnvConfig(cfg)
	applyFlags(cfg, flags)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SpecRoot returns the absolute directory scanned for spec files.
func (c *Config) SpecRoot() string {
	return filepath.Join(c.ProjectRoot, c.SpecDir)
}

func defaultProjectRoot() string {
	exe, err := os.Executable()
	if err == nil {
		return filepath.Dir(filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// applyFileConfig loads the YAML file. An explicitly named file must parse;
// the default file is loaded only if present.
func applyFileConfig(cfg *Config, path, lookupRoot string) error {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(lookupRoot, DefaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("read config file: %w", err)
		}
		return nil
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if yamlCfg.ProjectRoot != "" {
		cfg.ProjectRoot = yamlCfg.ProjectRoot
	}
	if yamlCfg.SpecDir != "" {
		cfg.SpecDir = yamlCfg.SpecDir
	}
	if yamlCfg.SpecSuffix != "" {
		cfg.SpecSuffix = yamlCfg.SpecSuffix
	}
	if yamlCfg.TimingsKey != "" {
		cfg.TimingsKey = yamlCfg.TimingsKey
	}
	if yamlCfg.DefaultWeight != nil {
		cfg.DefaultWeight = *yamlCfg.DefaultWeight
	}
	if yamlCfg.BlockBonus != nil {
		cfg.BlockBonus = *yamlCfg.BlockBonus
	}
	if len(yamlCfg.BlockKeywords) > 0 {
		cfg.BlockKeywords = yamlCfg.BlockKeywords
	}
	return nil
}

func applyEnvConfig(cfg *Config) {
	if root := strings.TrimSpace(os.Getenv(EnvPrefix + "ROOT")); root != "" {
		cfg.ProjectRoot = root
	}
	if dir := strings.TrimSpace(os.Getenv(EnvPrefix + "SPEC_DIR")); dir != "" {
		cfg.SpecDir = dir
	}
	if suffix := strings.TrimSpace(os.Getenv(EnvPrefix + "SPEC_SUFFIX")); suffix != "" {
		cfg.SpecSuffix = suffix
	}
	if key := strings.TrimSpace(os.Getenv(EnvPrefix + "TIMINGS_KEY")); key != "" {
		cfg.TimingsKey = key
	}
	if raw := strings.TrimSpace(os.Getenv(EnvPrefix + "DEFAULT_WEIGHT")); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value >= 0 {
			cfg.DefaultWeight = value
		}
	}
	if raw := strings.TrimSpace(os.Getenv(EnvPrefix + "BLOCK_BONUS")); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value >= 0 {
			cfg.BlockBonus = value
		}
	}
	if raw := strings.TrimSpace(os.Getenv(EnvPrefix + "BLOCK_KEYWORDS")); raw != "" {
		if keywords := parseKeywords(raw); len(keywords) > 0 {
			cfg.BlockKeywords = keywords
		}
	}
}

func applyFlags(cfg *Config, flags Flags) {
	if flags.Root != "" {
		cfg.ProjectRoot = flags.Root
	}
	if flags.SpecDir != "" {
		cfg.SpecDir = flags.SpecDir
	}
}

func validate(cfg *Config) error {
	if cfg.SpecSuffix == "" {
		return fmt.Errorf("spec suffix cannot be empty")
	}
	if cfg.DefaultWeight < 0 {
		return fmt.Errorf("default weight must be >= 0, got %v", cfg.DefaultWeight)
	}
	if cfg.BlockBonus < 0 {
		return fmt.Errorf("block bonus must be >= 0, got %v", cfg.BlockBonus)
	}
	if len(cfg.BlockKeywords) == 0 {
		return fmt.Errorf("block keywords cannot be empty")
	}
	return nil
}

// parseKeywords splits a comma-separated keyword list, dropping empty entries.
func parseKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}
