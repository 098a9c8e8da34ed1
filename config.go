package dafsa

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// DefaultConfigFilePath is the default location of the compiler's yaml
	// config file.
	DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/dafsa/config.yaml")
)

// Config holds compiler-level defaults that are otherwise repeated on every
// invocation: where to read the dictionary from, where to write the
// compiled array, and how to format it.
type Config struct {
	// Input is the default path to a gperf-style dictionary file.
	Input string `yaml:"input"`
	// Output is the default path the compiled byte array is written to.
	Output string `yaml:"output"`
	// Reverse mirrors the upstream --reverse flag: the name portion of
	// each input line is reversed character-wise before compiling.
	Reverse bool `yaml:"reverse"`
	// Format selects the output sink: "bin" for the raw byte array, "go"
	// for a Go source file (internal/sourceformat).
	Format string `yaml:"format"`
}

// NewConfig reads a Config from a yaml file.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample writes a sample config file with default values.
func GenerateSample(filePath string) error {
	cfg := Config{Format: "bin"}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
