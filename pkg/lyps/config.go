package lyps

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the advisory manifest an embedder may supply to override which
// runtime library files and test fixtures an Interpreter reports
// (SPEC_FULL.md §A "configuration"). It does not affect evaluation itself;
// Lyps has no compile-time configuration the way the teacher's DWScript
// units/search-path system does, since its Non-goals exclude a module
// system.
type Config struct {
	RuntimeLibraries []string `yaml:"runtimeLibraries"`
	TestFiles        []string `yaml:"testFiles"`
}

func defaultConfig() *Config {
	return &Config{}
}

// LoadConfigFile reads a YAML manifest from path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(data)
}

// LoadConfig parses a YAML manifest from data.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
