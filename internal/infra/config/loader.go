package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avenlon/domainwatch/internal/domain"
)

// DefaultPath is the config file name written by init and used as the
// fallback when upward discovery finds nothing.
const DefaultPath = "domainwatch.yaml"

// Load reads the YAML config at path, expands ${ENV} references and applies
// the result on top of the defaults.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	b, err = expandEnv(path, b)
	if err != nil {
		return domain.DefaultConfig(), err
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(path, dto)
}
