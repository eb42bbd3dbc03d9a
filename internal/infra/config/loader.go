package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/solidbots/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads a configuration file and applies it on top of the defaults.
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

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto.Solidbots)
}

// LoadFromRoot loads <root>/solidbots.yaml. A missing file yields the defaults.
// A relative journal path is anchored at root.
func LoadFromRoot(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
		cfg = domain.DefaultConfig()
	}
	return AnchorPaths(cfg, root), nil
}

// AnchorPaths resolves relative paths in cfg against root.
func AnchorPaths(cfg domain.Config, root string) domain.Config {
	if cfg.Journal.Path != "" && !filepath.IsAbs(cfg.Journal.Path) {
		cfg.Journal.Path = filepath.Join(root, cfg.Journal.Path)
	}
	return cfg
}
