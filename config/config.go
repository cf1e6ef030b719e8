// Package config loads linkalike settings from defaults, an optional YAML
// file and LINKALIKE_* environment variables, in that order of precedence
// (later wins).
//
// Environment keys map by lower-casing and turning "__" into the nesting
// delimiter: LINKALIKE_GRAPH__WEIGHT_COL sets graph.weight_col. List keys
// take comma-separated values: LINKALIKE_GRAPH__USER_META=AGE,GENDER.
package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linkalike/dissim"
	"github.com/katalvlaran/linkalike/uigraph"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "LINKALIKE_"

// listKeys are the settings whose environment values split on commas.
var listKeys = map[string]bool{
	"graph.user_meta":      true,
	"graph.item_meta":      true,
	"graph.only_recommend": true,
}

// Config is the full settings tree.
type Config struct {
	Graph   GraphConfig   `koanf:"graph"`
	Dataset DatasetConfig `koanf:"dataset"`
	Dissim  DissimConfig  `koanf:"dissim"`
	Log     LogConfig     `koanf:"log"`
}

// GraphConfig mirrors uigraph.Config.
type GraphConfig struct {
	UserCol   string   `koanf:"user_col"`
	ItemCol   string   `koanf:"item_col"`
	WeightCol string   `koanf:"weight_col"`
	UserMeta  []string `koanf:"user_meta"`
	ItemMeta  []string `koanf:"item_meta"`

	// OnlyRecommend is an allow list of item ids; empty means no filter.
	OnlyRecommend []string `koanf:"only_recommend"`
}

// DatasetConfig locates input files.
type DatasetConfig struct {
	Dir       string `koanf:"dir"`
	Separator string `koanf:"separator"`
}

// DissimConfig tunes the dissimilarity pass.
type DissimConfig struct {
	Workers       int `koanf:"workers"`
	ProgressEvery int `koanf:"progress_every"`
}

// LogConfig selects the logger environment (see internal/logger).
type LogConfig struct {
	Env string `koanf:"env"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"graph.user_col":        uigraph.DefaultUserCol,
		"graph.item_col":        uigraph.DefaultItemCol,
		"graph.weight_col":      "",
		"dataset.dir":           ".",
		"dataset.separator":     ",",
		"dissim.workers":        dissim.DefaultWorkers,
		"dissim.progress_every": 0,
		"log.env":               "development",
	}
}

// envKeyValue maps LINKALIKE_A__B to a.b and splits list values.
func envKeyValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if !listKeys[key] {
		return key, value
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return key, items
}

// Load builds a Config. path may be empty to skip the YAML layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Dissim.Workers < 0 {
		return nil, fmt.Errorf("dissim.workers must be >= 0, got %d", cfg.Dissim.Workers)
	}

	return &cfg, nil
}

// UIGraph converts the graph section into a uigraph.Config.
func (c *Config) UIGraph() (uigraph.Config, error) {
	out := uigraph.Config{
		UserCol:   c.Graph.UserCol,
		ItemCol:   c.Graph.ItemCol,
		WeightCol: c.Graph.WeightCol,
		UserMeta:  append([]string(nil), c.Graph.UserMeta...),
		ItemMeta:  append([]string(nil), c.Graph.ItemMeta...),
	}
	if len(c.Graph.OnlyRecommend) > 0 {
		f, err := uigraph.AllowListFilter(c.Graph.OnlyRecommend)
		if err != nil {
			return uigraph.Config{}, err
		}
		out.OnlyRecommend = f
	}

	return out, nil
}

// DissimOptions converts the dissim section into Pairwise options. logFn is
// used for progress when ProgressEvery > 0 and may be nil.
func (c *Config) DissimOptions(logFn dissim.ProgressFunc) []dissim.Option {
	opts := []dissim.Option{dissim.WithWorkers(c.Dissim.Workers)}
	if c.Dissim.ProgressEvery > 0 && logFn != nil {
		opts = append(opts, dissim.WithProgress(logFn))
	}

	return opts
}

// SeparatorRune returns the first rune of Dataset.Separator, or ','.
func (c *Config) SeparatorRune() rune {
	for _, r := range c.Dataset.Separator {
		return r
	}

	return ','
}
