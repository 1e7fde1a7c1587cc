// Copyright 2026 cofilter Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Similarity kinds.
const (
	SimilarityCosine   = "cosine"
	SimilarityPearson  = "pearson"
	SimilarityCentered = "centered"
)

// Fallback policies.
const (
	FallbackNone       = "none"
	FallbackGlobalMean = "global_mean"
)

// Config holds prediction settings.
type Config struct {
	// Similarity is the similarity kind: cosine, pearson or centered.
	Similarity string `mapstructure:"similarity"`
	// K is the neighborhood size.
	K int `mapstructure:"k"`
	// Centered enables deviation-from-mean prediction.
	Centered bool `mapstructure:"centered"`
	// Fallback is the policy for undefined predictions: none or
	// global_mean.
	Fallback string `mapstructure:"fallback"`
	// SVDRank reduces ratings to this number of latent factors before
	// computing similarity. Zero disables the reduction.
	SVDRank int `mapstructure:"svd_rank"`
}

// GetDefaultConfig returns the default settings: top-2 raw cosine with no
// fallback.
func GetDefaultConfig() *Config {
	return &Config{
		Similarity: SimilarityCosine,
		K:          2,
		Fallback:   FallbackNone,
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !lo.Contains([]string{SimilarityCosine, SimilarityPearson, SimilarityCentered}, c.Similarity) {
		return errors.Errorf("unknown similarity kind %q", c.Similarity)
	}
	if c.K < 1 {
		return errors.Errorf("k must be at least 1, got %d", c.K)
	}
	if !lo.Contains([]string{FallbackNone, FallbackGlobalMean}, c.Fallback) {
		return errors.Errorf("unknown fallback policy %q", c.Fallback)
	}
	if c.SVDRank < 0 {
		return errors.Errorf("svd_rank must not be negative, got %d", c.SVDRank)
	}
	return nil
}

// LoadConfig loads settings from a TOML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	defaults := GetDefaultConfig()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("similarity", defaults.Similarity)
	v.SetDefault("k", defaults.K)
	v.SetDefault("centered", defaults.Centered)
	v.SetDefault("fallback", defaults.Fallback)
	v.SetDefault("svd_rank", defaults.SVDRank)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Trace(err)
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Trace(err)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &config, nil
}
