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

package main

import (
	"fmt"

	"github.com/cofilter-io/cofilter/base/log"
	"github.com/cofilter-io/cofilter/config"
	"github.com/cofilter-io/cofilter/dataset"
	"github.com/cofilter-io/cofilter/similarity"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

var rootCommand = &cobra.Command{
	Use:   "cofilter",
	Short: "Neighborhood-based collaborative filtering over rating tables",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Check the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCommand.AddCommand(versionCommand)
	rootCommand.AddCommand(similarityCommand)
	rootCommand.AddCommand(predictCommand)
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().String("config", "", "path of the config file")
	log.AddFlags(rootCommand.PersistentFlags())
}

// loadConfig reads the config file named by --config, or the defaults, then
// applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, errors.Trace(err)
		}
	} else {
		cfg = config.GetDefaultConfig()
	}
	if cmd.Flags().Changed("kind") {
		cfg.Similarity, _ = cmd.Flags().GetString("kind")
	}
	if cmd.Flags().Changed("k") {
		cfg.K, _ = cmd.Flags().GetInt("k")
	}
	if cmd.Flags().Changed("centered") {
		cfg.Centered, _ = cmd.Flags().GetBool("centered")
	}
	if cmd.Flags().Changed("fallback") {
		cfg.Fallback, _ = cmd.Flags().GetString("fallback")
	}
	if cmd.Flags().Changed("svd-rank") {
		cfg.SVDRank, _ = cmd.Flags().GetInt("svd-rank")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// buildSimilarity computes the configured similarity matrix, reducing the
// table first when an SVD rank is set.
func buildSimilarity(table *dataset.Table, cfg *config.Config) (*similarity.Matrix, error) {
	if cfg.SVDRank > 0 {
		reduced, err := similarity.TruncateSVD(table, cfg.SVDRank)
		if err != nil {
			return nil, errors.Trace(err)
		}
		table = reduced
	}
	switch cfg.Similarity {
	case config.SimilarityCosine:
		return similarity.Cosine(table)
	case config.SimilarityPearson:
		return similarity.Pearson(table)
	case config.SimilarityCentered:
		return similarity.CenteredCosine(table)
	}
	return nil, errors.Errorf("unknown similarity kind %q", cfg.Similarity)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute command", zap.Error(err))
	}
}
