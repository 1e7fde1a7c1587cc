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
	"github.com/cofilter-io/cofilter/knn"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var predictCommand = &cobra.Command{
	Use:   "predict",
	Short: "Predict the rating of an item by a user",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Logger().Fatal("failed to load config", zap.Error(err))
		}
		path, _ := cmd.Flags().GetString("ratings")
		ratings, err := dataset.ReadCSV(path)
		if err != nil {
			log.Logger().Fatal("failed to load ratings", zap.String("path", path), zap.Error(err))
		}
		sims, err := buildSimilarity(ratings, cfg)
		if err != nil {
			log.Logger().Fatal("failed to compute similarity", zap.Error(err))
		}

		user, _ := cmd.Flags().GetString("user")
		item, _ := cmd.Flags().GetString("item")
		opts := knn.Options{K: cfg.K, Centered: cfg.Centered}
		if cfg.Fallback == config.FallbackGlobalMean {
			opts.Fallback = knn.FallbackGlobalMean
		}
		prediction, err := knn.Predict(ratings, sims, user, item, opts)
		if err != nil {
			log.Logger().Fatal("failed to predict",
				zap.String("user", user),
				zap.String("item", item),
				zap.Error(err))
		}
		fmt.Printf("%.4f\n", prediction)
	},
}

func init() {
	predictCommand.Flags().String("ratings", "", "path of the ratings CSV file")
	_ = predictCommand.MarkFlagRequired("ratings")
	predictCommand.Flags().String("user", "", "target user id")
	_ = predictCommand.MarkFlagRequired("user")
	predictCommand.Flags().String("item", "", "target item id")
	_ = predictCommand.MarkFlagRequired("item")
	predictCommand.Flags().String("kind", "", "similarity kind (cosine, pearson or centered)")
	predictCommand.Flags().Int("k", 0, "neighborhood size")
	predictCommand.Flags().Bool("centered", false, "use deviation-from-mean prediction")
	predictCommand.Flags().String("fallback", "", "fallback policy (none or global_mean)")
	predictCommand.Flags().Int("svd-rank", 0, "reduce ratings to this rank before computing similarity")
}
