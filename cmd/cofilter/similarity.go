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
	"math"
	"os"

	"github.com/cofilter-io/cofilter/base/log"
	"github.com/cofilter-io/cofilter/dataset"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var similarityCommand = &cobra.Command{
	Use:   "similarity",
	Short: "Print the pairwise similarity matrix of a rating table",
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
		log.Logger().Info("loaded ratings",
			zap.String("path", path),
			zap.Int("rows", ratings.CountRows()),
			zap.Int("columns", ratings.CountColumns()))
		sims, err := buildSimilarity(ratings, cfg)
		if err != nil {
			log.Logger().Fatal("failed to compute similarity", zap.Error(err))
		}

		ids := sims.Ids()
		table := tablewriter.NewWriter(os.Stdout)
		header := append([]string{cfg.Similarity}, ids...)
		table.Header(header)
		for _, a := range ids {
			row := []string{a}
			for _, b := range ids {
				s, err := sims.Get(a, b)
				if err != nil {
					log.Logger().Fatal("failed to read similarity", zap.Error(err))
				}
				if math.IsNaN(s) {
					row = append(row, "n/a")
				} else {
					row = append(row, fmt.Sprintf("%.4f", s))
				}
			}
			if err := table.Append(row); err != nil {
				log.Logger().Fatal("failed to append row", zap.Error(err))
			}
		}
		if err := table.Render(); err != nil {
			log.Logger().Fatal("failed to render table", zap.Error(err))
		}
	},
}

func init() {
	similarityCommand.Flags().String("ratings", "", "path of the ratings CSV file")
	_ = similarityCommand.MarkFlagRequired("ratings")
	similarityCommand.Flags().String("kind", "", "similarity kind (cosine, pearson or centered)")
	similarityCommand.Flags().Int("svd-rank", 0, "reduce ratings to this rank before computing similarity")
}
