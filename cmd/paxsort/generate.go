// Copyright 2025 go-paxsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-paxsort/dataset"
)

type generateOptions struct {
	count  int
	seed   uint64
	output string
}

func newGenerateCmd(g *globalOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic passenger dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", opts.count)
			}
			records := dataset.Generate(opts.count, opts.seed)
			if err := dataset.Save(opts.output, records); err != nil {
				return err
			}
			g.logger.Info("dataset generated", "path", opts.output, "records", len(records), "seed", opts.seed)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d passengers to %s\n", len(records), opts.output)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", 100000, "Number of passengers")
	f.Uint64Var(&opts.seed, "seed", 1, "Random seed; equal seeds give equal files")
	f.StringVarP(&opts.output, "output", "o", "passengers.csv", "File to write")
	return cmd
}
