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
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-paxsort/bench"
	"github.com/ajroetker/go-paxsort/chart"
)

type plotOptions struct {
	timings   string
	outputDir string
	format    string
}

func newPlotCmd(g *globalOptions) *cobra.Command {
	opts := &plotOptions{}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw linear and log scale charts of a timing log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, results, err := bench.LoadTimingLog(opts.timings)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			paths, err := chart.SaveAll(opts.outputDir, opts.format, names, results)
			if err != nil {
				return err
			}
			g.logger.Info("charts written", "timings", opts.timings, "sizes", len(results), "files", paths)
			for _, path := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.timings, "timings", "t", "timings.csv", "Timing log to plot")
	f.StringVarP(&opts.outputDir, "output-dir", "o", "images", "Directory for the charts; created if missing")
	f.StringVar(&opts.format, "format", "png", "Image format: png, svg, pdf, eps, jpg or tiff")
	return cmd
}
