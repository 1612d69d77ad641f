package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/seedgrid/internal/logging"
	"github.com/katalvlaran/seedgrid/regions"
	"github.com/katalvlaran/seedgrid/seedset"
	"github.com/katalvlaran/seedgrid/threshold"
	"github.com/katalvlaran/seedgrid/wavefront"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// DefaultThreshold is the distance-sum limit used when --threshold is unset.
const DefaultThreshold = 10000

type flags struct {
	input     string
	threshold int
	rounds    int
	maxRounds int
	padding   int
	dump      bool
	stats     bool
	logLevel  string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "seedgrid",
		Short: "Partition the plane around seed points under Manhattan distance",
		Long: `Read one "<x>, <y>" seed per line and report:

  1. the area of the largest region that does not grow forever
  2. the number of cells whose summed distance to all seeds is below a threshold

Examples:
  seedgrid -i input.txt
  seedgrid -i input.txt --threshold 32 --dump
  cat input.txt | seedgrid --rounds 160
  seedgrid -i far.txt --max-rounds 2000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Seed file (default stdin)")
	cmd.Flags().IntVarP(&f.threshold, "threshold", "t", DefaultThreshold, "Exclusive limit on the summed distance to all seeds")
	cmd.Flags().IntVar(&f.rounds, "rounds", 0, "Fixed simulation rounds; 0 stops once bounded regions are final")
	cmd.Flags().IntVar(&f.maxRounds, "max-rounds", 0, "Abort once the simulation reaches this round; 0 means no cap")
	cmd.Flags().IntVar(&f.padding, "padding", 0, "Cells added around the bounding box for the threshold scan")
	cmd.Flags().BoolVar(&f.dump, "dump", false, "Print the settled grid over the bounding box")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "Print per-region verdicts and bounded area statistics")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	if err := logging.SetLevel(f.logLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	out := cmd.OutOrStdout()

	points, err := readPoints(cmd.InOrStdin(), f.input)
	if err != nil {
		return err
	}
	set, err := seedset.New(points)
	if err != nil {
		return err
	}
	logging.Log.WithFields(logrus.Fields{
		"seeds": set.Len(),
		"box":   fmt.Sprintf("%v-%v", set.BoundingBox().Min, set.BoundingBox().Max),
	}).Info("seeds loaded")

	var opts []wavefront.Option
	if f.rounds > 0 {
		opts = append(opts, wavefront.WithFixedRounds(f.rounds))
	}
	opts = append(opts, wavefront.WithMaxRounds(f.maxRounds))
	sim, err := wavefront.New(set, opts...)
	if err != nil {
		return err
	}
	rep, err := regions.Analyze(sim)
	if err != nil {
		return err
	}
	near, err := threshold.FindRegionWithAllLocations(set, f.threshold, threshold.WithPadding(f.padding))
	if err != nil {
		return err
	}

	if f.dump {
		fmt.Fprint(out, sim.Snapshot().Render(set.BoundingBox()))
	}
	if f.stats {
		for _, r := range rep.Regions {
			fmt.Fprintf(out, "%c %v area=%d bounded=%v\n", r.Sign, r.Seed, r.Area, r.Bounded)
		}
		s := rep.Stats()
		fmt.Fprintf(out, "bounded=%d unbounded=%d mean=%.2f stddev=%.2f\n", s.Bounded, s.Unbounded, s.Mean, s.StdDev)
	}
	fmt.Fprintf(out, "largest bounded region: %d\n", rep.Largest.Area)
	fmt.Fprintf(out, "near-all region: %d\n", near)

	return nil
}

func readPoints(stdin io.Reader, path string) ([]seedset.Point, error) {
	if path == "" {
		return seedset.Parse(stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seeds: %w", err)
	}
	defer fh.Close()
	return seedset.Parse(fh)
}
