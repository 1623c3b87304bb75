package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/camctl/dataset"
	"github.com/samuelfneumann/camctl/environment/envconfig"
	"github.com/samuelfneumann/camctl/experiment"
	"github.com/samuelfneumann/camctl/internal/config"
	"github.com/samuelfneumann/camctl/internal/log"
	"github.com/samuelfneumann/camctl/render"
	"github.com/samuelfneumann/camctl/utils/progressbar"
)

// persons is the number of persons in the synthetic table, covering
// both the default training and testing pools
const persons = 30

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "camctl",
		Short:        "Pan/tilt camera control environment",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(config.LogLevel())
		},
	}

	cmd.AddCommand(runCommand())
	return cmd
}

func runCommand() *cobra.Command {
	var (
		episodes    uint
		horizon     uint
		seed        uint64
		testing     bool
		interactive bool
		renderDir   string
		window      bool
		savePath    string
		progress    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a uniform random policy in the camera environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			envConf := envconfig.DefaultConfig(horizon)
			envConf.Testing = testing
			envConf.Interactive = interactive

			c := experiment.Config{
				Type:     experiment.OnlineExp,
				Episodes: episodes,
				Seed:     seed,
				EnvConf:  envConf,
				SavePath: savePath,
			}
			if err := c.Record(); err != nil {
				return err
			}
			logger := log.With("run", c.RunID)

			var (
				display render.Display
				err     error
			)
			switch {
			case window:
				if display, err = newWindow(cmd.OutOrStdout()); err != nil {
					return err
				}
			case renderDir != "":
				if display, err = render.NewPNG(renderDir, cmd.InOrStdin(),
					cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			grid, err := envConf.Grid()
			if err != nil {
				return err
			}
			ids := make([]int, persons)
			for i := range ids {
				ids[i] = i
			}
			logger.Info("generating synthetic frames", "persons", persons,
				"tilts", len(grid.Tilts), "pans", len(grid.Pans))
			table := dataset.Synthetic(ids, grid.Tilts, grid.Pans, seed)

			opts := []experiment.Option{experiment.WithLogger(logger)}
			if progress {
				opts = append(opts, experiment.WithProgressBar(
					progressbar.NewManualProgressBar(50, int(episodes),
						cmd.OutOrStdout())))
			}

			exp, cam, err := c.CreateExp(table, display, opts...)
			if err != nil {
				return err
			}
			defer cam.Close()

			logger.Info("starting experiment", "episodes", episodes,
				"horizon", horizon, "testing", testing, "dir", c.Dir())
			if err := exp.Run(); err != nil {
				return err
			}
			if err := exp.Save(); err != nil {
				return fmt.Errorf("could not save data: %w", err)
			}

			sum := cam.Statistics().Summary()
			logger.Info("experiment finished", "episodes", sum.Episodes,
				"initial_tilt", sum.InitialTilt, "initial_pan",
				sum.InitialPan, "final_tilt", sum.FinalTilt, "final_pan",
				sum.FinalPan)
			return nil
		},
	}

	cmd.Flags().UintVarP(&episodes, "episodes", "e", 10, "number of episodes")
	cmd.Flags().UintVar(&horizon, "horizon", 50, "steps per episode")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 1, "random seed")
	cmd.Flags().BoolVar(&testing, "testing", false,
		"draw persons from the testing pool")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"wait for a keypress after rendering each step")
	cmd.Flags().StringVar(&renderDir, "render-dir", "",
		"save rendered frames as PNG files in this directory")
	cmd.Flags().BoolVar(&window, "window", false,
		"render frames in OpenCV windows (requires the gocv build tag)")
	cmd.Flags().StringVar(&savePath, "save-path", config.SavePath(),
		"directory in which run data is saved")
	cmd.Flags().BoolVarP(&progress, "progress", "p", false,
		"display a progress bar")

	return cmd
}
