// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/samuelfneumann/camctl/agent/random"
	"github.com/samuelfneumann/camctl/dataset"
	"github.com/samuelfneumann/camctl/environment/camera"
	"github.com/samuelfneumann/camctl/environment/envconfig"
	"github.com/samuelfneumann/camctl/experiment/tracker"
	"github.com/samuelfneumann/camctl/render"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep
// in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method will
// run all episodes of the experiment. The RunEpisode() function will
// run a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. New Trackers
// can be registered with an Experiment through the constructor or
// through an Experiment's Register() function.
type Experiment interface {
	Run() error

	// RunEpisode returns whether or not the experiment has finished
	RunEpisode() (bool, error)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Names of the files written to the run directory
const (
	ConfigFile        = "config.json"
	ReturnFile        = "return.bin"
	EpisodeLengthFile = "episode_length.bin"
	StatisticsFile    = "statistics.bin"
)

// Config represents a configuration of an experiment. Experiments run
// a uniform random policy in the configured environment.
type Config struct {
	Type
	Episodes uint
	Seed     uint64
	EnvConf  envconfig.Config
	SavePath string

	// RunID names the directory in SavePath to which the experiment's
	// data is saved. It is set by Record.
	RunID string `json:",omitempty"`
}

// Dir returns the directory to which the experiment's data is saved
func (c Config) Dir() string {
	return filepath.Join(c.SavePath, c.RunID)
}

// Record assigns the Config a new run ID if it has none and writes the
// Config as JSON to the run directory
func (c *Config) Record() error {
	if c.RunID == "" {
		c.RunID = uuid.New().String()
	}

	if err := os.MkdirAll(c.Dir(), 0o755); err != nil {
		return fmt.Errorf("record: could not create run directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("record: could not encode config: %w", err)
	}

	filename := filepath.Join(c.Dir(), ConfigFile)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("record: could not write config: %w", err)
	}
	return nil
}

// PolicySeed returns the seed of the policy in an experiment whose
// environment is seeded with seed, so that the two do not share a
// random stream
func PolicySeed(seed uint64) uint64 {
	return seed + 1
}

// LoadConfig loads a Config written by Record
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: could not decode config: "+
			"%w", err)
	}
	return c, nil
}

// CreateExp creates the experiment described by the Config, looking up
// frames in lookup and rendering to display, which may be nil. The
// experiment tracks episodic returns, episode lengths, and the camera
// statistics, saving them to the run directory. The Config must have
// been recorded.
func (c Config) CreateExp(lookup dataset.Lookup, display render.Display,
	opts ...Option) (Experiment, *camera.Env, error) {
	if c.RunID == "" {
		return nil, nil, fmt.Errorf("createExp: config has no run ID, " +
			"call Record first")
	}
	if c.EnvConf.EpisodeCutoff == 0 {
		return nil, nil, fmt.Errorf("createExp: episode cutoff must be " +
			"positive, the camera environment never ends episodes")
	}

	e, cam, err := c.EnvConf.Create(lookup, c.Seed, display)
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: could not create "+
			"environment: %w", err)
	}

	policy, err := random.New(e.ActionSpec(), PolicySeed(c.Seed))
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: could not create policy: "+
			"%w", err)
	}

	trackers := []tracker.Tracker{
		tracker.NewReturn(filepath.Join(c.Dir(), ReturnFile)),
		tracker.NewEpisodeLength(filepath.Join(c.Dir(), EpisodeLengthFile)),
		tracker.NewStatistics(cam, filepath.Join(c.Dir(), StatisticsFile)),
	}
	if display != nil {
		opts = append(opts, WithRenderer(cam))
	}

	switch c.Type {
	case OnlineExp:
		exp, err := NewOnline(e, policy, int(c.Episodes), trackers, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("createExp: %w", err)
		}
		return exp, cam, nil
	}

	return nil, nil, fmt.Errorf("createExp: no such experiment type %v",
		c.Type)
}
