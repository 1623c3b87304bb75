package experiment

import (
	"fmt"
	"log/slog"

	"github.com/samuelfneumann/camctl/agent"
	env "github.com/samuelfneumann/camctl/environment"
	"github.com/samuelfneumann/camctl/experiment/tracker"
	"github.com/samuelfneumann/camctl/internal/log"
	ts "github.com/samuelfneumann/camctl/timestep"
	"github.com/samuelfneumann/camctl/utils/progressbar"
)

// Renderer renders an environment
type Renderer interface {
	Render(mode string) error
}

// Option is a functional option for configuring Online experiments.
type Option func(*Online)

// WithRenderer renders r in "human" mode after every timestep.
func WithRenderer(r Renderer) Option {
	return func(o *Online) {
		o.renderer = r
	}
}

// WithProgressBar displays the fraction of finished episodes on bar.
func WithProgressBar(bar *progressbar.ManualProgressBar) Option {
	return func(o *Online) {
		o.bar = bar
	}
}

// WithLogger sets the logger, which defaults to the global logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Online) {
		o.logger = l
	}
}

// Online is an Experiment that runs a policy online for a fixed number
// of episodes. The environment must end episodes, for example by being
// wrapped in a wrappers.Horizon.
type Online struct {
	env.Environment
	agent.Policy
	episodes       int
	currentEpisode int
	trackers       []tracker.Tracker

	renderer Renderer
	bar      *progressbar.ManualProgressBar
	logger   *slog.Logger
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The episodes parameter determines
// how many episodes the experiment is run for, and the t parameter is
// a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, p agent.Policy, episodes int,
	t []tracker.Tracker, opts ...Option) (*Online, error) {
	if episodes <= 0 {
		return nil, fmt.Errorf("newOnline: episodes must be positive, got %d",
			episodes)
	}

	o := &Online{
		Environment: e,
		Policy:      p,
		episodes:    episodes,
		trackers:    t,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.L()
	}

	return o, nil
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment and returns
// whether all episodes have been run
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	o.track(step)
	if err := o.render(); err != nil {
		return false, err
	}

	episodicReturn := 0.0
	for !step.Last() {
		// Select action, step in environment
		action := o.Policy.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: could not step: %w", err)
		}
		episodicReturn += step.Reward

		o.track(step)
		o.logger.Debug("step", "episode", o.currentEpisode, "step",
			step.Number, "action", action.AtVec(0), "reward", step.Reward)

		if err := o.render(); err != nil {
			return false, err
		}
	}

	o.currentEpisode++
	o.logger.Info("episode finished", "episode", o.currentEpisode,
		"return", episodicReturn, "steps", step.Number, "end",
		step.EndType())

	if o.bar != nil {
		o.bar.Increment()
		if err := o.bar.Display(); err != nil {
			return false, fmt.Errorf("runEpisode: could not display "+
				"progress: %w", err)
		}
	}

	return o.currentEpisode >= o.episodes, nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() error {
	for ended := o.currentEpisode >= o.episodes; !ended; {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return fmt.Errorf("run: episode %d: %w", o.currentEpisode, err)
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}

// render renders the environment if a renderer was given
func (o *Online) render() error {
	if o.renderer == nil {
		return nil
	}
	if err := o.renderer.Render("human"); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
