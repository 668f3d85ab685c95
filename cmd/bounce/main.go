package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vova616/bounce"
	"github.com/vova616/bounce/internal/log"
	"github.com/vova616/bounce/vect"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	frames     = flag.Int("frames", 0, "stop after this many frames, 0 runs until interrupted")
	fps        = flag.Int("fps", 60, "frames per second")
	sceneName  = flag.String("scene", "default", "scene to load: default, collide or wall")
)

var errDone = errors.New("frame limit reached")

type scene func(space *bounce.Space, cfg bounce.Config) error

var scenes = map[string]scene{
	"default": defaultScene,
	"collide": collideScene,
	"wall":    wallScene,
}

// defaultScene is what the sandbox boots with: one disc resting above a wall.
func defaultScene(space *bounce.Space, cfg bounce.Config) error {
	space.AddDisc(200, 200, cfg.DefaultRadius)
	space.AddSegment(100, 300, 500, 300)
	return nil
}

// collideScene sends two discs head-on into each other with an elastic pair.
func collideScene(space *bounce.Space, cfg bounce.Config) error {
	a := space.AddDisc(0, 0, cfg.DefaultRadius)
	b := space.AddDisc(300, 0, cfg.DefaultRadius)
	space.SetRestitution(a, b, 1)
	if err := space.SetVelocity(a, vect.Vect{X: 10}); err != nil {
		return err
	}
	return space.SetVelocity(b, vect.Vect{X: -10})
}

// wallScene drops a disc onto a wall with a soft bounce.
func wallScene(space *bounce.Space, cfg bounce.Config) error {
	disc := space.AddDisc(100, 100, 20)
	wall := space.AddSegment(0, 150, 200, 150)
	space.SetRestitution(disc, wall, 0.5)
	return space.SetVelocityPolar(disc, 50, 90)
}

func loadConfig() (bounce.Config, error) {
	if *configPath == "" {
		return bounce.DefaultConfig(), nil
	}
	return bounce.LoadConfigFile(*configPath)
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(cfg.Level())
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errDone) {
		logger.Error("bounce stopped", log.Err(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg bounce.Config, logger log.Log) error {
	build, ok := scenes[*sceneName]
	if !ok {
		return fmt.Errorf("unknown scene %q", *sceneName)
	}
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	space := bounce.NewSpace(bounce.WithConfig(cfg), bounce.WithLogger(logger))
	if err := build(space, cfg); err != nil {
		return fmt.Errorf("build scene %s: %w", *sceneName, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	toggle := make(chan struct{})
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watchPause(ctx, toggle)
	})
	g.Go(func() error {
		return loop(ctx, space, cfg, logger, toggle)
	})
	return g.Wait()
}

// watchPause turns SIGUSR1 into pause toggles for the frame loop.
func watchPause(ctx context.Context, toggle chan<- struct{}) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGUSR1)
	defer signal.Stop(sig)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sig:
			select {
			case toggle <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func loop(ctx context.Context, space *bounce.Space, cfg bounce.Config, logger log.Log, toggle <-chan struct{}) error {
	clock := bounce.NewFrameClock(cfg.TimeScale)
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-ctx.Done():
			logState(space, logger)
			return ctx.Err()
		case <-toggle:
			running := clock.Toggle()
			logger.Info("pause toggled", log.Bool("running", running))
		case now := <-ticker.C:
			if dt, ok := clock.Tick(now); ok {
				space.Step(dt)
			}
			frame++

			if frame%*fps == 0 {
				logState(space, logger)
			}
			if *frames > 0 && frame >= *frames {
				logState(space, logger)
				return errDone
			}
		}
	}
}

func logState(space *bounce.Space, logger log.Log) {
	for _, body := range space.Bodies() {
		logger.Info("body",
			log.String("label", body.Label()),
			log.String("shape", body.ShapeType().String()),
			log.Object("position", body.Position()),
			log.Object("velocity", body.Velocity()),
		)
	}
	logger.Info("state",
		log.Uint64("stamp", space.Stamp()),
		log.Int("bodies", space.Len()),
		log.Float64("energy", space.KineticEnergy()),
		log.String("fingerprint", fmt.Sprintf("%016x", space.Fingerprint())),
		log.Any("step_time", space.StepTime),
	)
}
