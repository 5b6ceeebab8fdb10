package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/lixenwraith/skyfarer/audio"
	"github.com/lixenwraith/skyfarer/config"
	"github.com/lixenwraith/skyfarer/core"
	"github.com/lixenwraith/skyfarer/engine"
	"github.com/lixenwraith/skyfarer/event"
	"github.com/lixenwraith/skyfarer/input"
	"github.com/lixenwraith/skyfarer/ledger"
	"github.com/lixenwraith/skyfarer/parameter"
	"github.com/lixenwraith/skyfarer/render"
	"github.com/lixenwraith/skyfarer/sandbox"
	"github.com/lixenwraith/skyfarer/scene"
	"github.com/lixenwraith/skyfarer/spawn"
	"github.com/lixenwraith/skyfarer/status"
	"github.com/lixenwraith/skyfarer/system"
	"github.com/lixenwraith/skyfarer/vmath"
)

var (
	configFlag = flag.String("config", "", "Config file (toml, yaml or json)")
	layoutFlag = flag.String("layout", "", "Scene layout file, overrides world.layout")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under log.dir")
	scoresFlag = flag.Bool("scores", false, "Print the best recorded sessions and exit")
	seedFlag   = flag.Uint64("seed", 0, "World seed, overrides world.seed")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *layoutFlag != "" {
		cfg.World.Layout = *layoutFlag
	}
	if *seedFlag != 0 {
		cfg.World.Seed = *seedFlag
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger, logFile := setupLogging(*debugFlag || cfg.Log.Debug, cfg.Log.Dir, level)
	if logFile != nil {
		defer logFile.Close()
	}

	if *scoresFlag {
		if err := printScores(cfg.Ledger.Path, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func printScores(path string, logger zerolog.Logger) error {
	if path == "" {
		return fmt.Errorf("ledger.path is not set")
	}
	l, err := ledger.Open(path, logger)
	if err != nil {
		return err
	}
	defer l.Close()

	best, err := l.Best(10)
	if err != nil {
		return err
	}
	for i, s := range best {
		fmt.Printf("%2d. %5d credits  %5d destroyed  %s  seed %d\n",
			i+1, s.Credits, s.Destroyed, s.EndedAt.Format(time.DateTime), uint64(s.Seed))
	}
	return nil
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)
	logger.Info().Uint64("seed", seed).Msg("starting")

	layout := scene.Default()
	layout.FieldCount = cfg.World.FieldCount
	if cfg.World.Layout != "" {
		l, err := scene.Load(cfg.World.Layout)
		if err != nil {
			return err
		}
		layout = l
	}

	table := input.DefaultKeyTable()
	if cfg.Input.Keymap != "" {
		data, err := os.ReadFile(cfg.Input.Keymap)
		if err != nil {
			return fmt.Errorf("read keymap: %w", err)
		}
		if table, err = input.LoadKeymap(table, data); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetCrashFinisher(screen)
	defer screen.Fini()

	// Host and world
	queue := event.NewContactQueue()
	host := sandbox.New(queue, cfg.SandboxParams(), logger)
	world := engine.NewWorld(host, logger)
	reg := status.NewRegistry()
	if _, err := reg.Export(otel.Meter("github.com/lixenwraith/skyfarer")); err != nil {
		logger.Warn().Err(err).Msg("status export unavailable")
	}

	// Feedback
	var out audio.Output
	if cfg.Audio.Enabled {
		spk, err := audio.NewSpeaker(beep.SampleRate(parameter.AudioSampleRate), parameter.AudioBufferLatency)
		if err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, running silent")
		} else {
			out = spk
			defer spk.Close()
		}
	}
	pool := audio.NewExplosionPool(cfg.Audio.PoolSize, beep.SampleRate(parameter.AudioSampleRate),
		cfg.Audio.Volume, out, rng, logger)
	radar := render.NewRadar(screen, world, reg, cfg.Render.Scale)

	// Systems
	camera := system.NewCameraSystem(radar)
	control := system.NewControlSystem(world, camera, cfg.ThrustParams(), logger)
	dispatcher := input.NewDispatcher(table, cfg.Input.RepeatInterval, control, logger)
	release := input.NewReleaseDetector(cfg.Input.HoldInitial, cfg.Input.HoldRepeat)

	world.AddSystem(dispatcher)
	world.AddSystem(system.NewPeriodicSystem(world, rng))
	world.AddSystem(engine.NewStepSystem(host))
	world.AddSystem(system.NewContactSystem(world, queue, reg, system.Feedback{Sound: pool, Effects: radar}, logger))
	world.AddSystem(system.NewStatusSystem(world, reg))
	world.AddSystem(camera)

	factory := spawn.NewFactory(world, rng, cfg.SpawnParams(), logger)
	summary, err := layout.Build(factory)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	logger.Info().
		Int("obstacles", summary.Obstacles).
		Int("bricks", summary.Bricks).
		Int("collectors", summary.Collectors).
		Msg("scene built")

	started := time.Now()
	loop(screen, world, radar, pool, dispatcher, release, cfg.Physics.Tick)

	return recordSession(cfg.Ledger.Path, &ledger.Session{
		StartedAt: started,
		EndedAt:   time.Now(),
		Credits:   reg.Score.Value(),
		Destroyed: reg.Int(status.MetricObstaclesDestroyed).Load(),
		Seed:      int64(seed),
	}, logger)
}

// loop runs the fixed-step simulation until the quit chord
func loop(screen tcell.Screen, world *engine.World, radar *render.Radar, pool *audio.Pool,
	dispatcher *input.Dispatcher, release *input.ReleaseDetector, tick time.Duration) {

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
					radar.SetMuted(pool.ToggleMute())
					continue
				}
				k, ok := keyFromEvent(ev)
				if !ok {
					continue
				}
				// Autorepeat events only extend the hold
				if release.Observe(k) {
					dispatcher.KeyDown(k)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			for _, k := range release.Advance(tick) {
				dispatcher.KeyUp(k)
			}
			world.Update(tick)
			radar.Update(tick)
			radar.Draw()
		}
	}
}

func recordSession(path string, s *ledger.Session, logger zerolog.Logger) error {
	if path == "" {
		return nil
	}
	l, err := ledger.Open(path, logger)
	if err != nil {
		return err
	}
	defer l.Close()
	return l.Record(s)
}
