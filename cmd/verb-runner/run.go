package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/verb-runner/audio"
	"github.com/lixenwraith/verb-runner/config"
	"github.com/lixenwraith/verb-runner/core"
	"github.com/lixenwraith/verb-runner/engine"
	"github.com/lixenwraith/verb-runner/event"
	"github.com/lixenwraith/verb-runner/input"
	vrlog "github.com/lixenwraith/verb-runner/log"
	"github.com/lixenwraith/verb-runner/parameter"
	"github.com/lixenwraith/verb-runner/render"
	"github.com/lixenwraith/verb-runner/status"
	"github.com/lixenwraith/verb-runner/vocab"
)

func run(cfg config.Config) error {
	logger, closer, err := vrlog.Setup(vrlog.Options{
		Enabled: cfg.Debug,
		Dir:     cfg.LogDir,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	defer logger.Sync()
	defer zap.RedirectStdLog(logger)()

	// Malformed vocabulary fails before the terminal is touched
	table, err := vocab.NewTable(vocab.DefaultVerbs)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Volume)
	if cfg.Audio {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	queue := event.NewEventQueue()
	router := event.NewRouter(queue)
	scene := render.NewScene()
	field := input.NewField()
	router.Register(scene)
	router.Register(field)
	router.Register(audio.NewCues(sound))

	reg := status.NewRegistry()
	session := engine.NewSession(parameter.DefaultRace(), table, nil)
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), cfg.MaxFrameDelta)
	game := engine.NewGame(session, queue, clock, reg, logger, cfg.CellUnits)
	renderer := render.NewRenderer(screen, cfg.CellUnits)

	width, _ := screen.Size()
	game.Resize(width)

	logger.Info("verb runner started",
		zap.Int("verbs", table.Len()),
		zap.Int("fps", cfg.FPS),
		zap.Bool("audio", sound.Initialized()),
	)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, game, field, sound) {
					logger.Info("quit requested")
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				w, _ := ev.Size()
				game.Resize(w)
			}

		case <-ticker.C:
			game.Frame()
			router.DispatchAll()

			var metrics []string
			if cfg.Debug {
				metrics = reg.Snapshot()
			}
			renderer.Draw(scene, field, metrics)
		}
	}
}

// handleKey applies one key press; returns false on quit
func handleKey(ev *tcell.EventKey, game *engine.Game, field *input.Field, sound *audio.SoundManager) bool {
	in := input.Translate(ev, game.Phase())
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentToggleEffectMute:
		sound.ToggleMute()
	case input.IntentStart:
		game.RequestStart()
	case input.IntentSubmit:
		if field.Enabled() {
			game.Submit(field.Value())
		}
	default:
		field.Apply(in)
	}
	return true
}
