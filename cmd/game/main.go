package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/younwookim/defender/internal/application/game"
	"github.com/younwookim/defender/internal/application/replay"
	"github.com/younwookim/defender/internal/application/scene/playing"
	"github.com/younwookim/defender/internal/application/system"
	"github.com/younwookim/defender/internal/infrastructure/assets"
	"github.com/younwookim/defender/internal/infrastructure/config"
	"github.com/younwookim/defender/internal/infrastructure/metrics"
	"github.com/younwookim/defender/internal/infrastructure/placeholder"
	"github.com/younwookim/defender/internal/infrastructure/telemetry"
)

// loadConfig reads display.json and sprites.json from the embedded configs
func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// loadAssets loads textures and fonts from dir. A missing dir is filled
// with generated placeholder art first.
func loadAssets(dir string, cfg *config.GameConfig, seed int64) (*assets.Set, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		log.Printf("Assets directory %s not found, generating placeholders", dir)
		if err := placeholder.Generate(dir, cfg.Display, cfg.Sprites, seed); err != nil {
			return nil, fmt.Errorf("generate assets: %w", err)
		}
	}
	set, err := assets.Load(os.DirFS(dir), cfg.Display, cfg.Sprites)
	if err != nil {
		return nil, fmt.Errorf("load assets from %s: %w", dir, err)
	}
	return set, nil
}

// observers holds the battle listeners that report outside the game window
type observers struct {
	listeners []system.Listener
	closers   []func()
}

func (o *observers) close() {
	for i := len(o.closers) - 1; i >= 0; i-- {
		o.closers[i]()
	}
}

// setupObservers wires logging, and metrics and tracing when enabled.
// Metrics and tracing failures only produce a warning.
func setupObservers(ctx context.Context, rt *config.Runtime, reg *prometheus.Registry) *observers {
	o := &observers{
		listeners: []system.Listener{system.NewLogListener(log.Default())},
	}

	if rt.MetricsAddr != "" {
		m, err := metrics.New(reg)
		if err != nil {
			log.Printf("Warning: metrics disabled: %v", err)
		} else {
			srv := metrics.StartHTTP(rt.MetricsAddr, reg)
			o.listeners = append(o.listeners, m.Listener())
			o.closers = append(o.closers, func() { _ = srv.Close() })
		}
	}

	if rt.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry disabled: %v", err)
		} else {
			bt := telemetry.NewBattleTracer(ctx, telemetry.Tracer("battle"))
			o.listeners = append(o.listeners, bt.Listener())
			o.closers = append(o.closers, func() {
				bt.End()
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(sctx); err != nil {
					log.Printf("Telemetry shutdown: %v", err)
				}
			})
		}
	}
	return o
}

func run() error {
	rt, err := config.LoadRuntime(".env")
	if err != nil {
		return err
	}
	rt.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := rt.ResolveSeed()
	set, err := loadAssets(rt.AssetsDir, cfg, seed)
	if err != nil {
		return err
	}

	var rep *replay.Data
	if rt.Replay != "" {
		rep, err = replay.LoadReplay(rt.Replay)
		if err != nil {
			return fmt.Errorf("load replay: %w", err)
		}
	}

	obs := setupObservers(context.Background(), rt, prometheus.NewRegistry())
	defer obs.close()

	scn, err := playing.New(playing.Options{
		Config:     cfg,
		Assets:     set,
		Seed:       seed,
		RecordPath: rt.Record,
		Replay:     rep,
		Debug:      rt.Debug,
		Listeners:  obs.listeners,
	})
	if err != nil {
		return err
	}

	win := cfg.Display.Window
	g := game.New(scn, win.Width, win.Height)
	g.SetFramerate(win.Framerate)

	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetTPS(win.Framerate)

	return ebiten.RunGame(g)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("defender: %v", err)
	}
}
