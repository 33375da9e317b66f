// Command tui runs the battle in a text terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/younwookim/defender/internal/application/system"
	"github.com/younwookim/defender/internal/infrastructure/config"
	"github.com/younwookim/defender/internal/infrastructure/metrics"
	"github.com/younwookim/defender/internal/infrastructure/telemetry"
	"github.com/younwookim/defender/internal/infrastructure/terminal"
)

// battleFactory seeds the first battle with seed and every restart from the clock
func battleFactory(seed int64, listeners []system.Listener) terminal.BattleFactory {
	return func() (*system.Battle, error) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		log.Printf("New battle (seed: %d)", seed)
		seed = 0

		b, err := system.NewBattle(rng)
		if err != nil {
			return nil, err
		}
		for _, l := range listeners {
			b.AddListener(l)
		}
		return b, nil
	}
}

func run() error {
	rt, err := config.LoadRuntime(".env")
	if err != nil {
		return err
	}
	flag.Int64Var(&rt.Seed, "seed", rt.Seed, "Random seed (0 picks one from the clock)")
	flag.BoolVar(&rt.Debug, "debug", rt.Debug, "Enable debug keys (h hurt, s charge, l force turn)")
	flag.StringVar(&rt.MetricsAddr, "metrics-addr", rt.MetricsAddr, "Serve Prometheus metrics on this address (e.g., :9090)")
	logFile := flag.String("log", "defender-tui.log", "Write the battle log to this file")
	tps := flag.Int("tps", 60, "Updates per second")
	flag.Parse()

	// The terminal belongs to tcell, so the log goes to a file
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listeners := []system.Listener{system.NewLogListener(log.Default())}

	if rt.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		m, err := metrics.New(reg)
		if err != nil {
			log.Printf("Warning: metrics disabled: %v", err)
		} else {
			srv := metrics.StartHTTP(rt.MetricsAddr, reg)
			defer srv.Close()
			listeners = append(listeners, m.Listener())
		}
	}

	if rt.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			bt := telemetry.NewBattleTracer(ctx, telemetry.Tracer("battle"))
			listeners = append(listeners, bt.Listener())
			defer func() {
				bt.End()
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Close()

	app, err := terminal.NewApp(screen, battleFactory(rt.Seed, listeners), *tps, rt.Debug)
	if err != nil {
		return err
	}
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "defender-tui: %v\n", err)
		os.Exit(1)
	}
}
