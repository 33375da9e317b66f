// Command genassets writes placeholder sprite sheets, a background and a
// font for the graphics front-end.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/younwookim/defender/internal/infrastructure/config"
	"github.com/younwookim/defender/internal/infrastructure/placeholder"
)

func main() {
	out := flag.String("out", "assets", "Output directory")
	configs := flag.String("configs", "cmd/game/configs", "Directory with display.json and sprites.json")
	seed := flag.Int64("seed", 0, "Background noise seed (0 picks one from the clock)")
	flag.Parse()

	cfg, err := config.NewLoader(*configs).LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if err := placeholder.Generate(*out, cfg.Display, cfg.Sprites, *seed); err != nil {
		log.Fatalf("Failed to generate assets: %v", err)
	}
	log.Printf("Placeholder assets written to %s (seed: %d)", *out, *seed)
}
