// Command sundae shows the layered ice cream composite.
//
// By default it opens a window. With -output it renders once and writes a
// PNG instead, which needs no GPU.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/sundae"
	"github.com/gogpu/sundae/fonts"
	"github.com/gogpu/sundae/internal/config"
	"github.com/google/uuid"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		assets     = flag.String("assets", "", "directory holding the images")
		background = flag.String("background", "", "background1, background2 or random")
		seed       = flag.Uint64("seed", 0, "random seed for the background choice (0 = time based)")
		output     = flag.String("output", "", "render to this PNG file instead of opening a window")
		trace      = flag.Bool("trace", false, "print the draw calls of each render")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("sundae: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			cfg.Assets = *assets
		case "background":
			cfg.Background = *background
		case "seed":
			cfg.Seed = *seed
		case "output":
			cfg.Output = *output
		case "trace":
			cfg.Trace = *trace
		case "v":
			if *verbose {
				cfg.Log.Level = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("sundae: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("sundae: %v", err)
	}
}

func run(cfg config.Config) error {
	logger := cfg.NewLogger(os.Stderr).With("session", uuid.NewString())
	sundae.SetLogger(logger)
	gg.SetLogger(logger)

	bg, err := chooseBackground(cfg.Background, cfg.Seed)
	if err != nil {
		return err
	}
	assets, err := cfg.AssetsDir()
	if err != nil {
		// Missing assets only cost layers; the view still comes up.
		logger.Warn("sundae: assets directory unavailable", "err", err)
	}

	profile := cfg.Profile()
	faces, err := loadFonts(cfg, profile)
	if err != nil {
		return err
	}

	v, err := sundae.New(bg,
		sundae.WithLoader(sundae.FileLoader{Root: assets}),
		sundae.WithProfile(profile),
		sundae.WithStatusDescription(cfg.StatusDescription),
		sundae.WithLogger(logger))
	if err != nil {
		return err
	}
	if missing, err := faces.Coverage(profile.Text.Weight, v.StatusText()); err == nil && len(missing) > 0 {
		logger.Warn("sundae: status text has runes the font cannot draw", "runes", string(missing))
	}

	fmt.Println("Added Component: " + v.DescribeTopLayer())
	logger.Info("sundae: composite", "description", v.Description(), "status", v.StatusText())

	if cfg.Output != "" {
		return renderPNG(v, faces, cfg.Output, cfg.Trace)
	}
	return runWindow(v, faces, cfg.Trace)
}

// chooseBackground parses name, or picks uniformly at random for "random".
func chooseBackground(name string, seed uint64) (sundae.Background, error) {
	if name != config.BackgroundRandom {
		return sundae.ParseBackground(name)
	}
	if seed == 0 {
		// #nosec G115 -- any bit pattern is a fine seed
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(seed, seed>>1))
	all := sundae.Backgrounds()
	return all[r.IntN(len(all))], nil
}

func loadFonts(cfg config.Config, p sundae.Profile) (*fonts.Set, error) {
	set := fonts.NewSet()
	if cfg.Font != "" {
		if err := set.Load(p.Text.Weight, cfg.Font); err != nil {
			return nil, err
		}
	}
	if cfg.Shaper == "harfbuzz" {
		fonts.UseHarfBuzz()
	}
	return set, nil
}
