package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"reefworld/internal/config"
	"reefworld/internal/preview"
	"reefworld/internal/profiling"
	"reefworld/internal/reef"
)

const usage = `usage: reefgen <command> [flags]

commands:
  world    build the chunk grid, populate it and print a summary
  coral    grow a single coral and print its size
  config   write the default configuration to a file
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "world":
		err = runWorld(os.Args[2:])
	case "coral":
		err = runCoral(os.Args[2:])
	case "config":
		err = runConfig(os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		slog.Error("reefgen failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

type commonFlags struct {
	configPath string
	seed       int64
	out        string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "path to YAML configuration (defaults when empty)")
	fs.Int64Var(&c.seed, "seed", 0, "override the configured seed when non-zero")
	fs.StringVar(&c.out, "out", "", "write a PNG preview to this path")
}

func (c *commonFlags) load() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.seed != 0 {
		cfg.Seed = c.seed
	}
	slog.SetDefault(reef.NewLogger(os.Stderr, cfg.LogLevel))
	return cfg, nil
}

func runWorld(args []string) error {
	fs := flag.NewFlagSet("world", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	rebuilds := fs.Int("rebuilds", 0, "extra full rebuilds to run after the first")
	ticks := fs.Int("ticks", 0, "parameter drift steps to apply between rebuilds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	s, err := reef.NewSession(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer s.Close()

	for i := 0; i < *rebuilds; i++ {
		for j := 0; j < *ticks; j++ {
			s.Tick()
		}
		if err := s.RebuildWorld(); err != nil {
			return err
		}
	}

	st := s.Stats()
	fmt.Printf("chunks: %d\nsurface vertices: %d\nlife: %d\n", st.Chunks, st.Vertices, st.Life)
	names := make([]string, 0, len(st.BySpecies))
	for name := range st.BySpecies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-16s %d\n", name, st.BySpecies[name])
	}

	if common.out != "" {
		opts := preview.DefaultOptions()
		opts.Caption = fmt.Sprintf("seed %d  chunks %d  life %d", cfg.Seed, st.Chunks, st.Life)
		if err := preview.SavePNG(common.out, preview.Render(s.WorldScene(), opts)); err != nil {
			return err
		}
		slog.Info("preview written", "path", common.out)
	}
	fmt.Println(profiling.TopN(5))
	return nil
}

func runCoral(args []string) error {
	fs := flag.NewFlagSet("coral", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	depth := fs.Int("depth", 0, "recursion depth, overriding growth.iterations when non-zero")
	fixed := fs.Bool("fixed", false, "use the configured angles instead of redrawing them per node")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	if *depth != 0 {
		cfg.Growth.Iterations = *depth
	}
	if *fixed {
		cfg.Growth.Randomize = false
	}
	// the world is not needed here
	cfg.World.RenderDistance, cfg.World.RenderDistanceVertical = 0, 0
	cfg.World.PopulateLife = false

	s, err := reef.NewSession(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer s.Close()

	m := s.Showcase.Mesh()
	fmt.Printf("depth: %d\nprimitives: %d\nvertices: %d\ntriangles: %d\n",
		cfg.Growth.Iterations, s.Showcase.Primitives(), m.VertexCount(), m.TriangleCount())
	if lo, hi, ok := m.Bounds(); ok {
		fmt.Printf("bounds: %v .. %v\n", lo, hi)
	}

	if common.out != "" {
		opts := preview.DefaultOptions()
		opts.Caption = fmt.Sprintf("depth %d  primitives %d", cfg.Growth.Iterations, s.Showcase.Primitives())
		if err := preview.SavePNG(common.out, preview.Render(s.CoralScene(), opts)); err != nil {
			return err
		}
		slog.Info("preview written", "path", common.out)
	}
	fmt.Println(profiling.TopN(5))
	return nil
}

func runConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("out", "reef.yaml", "destination file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.Save(config.Default(), *out); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *out)
	return nil
}
