package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/holdem"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/phh"
	"github.com/lox/holdem-engine/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1E6E50")).
			Padding(0, 1).
			Bold(true)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0E7C8"))
)

type CLI struct {
	Verbose bool `short:"v" help:"Verbose logging"`

	Run    RunCmd    `cmd:"" default:"withargs" help:"Simulate hands with random players"`
	Fuzz   FuzzCmd   `cmd:"" help:"Run randomized hands checking chip conservation"`
	Export ExportCmd `cmd:"" help:"Play one hand and print it in PHH format"`
}

type RunCmd struct {
	Config string `short:"c" default:"sim.hcl" help:"HCL config file"`
	Hands  int    `help:"Override number of hands"`
	Seed   int64  `help:"Override RNG seed (0 for time-based)"`
}

type FuzzCmd struct {
	Hands   int   `default:"10000" help:"Number of hands to run"`
	Seats   int   `default:"6" help:"Players at the table"`
	Workers int   `default:"4" help:"Parallel workers"`
	Seed    int64 `help:"Base RNG seed (0 for time-based)"`
}

type ExportCmd struct {
	Seats int    `default:"6" help:"Players at the table"`
	BuyIn int    `default:"1000" help:"Starting stack"`
	Seed  int64  `help:"RNG seed (0 for time-based)"`
	Table string `default:"sim" help:"Table name recorded in the PHH output"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-sim"),
		kong.Description("Texas Hold'em engine simulator"))

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := ctx.Run(logger); err != nil {
		logger.Fatal("command failed", "error", err)
	}
}

func (c *RunCmd) Run(logger *log.Logger) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Sim.Hands = c.Hands
	}
	seed := c.Seed
	if seed == 0 {
		seed = cfg.Sim.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Println(titleStyle.Render(" holdem-sim "))

	for _, table := range cfg.Tables {
		start := time.Now()
		var hands, showdowns, exported atomic.Int64

		var eg errgroup.Group
		eg.SetLimit(cfg.Sim.Workers)
		for w := 0; w < cfg.Sim.Workers; w++ {
			w := w
			eg.Go(func() error {
				share := cfg.Sim.Hands / cfg.Sim.Workers
				if w < cfg.Sim.Hands%cfg.Sim.Workers {
					share++
				}
				workerSeed := randutil.Derive(seed, int64(w))
				for i := 0; i < share; i++ {
					hist, err := playHand(table, randutil.Derive(workerSeed, int64(i)))
					if err != nil {
						return err
					}
					hands.Add(1)
					if hist.Round(holdem.River) != nil {
						showdowns.Add(1)
					}
					if cfg.Sim.OutputDir != "" {
						if err := exportHand(cfg.Sim.OutputDir, table.Name, hist, &exported); err != nil {
							return err
						}
					}
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		fmt.Println(statStyle.Render(fmt.Sprintf(
			"table %s: %d hands in %s (%d reached the river, %d exported)",
			table.Name, hands.Load(), time.Since(start).Round(time.Millisecond),
			showdowns.Load(), exported.Load())))
	}
	return nil
}

func (c *FuzzCmd) Run(logger *log.Logger) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("fuzzing", "hands", c.Hands, "seats", c.Seats, "seed", seed)

	table := config.TableConfig{Name: "fuzz", Seats: c.Seats, BuyIn: 1000, SmallBlind: 5, BigBlind: 10}

	var eg errgroup.Group
	eg.SetLimit(c.Workers)
	for i := 0; i < c.Hands; i++ {
		handSeed := randutil.Derive(seed, int64(i))
		eg.Go(func() error {
			hist, err := playHand(table, handSeed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", handSeed, err)
			}
			total := 0
			for _, chips := range hist.Settle.FinalChips {
				total += chips
			}
			if want := table.Seats * table.BuyIn; total != want {
				return fmt.Errorf("seed %d: chips not conserved, got %d want %d\n%s",
					handSeed, total, want, hist)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	logger.Info("fuzz passed", "hands", c.Hands)
	return nil
}

func (c *ExportCmd) Run(logger *log.Logger) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	table := config.TableConfig{Name: c.Table, Seats: c.Seats, BuyIn: c.BuyIn, SmallBlind: 5, BigBlind: 10}
	hist, err := playHand(table, seed)
	if err != nil {
		return err
	}
	hand, err := phh.FromHistory(hist, c.Table, time.Now())
	if err != nil {
		return err
	}
	return phh.Encode(os.Stdout, hand)
}

// playHand runs one hand to completion with every seat playing uniformly at
// random over its legal moves.
func playHand(table config.TableConfig, seed int64) (*holdem.HandHistory, error) {
	g, err := holdem.New(table.Seats, table.BuyIn, table.SmallBlind, table.BigBlind,
		holdem.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	if err := g.StartHand(); err != nil {
		return nil, err
	}

	rng := randutil.New(seed)
	for g.IsHandRunning() {
		action, total := randomMove(rng, g)
		if err := g.TakeAction(action, total); err != nil {
			return nil, fmt.Errorf("%s rejected: %w", action, err)
		}
	}
	return g.History(), nil
}

func randomMove(rng *rand.Rand, g *holdem.Game) (holdem.ActionType, int) {
	ms := g.AvailableMoves()
	actions := ms.Actions()
	action := actions[rng.IntN(len(actions))]
	total := 0
	if action == holdem.Raise {
		total = ms.RaiseMin + rng.IntN(ms.RaiseMax-ms.RaiseMin+1)
	}
	return action, total
}

func exportHand(dir, table string, hist *holdem.HandHistory, exported *atomic.Int64) error {
	hand, err := phh.FromHistory(hist, table, time.Now())
	if err != nil {
		return err
	}
	data, err := phh.EncodeToBytes(hand)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	n := exported.Add(1)
	name := filepath.Join(dir, fmt.Sprintf("%s-%06d.phh", table, n))
	return os.WriteFile(name, data, 0o644)
}
