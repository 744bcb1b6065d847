package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mousany/dawn-breaker/internal/config"
	"github.com/mousany/dawn-breaker/internal/log"
	"github.com/mousany/dawn-breaker/internal/loop"
	"github.com/mousany/dawn-breaker/internal/rng"
)

type runStats struct {
	runIndex int
	seed     string

	ticks     int
	games     int
	level     int
	score     int
	bestScore int
	lives     int
	phase     loop.Phase
	deaths    int
	maxLevel  int
}

func main() {
	var runs int
	var ticks int
	var seedBase string
	var configPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&ticks, "ticks", 5400, "playing ticks per session")
	flag.StringVar(&seedBase, "seed", "dawn", "seed phrase; run i uses <seed>-<i>")
	flag.StringVar(&configPath, "config", config.GetEnv(config.EnvConfigPath, ""), "optional tuning file")
	flag.BoolVar(&verbose, "v", false, "log world events to stderr")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}

	tuning, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var logger log.Log = log.Nop()
	if verbose {
		l, err := log.New(log.LevelDebug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		logger = l
	}

	fmt.Printf("=== Headless Dawn Breaker Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed=%s lives=%d\n\n", runs, ticks, seedBase, tuning.Lives)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := fmt.Sprintf("%s-%d", seedBase, i+1)
		stats := runSession(i+1, seed, ticks, tuning.Lives, logger)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runSession plays one seeded session under the autopilot until it has
// played ticks frames or the game is over.
func runSession(runIndex int, seed string, ticks, lives int, logger log.Log) runStats {
	s := loop.NewSession(rng.FromPhrase(seed), loop.SessionOptions{
		ID:     fmt.Sprintf("run-%d", runIndex),
		Lives:  lives,
		Logger: logger,
	})
	pilot := &autopilot{}

	rs := runStats{runIndex: runIndex, seed: seed}
	last := s.Phase()
	for s.Ticks() < ticks && s.Running() {
		s.Step(pilot.next(s))
		phase := s.Phase()
		if phase != last && (phase == loop.PhaseDead || phase == loop.PhaseGameOver) {
			rs.deaths++
		}
		rs.maxLevel = max(rs.maxLevel, s.World().Level())
		last = phase
		if phase == loop.PhaseGameOver {
			break
		}
	}

	w := s.World()
	rs.ticks = s.Ticks()
	rs.games = s.Games()
	rs.level = w.Level()
	rs.score = w.Score()
	rs.bestScore = s.BestScore()
	rs.lives = w.Lives()
	rs.phase = s.Phase()
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%s) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result: phase=%s ticks=%d level=%d score=%d lives=%d deaths=%d\n",
		rs.phase, rs.ticks, rs.level, rs.score, rs.lives, rs.deaths)
	fmt.Println()
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	totalScore := 0
	totalTicks := 0
	bestLevel := 0
	gameOvers := 0
	for _, rs := range all {
		totalScore += rs.score
		totalTicks += rs.ticks
		bestLevel = max(bestLevel, rs.maxLevel)
		if rs.phase == loop.PhaseGameOver {
			gameOvers++
		}
	}
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_score=%.1f avg_ticks=%.1f best_level=%d game_overs=%d\n",
		avg(totalScore, len(all)), avg(totalTicks, len(all)), bestLevel, gameOvers)
}

func avg(sum int, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
