// Command evacsim runs one or more Monte-Carlo replicas of the building
// evacuation simulator from a YAML configuration document and a parsed
// building document, printing a completion-time summary.
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evacsim/agent"
	"github.com/katalvlaran/evacsim/building"
	"github.com/katalvlaran/evacsim/config"
	"github.com/katalvlaran/evacsim/engine"
	"github.com/katalvlaran/evacsim/evacsimlog"
	"github.com/katalvlaran/evacsim/graphbuild"
	"github.com/katalvlaran/evacsim/metrics"
	"github.com/katalvlaran/evacsim/planner"
	"github.com/katalvlaran/evacsim/reroute"
)

const (
	speedFloor = 0.6
	speedCeil  = 2.0
)

func main() {
	buildingPath := pflag.String("building", "", "path to a YAML building document")
	configPath := pflag.String("config", "", "path to a YAML planner/policy/engine config document")
	replicas := pflag.Int("replicas", 1, "number of independent Monte-Carlo replicas")
	baseSeed := pflag.Int64("seed", 1, "base RNG seed; replica i uses seed+i")
	verbose := pflag.Bool("verbose", false, "enable debug logging")
	pflag.Parse()

	if *verbose {
		evacsimlog.SetEnabled(true)
	}

	if *buildingPath == "" {
		fmt.Fprintln(os.Stderr, "evacsim: --building is required")
		os.Exit(2)
	}

	if err := run(*buildingPath, *configPath, *replicas, *baseSeed); err != nil {
		fmt.Fprintln(os.Stderr, "evacsim:", err)
		os.Exit(1)
	}
}

func run(buildingPath, configPath string, replicas int, baseSeed int64) error {
	doc, err := loadBuildingDocument(buildingPath)
	if err != nil {
		return fmt.Errorf("load building: %w", err)
	}

	loaded := defaultLoaded()
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		loaded, err = config.LoadDocument(raw)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(replicas)

	results := make([]engine.Result, replicas)
	var stats metrics.Counters

	for i := 0; i < replicas; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			seed := baseSeed + int64(i)
			stats.IncReplicaStarted()

			res, agents, err := runReplica(doc, loaded, seed)
			if err != nil {
				return fmt.Errorf("replica %d: %w", i, err)
			}

			results[i] = res
			stats.AddAgentsCompleted(len(res.CompletionTimes))
			stranded := 0
			for _, a := range agents {
				if !a.Done {
					stranded++
				}
			}
			stats.AddAgentsStranded(stranded)
			stats.IncReplicaCompleted()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	printSummary(results, stats.Snapshot())

	return nil
}

func loadBuildingDocument(path string) (building.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return building.Document{}, err
	}

	var doc building.Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return building.Document{}, fmt.Errorf("decode yaml: %w", err)
	}

	return doc, nil
}

func defaultLoaded() config.Loaded {
	return config.Loaded{
		Planner: config.DefaultPlannerConfig(),
		Policy:  config.PolicyParams{MaxStuckTime: config.InfStuckTime, CongestionThreshold: 10},
		Engine:  config.DefaultEngineParams(),
	}
}

// runReplica builds an independent Building, samples per-agent speeds from
// a truncated Gaussian, plans each agent's initial route, and runs the
// tick engine to completion.
func runReplica(doc building.Document, loaded config.Loaded, seed int64) (engine.Result, []*agent.Agent, error) {
	b, err := building.FromDocument(doc)
	if err != nil {
		return engine.Result{}, nil, fmt.Errorf("build: %w", err)
	}

	params := loaded.Engine
	params.RNGSeed = &seed

	speedDist := distuv.Normal{Mu: 1.3, Sigma: 0.26, Src: rand.NewSource(seed)}

	projected := graphbuild.Project(b, loaded.Planner, nil)
	posMap := graphbuild.BuildPositionMap(b)

	agents := make([]*agent.Agent, 0, len(doc.Nodes))
	idx := 0
	for _, n := range doc.Nodes {
		if n.Type == building.Room {
			path, err := planner.AStar(projected, posMap, n.ID, building.SuperExit)
			if err != nil {
				return engine.Result{}, nil, fmt.Errorf("initial plan for %s: %w", n.ID, err)
			}
			if len(path) == 0 {
				continue
			}

			speed := sampleTruncatedSpeed(&speedDist)
			agents = append(agents, agent.New(idx, path, building.SuperExit, speed))
			idx++
		}
	}

	policy := reroute.FromParams(loaded.Policy)
	e := engine.New(b, agents, loaded.Planner, policy, params, nil)

	res, err := e.Run()
	if err != nil {
		return engine.Result{}, agents, err
	}

	return res, agents, nil
}

// sampleTruncatedSpeed resamples until a draw lands in [speedFloor,
// speedCeil], as the simulator's source does for walking-speed sampling.
func sampleTruncatedSpeed(d *distuv.Normal) float64 {
	for i := 0; i < 100; i++ {
		v := d.Rand()
		if v >= speedFloor && v <= speedCeil {
			return v
		}
	}

	return math.Max(speedFloor, math.Min(speedCeil, d.Mu))
}

func printSummary(results []engine.Result, snap metrics.Snapshot) {
	fmt.Printf("replicas: %d started, %d completed\n", snap.ReplicasStarted, snap.ReplicasCompleted)
	fmt.Printf("agents completed: %d, stranded: %d\n", snap.AgentsCompleted, snap.AgentsStranded)

	for i, res := range results {
		if len(res.CompletionTimes) == 0 {
			fmt.Printf("replica %d: no completions\n", i)
			continue
		}

		sum := 0.0
		for _, ct := range res.CompletionTimes {
			sum += ct
		}
		mean := sum / float64(len(res.CompletionTimes))
		fmt.Printf("replica %d: %d completions, mean finish time %.2fs, last finish %.2fs\n",
			i, len(res.CompletionTimes), mean, res.CompletionTimes[len(res.CompletionTimes)-1])
	}
}
