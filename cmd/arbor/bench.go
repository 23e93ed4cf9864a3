package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/arbor-ui/arbor/internal/log"
	"github.com/arbor-ui/arbor/pkg/backend"
	"github.com/arbor-ui/arbor/pkg/backend/memdom"
	"github.com/arbor-ui/arbor/pkg/mount"
	"github.com/arbor-ui/arbor/pkg/obs"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

func benchCmd(cfgPath *string) *cobra.Command {
	var items, iterations int
	var metricsAddr string
	var seed int64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark keyed reconciliation",
		Long: `Mount a keyed list into an in-memory document and repeatedly
patch it against shuffled permutations, reporting pass timings and
per-operation counts.

With --metrics-addr the run also exposes Prometheus metrics on
/metrics for scraping during long runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("items") {
				cfg.Bench.Items = items
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Bench.Iterations = iterations
			}
			if cmd.Flags().Changed("metrics-addr") {
				cfg.Metrics.Addr = metricsAddr
			}
			mount.Debug = cfg.Debug

			var metrics *obs.Metrics
			if cfg.Metrics.Addr != "" {
				reg := prometheus.NewRegistry()
				metrics = obs.NewMetrics(
					obs.WithRegistry(reg),
					obs.WithNamespace(cfg.Metrics.Namespace),
				)
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
				go func() {
					log.Info().Str("addr", cfg.Metrics.Addr).Msg("serving metrics")
					if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
						log.Error().Err(err).Msg("metrics server stopped")
					}
				}()
			}

			return runBench(cfg.Bench.Items, cfg.Bench.Iterations, seed, metrics)
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 1000, "keyed list size")
	cmd.Flags().IntVarP(&iterations, "iterations", "i", 100, "patch passes")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().Int64Var(&seed, "seed", 1, "shuffle seed")

	return cmd
}

func runBench(items, iterations int, seed int64, metrics *obs.Metrics) error {
	rng := rand.New(rand.NewSource(seed))

	keys := make([]int, items)
	for i := range keys {
		keys[i] = i
	}

	d := memdom.New()
	var b backend.Backend = d
	if metrics != nil {
		b = obs.InstrumentBackend(d, metrics)
	}
	st := mount.Mount(b, benchList(keys), d.Root(), nil)

	var total time.Duration
	var totalOps int
	for i := 0; i < iterations; i++ {
		rng.Shuffle(len(keys), func(a, b int) {
			keys[a], keys[b] = keys[b], keys[a]
		})
		d.ResetOps()

		start := time.Now()
		st = mount.Patch(b, st, benchList(keys))
		total += time.Since(start)
		totalOps += d.Ops().Mutations()
	}

	perPass := total / time.Duration(iterations)
	log.Info().
		Int("items", items).
		Int("iterations", iterations).
		Dur("total", total).
		Dur("per_pass", perPass).
		Int("avg_mutations", totalOps/iterations).
		Msg("bench complete")

	fmt.Printf("%d items, %d passes: %s/pass, %d avg mutations\n",
		items, iterations, perPass, totalOps/iterations)
	return nil
}

func benchList(keys []int) *vtree.VNode {
	items := make([]*vtree.VNode, 0, len(keys))
	for _, k := range keys {
		items = append(items, vtree.WithKey(vtree.Li(vtree.Textf("item %d", k)), k))
	}
	return vtree.Ul(vtree.Keyed(items...))
}
