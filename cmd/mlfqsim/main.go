// Command mlfqsim runs the mlfqsched scheduler against a JSON workload
// description and prints the stable trace events plus a completion summary.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironmancool/mlfqsched"
	"github.com/ironmancool/mlfqsched/metrics"
	"github.com/ironmancool/mlfqsched/trace"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		workloadPath string
		useLogrus    bool
		promAddr     string
	)

	cmd := &cobra.Command{
		Use:   "mlfqsim",
		Short: "Simulate the multi-level feedback queue scheduler against a workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(workloadPath)
			if err != nil {
				return fmt.Errorf("read workload: %w", err)
			}

			w, err := mlfqsched.ParseWorkload(data)
			if err != nil {
				return fmt.Errorf("parse workload: %w", err)
			}

			var sink trace.Sink
			if useLogrus {
				log := logrus.New()
				log.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})
				sink = trace.Logrus{Log: log}
			} else {
				sink = trace.Writer{W: os.Stdout}
			}

			reg := prometheus.NewRegistry()
			hook := metrics.NewPrometheusHook(reg)

			if promAddr != "" {
				go serveMetrics(promAddr, reg)
			}

			report := mlfqsched.Simulate(w, sink, hook)

			fmt.Printf("\nsimulation complete in %d ticks, %d threads finished\n",
				report.TicksElapsed, len(report.Completed))
			for _, c := range report.Completed {
				fmt.Printf("  thread %d completed at tick %d\n", c.ThreadID, c.CompletedAt)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workloadPath, "workload", "w", "", "path to a JSON workload file (required)")
	cmd.Flags().BoolVar(&useLogrus, "logrus", false, "emit trace events as structured logrus records instead of the stable plain-text form")
	cmd.Flags().StringVar(&promAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while the simulation runs")
	_ = cmd.MarkFlagRequired("workload")

	return cmd
}
