package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goalsim/goalsim/internal/config"
	"github.com/goalsim/goalsim/internal/output"
	"github.com/goalsim/goalsim/internal/server"
	"github.com/goalsim/goalsim/internal/simulation"
)

// simpleCLILogger implements simulation.Logger using the standard log package.
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "goalsim",
	Short: "Savings goal Monte Carlo simulator",
	Long:  "Estimates the probability that a savings plan reaches its goal under stochastic market returns",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [plan-file]",
	Short: "Run the Monte Carlo simulation for a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		// Flag overrides for quick what-if runs without editing the file.
		if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
			plan.Seed = seed
		}
		if sims, _ := cmd.Flags().GetInt("simulations"); sims != 0 {
			plan.NumSimulations = sims
		}

		engine := simulation.NewEngine()
		engine.Workers, _ = cmd.Flags().GetInt("workers")
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.Log = simpleCLILogger{}
		}

		result, err := engine.Run(cmd.Context(), *plan)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format %q (available: %s)", format, strings.Join(output.FormatNames(), ", "))
		}
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("Plan file %s is valid\n", args[0])
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := simulation.NewEngine()
		engine.Workers, _ = cmd.Flags().GetInt("workers")

		listen, _ := cmd.Flags().GetString("listen")
		return server.New(engine).ListenAndServe(listen)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "goalsim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func main() {
	simulateCmd.Flags().String("format", "console", "output format: console, json, csv")
	simulateCmd.Flags().Int64("seed", 0, "random seed (0 = time-derived)")
	simulateCmd.Flags().Int("simulations", 0, "override trial count")
	simulateCmd.Flags().Int("workers", 0, "worker goroutines (0 = all cores)")
	simulateCmd.Flags().Bool("debug", false, "enable debug logging")

	serveCmd.Flags().String("listen", ":8080", "listen address")
	serveCmd.Flags().Int("workers", 0, "worker goroutines (0 = all cores)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
