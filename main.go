package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"
	"trafficsim/message"
	"trafficsim/simulator"
	"trafficsim/sinks"
	"trafficsim/utils"
	"trafficsim/workloads"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "trafficsim",
		Usage:  "generate synthetic HTTP traffic mixing normal sessions with scraping and credential stuffing",
		Action: actionSimulate,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.ini",
				Usage: "config INI file path (check config.ini.example for file format)",
			},
			&cli.BoolFlag{
				Name:  "v",
				Usage: "verbose mode",
			},
			&cli.BoolFlag{
				Name:  "vv",
				Usage: "very verbose mode",
			},
			&cli.BoolFlag{
				Name:  "vvv",
				Usage: "very very verbose mode",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of messages to generate, overrides limit_messages (0 = unlimited)",
				Value: -1,
			},
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "output dialect, overrides the configured one (" + strings.Join(message.Dialects(), "|") + ")",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print the lines to stdout instead of sending them to the sinks",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Value: utils.LogFile,
				Usage: "run log file path",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1) //nolint:revive
	}
}

func actionSimulate(c *cli.Context) error {
	//////////////////////////// //nolint:revive
	// INITIALISATION SECTION //
	//////////////////////////// //nolint:revive
	commandParameters := parseFlags(c)

	utils.InitializeLogger(commandParameters.Verbose1, commandParameters.Verbose2, commandParameters.LogFilePath)

	defer utils.CloseLogFile() //nolint:errcheck

	simulatorConfig, sinksConfig, metricsConfig, parseConfigErr := parseConfig(commandParameters.ConfigINIPath)

	if parseConfigErr != nil {
		utils.Logger.Error().Err(parseConfigErr).Msg("Can not parse the configuration file.")

		return parseConfigErr
	}

	applyOverrides(c, &simulatorConfig)

	allConfigs := utils.AllConfigs{
		SimulatorConfig:   simulatorConfig,
		SinksConfig:       sinksConfig,
		MetricsConfig:     metricsConfig,
		CommandParameters: commandParameters,
	}

	workload, workloadErr := loadWorkload(&allConfigs)

	if workloadErr != nil {
		utils.Logger.Error().Err(workloadErr).Str("workload", simulatorConfig.Workload).Msg("Can not create the workload.")

		return workloadErr
	}

	clock, clockErr := simulator.NewClock(simulatorConfig)

	if clockErr != nil {
		utils.Logger.Error().Err(clockErr).Msg("Can not create the clock.")

		return clockErr
	}

	////////////////// //nolint:revive
	// MAIN SECTION //
	////////////////// //nolint:revive
	// Ctrl+c stops the generation, queued batches are still delivered
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinksLst := sinks.LoadSinks(ctx, &allConfigs)

	defer sinks.ClearSinks(sinksLst)

	metrics := simulator.NewMetrics()

	if metricsConfig.Enabled && !commandParameters.DryRun {
		go func() {
			serveErr := metrics.Serve(ctx, metricsConfig.Listen)

			if serveErr != nil {
				utils.Logger.Error().Err(serveErr).Str("listenAddress", metricsConfig.Listen).Msg("An error happened while serving the metrics.")
			}
		}()
	}

	sim, simErr := simulator.New(simulatorConfig, workload, clock, sinksLst, metrics)

	if simErr != nil {
		utils.Logger.Error().Err(simErr).Msg("Can not create the simulator.")

		return simErr
	}

	summarizeStateRunning := launchSummarizeStateTask(&allConfigs, sinksLst)

	utils.Logger.Info().Str("workload", simulatorConfig.Workload).Str("dialect", simulatorConfig.Dialect).Float64("messagesPerSecond", simulatorConfig.MessagesPerSecond).Int("limit", simulatorConfig.LimitMessages).Msg("Simulation is running.")

	stats, runErr := sim.Run(ctx)

	////////////////// //nolint:revive
	// STOP SECTION //
	////////////////// //nolint:revive
	summarizeStateRunning.Store(false)

	utils.Logger.Info().Int64("messages", stats.Messages).Int64("delivered", stats.DeliveredBatches).Int64("failed", stats.FailedBatches).Msg("Stopping simulation ...")

	if runErr != nil {
		utils.Logger.Error().Err(runErr).Msg("The simulation stopped on an error.")

		return runErr
	}

	return nil
}

// Reads the command-line arguments
func parseFlags(c *cli.Context) utils.CommandParameters {
	verbose1 := c.Bool("v")
	verbose2 := c.Bool("vv")
	verbose3 := c.Bool("vvv")

	return utils.CommandParameters{
		Verbose1:      verbose1 || verbose2 || verbose3,
		Verbose2:      verbose2 || verbose3,
		Verbose3:      verbose3,
		DryRun:        c.Bool("dry-run"),
		ConfigINIPath: c.String("config"),
		LogFilePath:   c.String("log-file"),
	}
}

// Command-line values win over the configuration file
func applyOverrides(c *cli.Context, simulatorConfig *utils.SimulatorConfig) {
	if count := c.Int("count"); count >= 0 {
		simulatorConfig.LimitMessages = count
	}

	if dialect := c.String("dialect"); dialect != "" {
		simulatorConfig.Dialect = strings.ToLower(dialect)
	}
}

// Creates the configured workload, with the user agents file if any
func loadWorkload(allConfigs *utils.AllConfigs) (workloads.Workload, error) {
	opts := []workloads.Option{}

	userAgentsFile := allConfigs.SimulatorConfig.UserAgentsFile

	if userAgentsFile != "" {
		userAgents, userAgentsErr := utils.ReadFileLines(userAgentsFile)

		if userAgentsErr != nil {
			return nil, userAgentsErr
		}

		utils.Logger.Debug().Int("nbUserAgents", len(userAgents)).Str("file", userAgentsFile).Msg("User agents loaded.")

		opts = append(opts, workloads.WithUserAgents(userAgents))
	}

	return workloads.New(allConfigs.SimulatorConfig.Workload, opts...)
}

// Launches the summarize task and returns a flag to stop it
func launchSummarizeStateTask(allConfigs *utils.AllConfigs, sinksLst []sinks.Sink) *atomic.Bool {
	running := &atomic.Bool{}

	if allConfigs.CommandParameters.Verbose1 || allConfigs.CommandParameters.Verbose2 || allConfigs.CommandParameters.Verbose3 {
		running.Store(true)

		go func() {
			for running.Load() {
				time.Sleep(utils.SummarizeStateInterval * time.Second)

				if running.Load() { // If it has been stopped during the time.sleep
					for _, sink := range sinksLst {
						utils.Logger.Debug().Str("sink", sink.GetName()).Msg(sink.SummarizeState())
					}
				}
			}
		}()
	}

	return running
}
