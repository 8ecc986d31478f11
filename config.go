package main

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"trafficsim/message"
	"trafficsim/utils"

	"gopkg.in/ini.v1"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Parses the configuration file, a missing file gives the default configuration
//
//nolint:revive
func parseConfig(configFilePath string) (utils.SimulatorConfig, utils.SinksConfig, utils.MetricsConfig, error) {
	var (
		cfg *ini.File
		err error
	)

	if configFilePath != "" && utils.FileExists(configFilePath) {
		cfg, err = ini.Load(configFilePath)
	} else {
		utils.Logger.Warn().Str("configFile", configFilePath).Msg("Configuration file not found, using the defaults.")

		cfg = ini.Empty()
	}

	if err != nil {
		return utils.SimulatorConfig{}, utils.SinksConfig{}, utils.MetricsConfig{}, fmt.Errorf("can not retrieve or parse the configuration file: %w", err)
	}

	simulatorConfig := utils.SimulatorConfig{
		Workload:               cfg.Section("simulator").Key("workload").MustString("ScrapingStuffing"),
		Dialect:                strings.ToLower(cfg.Section("simulator").Key("dialect").MustString(message.DialectResurface)),
		BatchSize:              cfg.Section("simulator").Key("batch_size").MustInt(utils.DefaultBatchSize),
		MessagesPerSecond:      cfg.Section("simulator").Key("messages_per_second").MustFloat64(utils.DefaultMessagesPerSec),
		LimitMessages:          cfg.Section("simulator").Key("limit_messages").MustInt(0),
		Clock:                  cfg.Section("simulator").Key("clock").MustString("realtime"),
		ClockStepMillis:        cfg.Section("simulator").Key("clock_step_ms").MustInt(utils.DefaultClockStepMillis),
		UserAgentsFile:         cfg.Section("simulator").Key("user_agents_file").String(),
		MaxConsecutiveFailures: cfg.Section("simulator").Key("max_consecutive_failures").MustInt(utils.DefaultMaxFailures),
	}

	if clockStart := cfg.Section("simulator").Key("clock_start").String(); clockStart != "" {
		start, startErr := time.Parse(time.RFC3339, clockStart)

		if startErr != nil {
			return utils.SimulatorConfig{}, utils.SinksConfig{}, utils.MetricsConfig{}, fmt.Errorf("%w: clock_start %q is not RFC3339", ErrInvalidConfig, clockStart)
		}

		simulatorConfig.ClockStart = start
	}

	if simulatorConfig.BatchSize <= 0 {
		return utils.SimulatorConfig{}, utils.SinksConfig{}, utils.MetricsConfig{}, fmt.Errorf("%w: batch_size must be positive", ErrInvalidConfig)
	}

	sinksConfig := utils.SinksConfig{
		FileEnabled:       cfg.Section("file").Key("enabled").MustBool(false),
		FilePath:          cfg.Section("file").Key("path").MustString("messages.ndjson"),
		FileMaxSizeMB:     cfg.Section("file").Key("max_size_mb").MustInt(100), //nolint:gomnd
		FileMaxBackups:    cfg.Section("file").Key("max_backups").MustInt(5),   //nolint:gomnd
		FileCompress:      cfg.Section("file").Key("compress").MustBool(false),
		IngestEnabled:     cfg.Section("ingest").Key("enabled").MustBool(false),
		IngestURL:         cfg.Section("ingest").Key("url").String(),
		IngestCompression: cfg.Section("ingest").Key("compression").MustString("none"),
		IngestTimeout:     cfg.Section("ingest").Key("timeout_seconds").MustInt(30), //nolint:gomnd
		IngestHeaders:     cfg.Section("ingest.headers").KeysHash(),
		WebsocketEnabled:  cfg.Section("websocket").Key("enabled").MustBool(false),
		WebsocketURL:      cfg.Section("websocket").Key("url").String(),
		InfluxEnabled:     cfg.Section("influx").Key("enabled").MustBool(false),
		InfluxAddr:        cfg.Section("influx").Key("addr").MustString("http://127.0.0.1:8086"),
		InfluxUsername:    cfg.Section("influx").Key("username").String(),
		InfluxPassword:    cfg.Section("influx").Key("password").String(),
		InfluxDatabase:    cfg.Section("influx").Key("database").String(),
		InfluxPrecision:   cfg.Section("influx").Key("precision").MustString("ms"),
		StdoutEnabled:     cfg.Section("stdout").Key("enabled").MustBool(false),
	}

	metricsConfig := utils.MetricsConfig{
		Enabled: cfg.Section("metrics").Key("enabled").MustBool(false),
		Listen:  cfg.Section("metrics").Key("listen").MustString("127.0.0.1:9464"),
	}

	return simulatorConfig, sinksConfig, metricsConfig, nil
}
