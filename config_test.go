package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"trafficsim/message"
	"trafficsim/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParseConfigDefaults(t *testing.T) {
	simulatorConfig, sinksConfig, metricsConfig, err := parseConfig(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)

	assert.Equal(t, "ScrapingStuffing", simulatorConfig.Workload)
	assert.Equal(t, message.DialectResurface, simulatorConfig.Dialect)
	assert.Equal(t, utils.DefaultBatchSize, simulatorConfig.BatchSize)
	assert.InDelta(t, float64(utils.DefaultMessagesPerSec), simulatorConfig.MessagesPerSecond, 0)
	assert.Zero(t, simulatorConfig.LimitMessages)
	assert.True(t, simulatorConfig.ClockStart.IsZero())
	assert.False(t, sinksConfig.FileEnabled)
	assert.Equal(t, "none", sinksConfig.IngestCompression)
	assert.Empty(t, sinksConfig.IngestHeaders)
	assert.Equal(t, "ms", sinksConfig.InfluxPrecision)
	assert.False(t, metricsConfig.Enabled)
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `
[simulator]
dialect = Graylog
batch_size = 10
messages_per_second = 2.5
limit_messages = 1000
clock = simulated
clock_start = 2023-11-14T22:13:20Z
clock_step_ms = 200

[ingest]
enabled = true
url = https://collector.example.com/message
compression = br

[ingest.headers]
Authorization = Bearer token

[metrics]
enabled = true
listen = :9999
`)

	simulatorConfig, sinksConfig, metricsConfig, err := parseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, message.DialectGraylog, simulatorConfig.Dialect)
	assert.Equal(t, 10, simulatorConfig.BatchSize)
	assert.InDelta(t, 2.5, simulatorConfig.MessagesPerSecond, 0)
	assert.Equal(t, 1000, simulatorConfig.LimitMessages)
	assert.Equal(t, "simulated", simulatorConfig.Clock)
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), simulatorConfig.ClockStart.UTC())
	assert.Equal(t, 200, simulatorConfig.ClockStepMillis)

	assert.True(t, sinksConfig.IngestEnabled)
	assert.Equal(t, "https://collector.example.com/message", sinksConfig.IngestURL)
	assert.Equal(t, "br", sinksConfig.IngestCompression)
	assert.Equal(t, map[string]string{"Authorization": "Bearer token"}, sinksConfig.IngestHeaders)

	assert.True(t, metricsConfig.Enabled)
	assert.Equal(t, ":9999", metricsConfig.Listen)
}

func TestParseConfigInvalidValues(t *testing.T) {
	_, _, _, err := parseConfig(writeConfig(t, "[simulator]\nclock_start = yesterday\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, _, err = parseConfig(writeConfig(t, "[simulator]\nbatch_size = 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadWorkload(t *testing.T) {
	allConfigs := utils.AllConfigs{SimulatorConfig: utils.SimulatorConfig{Workload: "ScrapingStuffing"}}

	workload, err := loadWorkload(&allConfigs)
	require.NoError(t, err)
	assert.NotNil(t, workload)

	allConfigs.SimulatorConfig.UserAgentsFile = filepath.Join(t.TempDir(), "missing.txt")

	_, err = loadWorkload(&allConfigs)
	assert.Error(t, err)
}
