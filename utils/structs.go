package utils

import (
	"bytes"
	"net/url"
	"time"
)

type HTTPRequestData struct {
	URL     *url.URL
	Method  string
	Headers map[string]any
	Body    *bytes.Buffer
}

type HTTPResponseData struct {
	StatusCode int
	Headers    map[string]any
	Body       []byte
}

type SimulatorConfig struct {
	Workload               string
	Dialect                string
	BatchSize              int
	MessagesPerSecond      float64
	LimitMessages          int
	Clock                  string
	ClockStart             time.Time
	ClockStepMillis        int
	UserAgentsFile         string
	MaxConsecutiveFailures int
}

type SinksConfig struct {
	FileEnabled       bool
	FilePath          string
	FileMaxSizeMB     int
	FileMaxBackups    int
	FileCompress      bool
	IngestEnabled     bool
	IngestURL         string
	IngestCompression string
	IngestTimeout     int
	IngestHeaders     map[string]string
	WebsocketEnabled  bool
	WebsocketURL      string
	InfluxEnabled     bool
	InfluxAddr        string
	InfluxUsername    string
	InfluxPassword    string
	InfluxDatabase    string
	InfluxPrecision   string
	StdoutEnabled     bool
}

type MetricsConfig struct {
	Enabled bool
	Listen  string
}

type CommandParameters struct {
	Verbose1      bool
	Verbose2      bool
	Verbose3      bool
	DryRun        bool
	ConfigINIPath string
	LogFilePath   string
}

type AllConfigs struct {
	SimulatorConfig   SimulatorConfig
	SinksConfig       SinksConfig
	MetricsConfig     MetricsConfig
	CommandParameters CommandParameters
}
