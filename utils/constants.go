package utils

const (
	LogFile                = "trafficsim.log"
	SummarizeStateInterval = 30
	ContentTypeJSON        = "application/json; charset=utf-8"
	ContentTypeNDJSON      = "application/x-ndjson"
	DefaultBatchSize       = 50
	DefaultMessagesPerSec  = 100
	DefaultClockStepMillis = 1000
	DefaultMaxFailures     = 10
)
