package workloads

import (
	"fmt"
	"trafficsim/fake"
	"trafficsim/utils"
)

type addressKind int

const (
	privateAddress addressKind = iota
	publicAddress
	attackerAddress
)

type agentKind int

const (
	botAgent agentKind = iota
	genericAgent
)

type sessionProfile struct {
	address addressKind
	agent   agentKind
}

// Address and user agent are drawn together: private sources are bots, attackers masquerade as browsers.
// Addresses: 25% private, 65% public, 10% attackers. Agents: 40% bots, 60% browsers.
var sessionProfiles = []utils.Weighted[sessionProfile]{
	{Value: sessionProfile{privateAddress, botAgent}, Weight: 25},
	{Value: sessionProfile{publicAddress, botAgent}, Weight: 15},
	{Value: sessionProfile{publicAddress, genericAgent}, Weight: 50},
	{Value: sessionProfile{attackerAddress, genericAgent}, Weight: 10},
}

var methods = []utils.Weighted[string]{
	{Value: "GET", Weight: 75},
	{Value: "POST", Weight: 25},
}

const (
	requestPIIPercent  = 5
	responsePIIPercent = 25
)

// Upper bounds (exclusive) of the response latency in milliseconds
var intervalBounds = []utils.Weighted[int64]{
	{Value: 4000, Weight: 95},
	{Value: 30000, Weight: 5},
}

var urls = []utils.Weighted[func(p fake.Provider) string]{
	{Value: func(p fake.Provider) string { return fmt.Sprintf("https://%s%s%s.com/.env", p.Hex(8), p.Hex(8), p.Hex(8)) }, Weight: 10},
	{Value: func(fake.Provider) string { return "https://api.sendgrid.com/v3/mail/send" }, Weight: 5},
	{Value: func(fake.Provider) string { return "https://api.twilio.com/notification" }, Weight: 3},
	{Value: func(fake.Provider) string { return "https://app.coinbroker.io/v1/pricing" }, Weight: 10},
	{Value: func(fake.Provider) string { return "https://graphql.coinbroker.io/graphql" }, Weight: 16},
	{Value: func(p fake.Provider) string { return fmt.Sprintf("https://app.coinbroker.io/v1/quote/%s/", p.UUID()) }, Weight: 43},
	{Value: func(p fake.Provider) string { return fmt.Sprintf("https://app.coinbroker.io/v1/purchase/%s/", p.UUID()) }, Weight: 13},
}

// Number of request headers
var requestHeaderProfiles = []utils.Weighted[int]{
	{Value: 7, Weight: 40},
	{Value: 8, Weight: 20},
	{Value: 6, Weight: 20},
	{Value: 2, Weight: 10},
	{Value: 12, Weight: 5},
	{Value: 20, Weight: 5},
}

// Number of response headers
var responseHeaderProfiles = []utils.Weighted[int]{
	{Value: 2, Weight: 45},
	{Value: 3, Weight: 50},
	{Value: 5, Weight: 5},
}
