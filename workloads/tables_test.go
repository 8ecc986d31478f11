package workloads

import (
	"testing"
	"trafficsim/fake"
	"trafficsim/utils"

	"github.com/stretchr/testify/assert"
)

func TestTablesArePercentages(t *testing.T) {
	assert.Equal(t, 100, utils.TotalWeight(sessionProfiles))
	assert.Equal(t, 100, utils.TotalWeight(methods))
	assert.Equal(t, 100, utils.TotalWeight(intervalBounds))
	assert.Equal(t, 100, utils.TotalWeight(urls))
	assert.Equal(t, 100, utils.TotalWeight(requestHeaderProfiles))
	assert.Equal(t, 100, utils.TotalWeight(responseHeaderProfiles))
}

func TestSessionProfileMarginals(t *testing.T) {
	addresses := map[addressKind]int{}
	agents := map[agentKind]int{}

	for _, entry := range sessionProfiles {
		addresses[entry.Value.address] += entry.Weight
		agents[entry.Value.agent] += entry.Weight
	}

	assert.Equal(t, map[addressKind]int{privateAddress: 25, publicAddress: 65, attackerAddress: 10}, addresses)
	assert.Equal(t, map[agentKind]int{botAgent: 40, genericAgent: 60}, agents)
}

func TestURLCatalog(t *testing.T) {
	p := fake.New(1)

	assert.Regexp(t, `^https://[0-9a-f]{24}\.com/\.env$`, urls[0].Value(p))
	assert.Equal(t, "https://api.sendgrid.com/v3/mail/send", urls[1].Value(p))
	assert.Equal(t, "https://api.twilio.com/notification", urls[2].Value(p))
	assert.Equal(t, "https://app.coinbroker.io/v1/pricing", urls[3].Value(p))
	assert.Equal(t, "https://graphql.coinbroker.io/graphql", urls[4].Value(p))
	assert.Regexp(t, `^https://app\.coinbroker\.io/v1/quote/[0-9a-f-]{36}/$`, urls[5].Value(p))
	assert.Regexp(t, `^https://app\.coinbroker\.io/v1/purchase/[0-9a-f-]{36}/$`, urls[6].Value(p))
}
