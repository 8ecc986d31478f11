package workloads

import (
	"fmt"
	"trafficsim/fake"
	"trafficsim/message"
	"trafficsim/utils"

	jsoniter "github.com/json-iterator/go"
)

const responseCode = "200"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ScrapingStuffing generates REST traffic on a crypto broker API mixed with scraping and credential stuffing.
// Sessions coming from the first two attacker addresses always produce the same fake values,
// the other attackers look as random as legitimate users.
// A ScrapingStuffing must only be used by one stream at a time.
type ScrapingStuffing struct {
	settings
	session Session
}

func NewScrapingStuffing(opts ...Option) *ScrapingStuffing {
	return &ScrapingStuffing{
		settings: newSettings(opts),
		session:  NewSession(),
	}
}

// Add builds the next message of the workload's own session and appends it to the batch
func (w *ScrapingStuffing) Add(batch *message.Batch, clock Clock, dialect string) error {
	m, next, err := w.Build(clock, w.session)

	if err != nil {
		return err
	}

	w.session = next

	line, err := message.Format(m, dialect)

	if err != nil {
		return err
	}

	batch.Append(line, m)

	return nil
}

// Build returns a message belonging to the given session and the session to pass to the next call
func (w *ScrapingStuffing) Build(clock Clock, session Session) (*message.HTTPMessage, Session, error) {
	session = w.nextSession(session)

	p := w.providerFor(session)

	m := &message.HTTPMessage{
		RequestAddress: session.RequestAddress,
		Attacker:       session.Attacker(),
	}

	requestBody, err := json.MarshalToString(RequestBody(p, utils.Chance(w.chance, requestPIIPercent)))

	if err != nil {
		return nil, session, fmt.Errorf("can not encode request body: %w", err)
	}

	m.RequestBody = requestBody
	m.RequestContentType = utils.ContentTypeJSON
	m.RequestMethod = utils.WeightedChoice(w.chance, methods)
	m.RequestURL = utils.WeightedChoice(w.chance, urls)(p)
	m.RequestUserAgent = session.UserAgent

	m.IntervalMillis = w.chance.Int63n(utils.WeightedChoice(w.chance, intervalBounds))

	responseBody, err := json.MarshalToString(ResponseBody(p, utils.Chance(w.chance, responsePIIPercent)))

	if err != nil {
		return nil, session, fmt.Errorf("can not encode response body: %w", err)
	}

	m.ResponseBody = responseBody
	m.ResponseCode = responseCode
	m.ResponseContentType = utils.ContentTypeJSON
	m.ResponseTimeMillis = clock.Now()

	buildRequestHeaders(m, p, session, utils.WeightedChoice(w.chance, requestHeaderProfiles))
	buildResponseHeaders(m, p, m.ResponseTimeMillis, utils.WeightedChoice(w.chance, responseHeaderProfiles))

	return m, session, nil
}

// Returns the session the next message belongs to, picking a new identity every sessionLength messages
func (w *ScrapingStuffing) nextSession(session Session) Session {
	if !session.expired() {
		session.Index++

		return session
	}

	profile := utils.WeightedChoice(w.chance, sessionProfiles)

	switch profile.address {
	case privateAddress:
		session.RequestAddress = w.provider.PrivateIPv4()
	case publicAddress:
		session.RequestAddress = w.provider.PublicIPv4()
	case attackerAddress:
		session.RequestAddress = utils.RandomElementInSlice(w.chance, AttackerAddresses)
	}

	switch {
	case profile.agent == botAgent:
		session.UserAgent = w.provider.BotUserAgent()
	case len(w.userAgents) > 0:
		session.UserAgent = utils.RandomElementInSlice(w.chance, w.userAgents)
	default:
		session.UserAgent = w.provider.UserAgent()
	}

	session.Index = 0

	return session
}

// Signature attackers get a provider reseeded from their address, everyone else shares the random one
func (w *ScrapingStuffing) providerFor(session Session) fake.Provider {
	if !session.IsSignatureAttacker() {
		return w.provider
	}

	seed, err := utils.SeedFromIPv4(session.RequestAddress)

	if err != nil {
		return w.provider
	}

	return w.seeded(seed)
}
