// Package workloads generates synthetic HTTP messages and appends them, formatted, to batches.
package workloads

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"trafficsim/fake"
	"trafficsim/message"
	"trafficsim/utils"
)

var ErrUnknownWorkload = errors.New("unknown workload")

// Clock supplies the time, in milliseconds, messages are stamped with
type Clock interface {
	Now() int64
}

// Workload adds one message to the batch per call
type Workload interface {
	Add(batch *message.Batch, clock Clock, dialect string) error
}

// settings are shared by every workload and set through options
type settings struct {
	provider   fake.Provider
	seeded     func(seed int64) fake.Provider
	chance     *rand.Rand
	userAgents []string
}

type Option func(*settings)

// WithProvider sets the provider used for every non deterministic session
func WithProvider(provider fake.Provider) Option {
	return func(s *settings) {
		s.provider = provider
	}
}

// WithSeededProvider sets how deterministic providers are created for the signature attackers
func WithSeededProvider(seeded func(seed int64) fake.Provider) Option {
	return func(s *settings) {
		s.seeded = seeded
	}
}

// WithChanceSource sets the source every probability draw is made from
func WithChanceSource(chance *rand.Rand) Option {
	return func(s *settings) {
		s.chance = chance
	}
}

// WithUserAgents replaces the generated browser user agents with the given list
func WithUserAgents(userAgents []string) Option {
	return func(s *settings) {
		s.userAgents = utils.DeleteEmptyStrings(userAgents)
	}
}

func newSettings(opts []Option) settings {
	s := settings{}

	for _, opt := range opts {
		opt(&s)
	}

	if s.provider == nil {
		s.provider = fake.NewRandom()
	}

	if s.seeded == nil {
		s.seeded = func(seed int64) fake.Provider { return fake.New(seed) }
	}

	if s.chance == nil {
		s.chance = utils.NewRandomSource()
	}

	return s
}

var registry = map[string]func(opts ...Option) Workload{
	"scrapingstuffing": func(opts ...Option) Workload { return NewScrapingStuffing(opts...) },
}

// New returns the workload registered under the given name (case insensitive)
func New(name string, opts ...Option) (Workload, error) {
	constructor, ok := registry[strings.ToLower(name)]

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
	}

	return constructor(opts...), nil
}

// Names returns the registered workload names
func Names() []string {
	names := make([]string, 0, len(registry))

	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
