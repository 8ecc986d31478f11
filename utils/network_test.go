package utils

import (
	"math/rand"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromIPv4(t *testing.T) {
	seed, err := SeedFromIPv4("123.123.123.123")
	require.NoError(t, err)
	assert.Equal(t, int64(123*16843009), seed)

	seed, err = SeedFromIPv4("205.87.214.29")
	require.NoError(t, err)
	assert.Equal(t, int64(205+87*256+214*65536+29*16777216), seed)

	seed, err = SeedFromIPv4("1.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, int64(1), seed)
}

func TestSeedFromIPv4Invalid(t *testing.T) {
	for _, address := range []string{"", "1.2.3", "1.2.3.256", "a.b.c.d", "::1"} {
		_, err := SeedFromIPv4(address)
		assert.ErrorIs(t, err, ErrInvalidIPv4, address)
	}
}

func TestRandomIPFromCIDR(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, cidr := range []string{"10.0.0.0/8", "192.168.1.0/30", "35.180.0.0/16"} {
		_, ipNet, err := net.ParseCIDR(cidr)
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			ip, err := RandomIPFromCIDR(r, cidr)
			require.NoError(t, err)
			assert.True(t, ipNet.Contains(ip), "%s not in %s", ip, cidr)
		}
	}

	_, err := RandomIPFromCIDR(r, "not-a-cidr")
	assert.Error(t, err)

	_, err = RandomIPFromCIDR(r, "2001:db8::/64")
	assert.ErrorIs(t, err, ErrInvalidIPv4)
}

func TestRandomPrivateAndPublicIPv4(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 500; i++ {
		assert.True(t, RandomPrivateIPv4(r).IsPrivate())

		public := RandomPublicIPv4(r)
		assert.True(t, IsPublicIPv4(public), public.String())
		assert.False(t, public.IsPrivate(), public.String())
	}
}

func TestIsPublicIPv4(t *testing.T) {
	assert.True(t, IsPublicIPv4(net.ParseIP("8.8.8.8")))
	assert.False(t, IsPublicIPv4(net.ParseIP("127.0.0.1")))
	assert.False(t, IsPublicIPv4(net.ParseIP("172.20.1.1")))
	assert.False(t, IsPublicIPv4(net.ParseIP("2001:db8::1")))
}
