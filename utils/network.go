package utils

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"strings"
)

var ErrInvalidIPv4 = errors.New("invalid IPv4 address")

// PrivateIPv4CIDRs are the ranges private addresses are drawn from
var PrivateIPv4CIDRs = []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}

// reservedIPv4CIDRs are the ranges a public address must never belong to
var reservedIPv4CIDRs = []string{
	"0.0.0.0/8", "10.0.0.0/8", "100.64.0.0/10", "127.0.0.0/8", "169.254.0.0/16",
	"172.16.0.0/12", "192.0.0.0/24", "192.0.2.0/24", "192.168.0.0/16", "198.18.0.0/15",
	"198.51.100.0/24", "203.0.113.0/24", "224.0.0.0/3",
}

var reservedIPv4Nets = mustParseCIDRs(reservedIPv4CIDRs)

func mustParseCIDRs(cidrs []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(cidrs))

	for _, cidr := range cidrs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(err)
		}

		nets = append(nets, ipNet)
	}

	return nets
}

// Returns a random IP from the CIDR
func RandomIPFromCIDR(r *rand.Rand, cidr string) (net.IP, error) {
	_, ipNet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}

	if ipNet.IP.To4() == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIPv4, cidr)
	}

	return randomIPv4FromNet(r, ipNet), nil
}

// Returns a random IPv4 from the network
func randomIPv4FromNet(r *rand.Rand, ipNet *net.IPNet) net.IP {
	start := ipNet.IP.To4()
	startInt := uint32(start[0])<<24 | uint32(start[1])<<16 | uint32(start[2])<<8 | uint32(start[3]) //nolint:gomnd

	ones, bits := ipNet.Mask.Size()
	numAddresses := int64(1) << uint(bits-ones)

	resultInt := startInt + uint32(r.Int63n(numAddresses))

	result := make(net.IP, 4)         //nolint:gomnd
	result[0] = byte(resultInt >> 24) //nolint:gomnd
	result[1] = byte(resultInt >> 16) //nolint:gomnd
	result[2] = byte(resultInt >> 8)  //nolint:gomnd
	result[3] = byte(resultInt)

	return result
}

// Returns a random address belonging to one of the private IPv4 ranges
func RandomPrivateIPv4(r *rand.Rand) net.IP {
	ip, _ := RandomIPFromCIDR(r, RandomElementInSlice(r, PrivateIPv4CIDRs))

	return ip
}

// Returns a random routable IPv4 address
func RandomPublicIPv4(r *rand.Rand) net.IP {
	for {
		ip := net.IPv4(byte(r.Intn(256)), byte(r.Intn(256)), byte(r.Intn(256)), byte(r.Intn(256))) //nolint:gomnd

		if IsPublicIPv4(ip) {
			return ip.To4()
		}
	}
}

// Checks that the address is an IPv4 outside every private and reserved range
func IsPublicIPv4(ip net.IP) bool {
	ip4 := ip.To4()

	if ip4 == nil {
		return false
	}

	for _, ipNet := range reservedIPv4Nets {
		if ipNet.Contains(ip4) {
			return false
		}
	}

	return true
}

// SeedFromIPv4 converts a dotted IPv4 address into a number, the octets being read as base-256 digits
// with the first octet as the least significant one.
func SeedFromIPv4(address string) (int64, error) {
	octets := strings.Split(address, ".")

	if len(octets) != 4 { //nolint:gomnd
		return 0, ErrInvalidIPv4
	}

	var seed int64

	var weight int64 = 1

	for _, octetStr := range octets {
		octet, err := strconv.Atoi(octetStr)

		if err != nil || octet < 0 || octet > 255 {
			return 0, ErrInvalidIPv4
		}

		seed += int64(octet) * weight
		weight *= 256
	}

	return seed, nil
}
