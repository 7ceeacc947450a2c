package middleware

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/xy-planning-network/bookstore"
)

// unknownIP stands in when no public address can be found.
const unknownIP = "0.0.0.0"

// forwardingHeaders are read in order, each right to left.
var forwardingHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

type ipRange struct {
	start net.IP
	end   net.IP
}

func (r ipRange) contains(ip net.IP) bool {
	return bytes.Compare(ip, r.start) >= 0 && bytes.Compare(ip, r.end) < 0
}

// IANA defined IPv4 non-public ranges
var privateRanges = []ipRange{
	{start: net.ParseIP("10.0.0.0"), end: net.ParseIP("10.255.255.255")},
	{start: net.ParseIP("100.64.0.0"), end: net.ParseIP("100.127.255.255")},
	{start: net.ParseIP("172.16.0.0"), end: net.ParseIP("172.31.255.255")},
	{start: net.ParseIP("192.0.0.0"), end: net.ParseIP("192.0.0.255")},
	{start: net.ParseIP("192.168.0.0"), end: net.ParseIP("192.168.255.255")},
	{start: net.ParseIP("198.18.0.0"), end: net.ParseIP("198.19.255.255")},
}

// InjectIPAddress promotes the address [IPAddress] finds
// to *http.Request.Context under [bookstore.IpAddrKey].
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), bookstore.IpAddrKey, IPAddress(r))
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// IPAddress finds the address a request originated from.
//
// A value InjectIPAddress already stored wins.
// Then come the public addresses in forwarding headers, see [GetIPAddress].
// Last is the host of *http.Request.RemoteAddr.
func IPAddress(r *http.Request) string {
	if ip, ok := r.Context().Value(bookstore.IpAddrKey).(string); ok && ip != "" {
		return ip
	}

	if ip := GetIPAddress(r.Header); ip != unknownIP {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return unknownIP
	}

	return host
}

// GetIPAddress parses "X-Forwarded-For" and "X-Real-Ip" headers for the IP address
// from the request.
//
// GetIPAddress skips addresses from non-public ranges.
func GetIPAddress(hm http.Header) string {
	for _, h := range forwardingHeaders {
		addresses := strings.Split(hm.Get(h), ",")
		// march from right to left until we get a public address
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			parsed := net.ParseIP(ip)
			if !parsed.IsGlobalUnicast() || isPrivateSubnet(parsed) {
				continue
			}

			return ip
		}
	}

	return unknownIP
}

// isPrivateSubnet checks whether the IP address is in a private subnet.
//
// Only IPv4 subnets are supported.
func isPrivateSubnet(ip net.IP) bool {
	if ip.To4() == nil {
		return false
	}

	for _, r := range privateRanges {
		if r.contains(ip) {
			return true
		}
	}

	return false
}
