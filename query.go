//
// SPDX-License-Identifier: BSD-3-Clause
//
// Adapted from: https://github.com/rbmk-project/rbmk/blob/v0.17.0/pkg/dns/dnscore/query.go
//

package dnslabel

import (
	"slices"

	"github.com/miekg/dns"
)

const (
	// QueryMaxResponseSizeUDP is the maximum response size when using UDP
	// and is consistent with what the standard library uses.
	QueryMaxResponseSizeUDP = 1232

	// QueryMaxResponseSizeTCP is the maximum response size when using TCP
	// and is consistent with what the standard library uses.
	QueryMaxResponseSizeTCP = 4096
)

// Query is a DNS query for a validated [Name].
//
// Construct using [NewQuery] or set the MANDATORY fields.
type Query struct {
	// ID is the OPTIONAL query ID.
	ID uint16

	// MaxSize is the OPTIONAL maximum response size
	// to include in the query using EDNS(0).
	//
	// Use [QueryMaxResponseSizeUDP] or [QueryMaxResponseSizeTCP].
	MaxSize uint16

	// Name is the MANDATORY domain name to query.
	Name Name

	// Type is the query type.
	Type uint16
}

// NewQuery constructs a new [*Query] with safe defaults.
//
// By default, the query uses a randomized ID and uses
// [QueryMaxResponseSizeUDP] as the EDNS(0) maximum response size.
func NewQuery(name Name, qtype uint16) *Query {
	return &Query{
		Name:    name,
		Type:    qtype,
		ID:      dns.Id(),
		MaxSize: QueryMaxResponseSizeUDP,
	}
}

// Clone returns a deep copy of the query.
func (q *Query) Clone() *Query {
	return &Query{
		Name:    slices.Clone(q.Name),
		Type:    q.Type,
		ID:      q.ID,
		MaxSize: q.MaxSize,
	}
}

// NewMsg creates a new [*dns.Msg] from the [*Query].
//
// The name is already valid, so there is no need for IDNA encoding
// and this function cannot fail.
func (q *Query) NewMsg() *dns.Msg {
	msg := new(dns.Msg)
	msg.Id = q.ID
	msg.RecursionDesired = true
	msg.Question = []dns.Question{{
		Name:   q.Name.String(),
		Qtype:  q.Type,
		Qclass: dns.ClassINET,
	}}
	if q.MaxSize > 0 {
		msg.SetEdns0(q.MaxSize, false)
	}
	return msg
}
