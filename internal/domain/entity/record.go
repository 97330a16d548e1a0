package entity

import (
	"fmt"

	"github.com/lite-lake/hetznerdns/internal/domain"
)

// RecordType is a DNS record type accepted by the Hetzner DNS API.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeNS    RecordType = "NS"
	RecordTypeMX    RecordType = "MX"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeRP    RecordType = "RP"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeSOA   RecordType = "SOA"
	RecordTypeHINFO RecordType = "HINFO"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeDANE  RecordType = "DANE"
	RecordTypeTLSA  RecordType = "TLSA"
	RecordTypeDS    RecordType = "DS"
	RecordTypeCAA   RecordType = "CAA"
)

var validRecordTypes = map[RecordType]bool{
	RecordTypeA:     true,
	RecordTypeAAAA:  true,
	RecordTypeNS:    true,
	RecordTypeMX:    true,
	RecordTypeCNAME: true,
	RecordTypeRP:    true,
	RecordTypeTXT:   true,
	RecordTypeSOA:   true,
	RecordTypeHINFO: true,
	RecordTypeSRV:   true,
	RecordTypeDANE:  true,
	RecordTypeTLSA:  true,
	RecordTypeDS:    true,
	RecordTypeCAA:   true,
}

// Record is one DNS record as kept in the local snapshot. A TTL of zero
// means the zone default applies.
type Record struct {
	Type  RecordType `yaml:"type"`
	Name  string     `yaml:"name"`
	Value string     `yaml:"value"`
	TTL   int        `yaml:"ttl,omitempty"`
}

func (r *Record) Validate() error {
	if !validRecordTypes[r.Type] {
		return fmt.Errorf("%w: dns record type %s", domain.ErrInvalidType, r.Type)
	}
	if r.Name == "" {
		return domain.RequiredField("name")
	}
	if r.Value == "" {
		return fmt.Errorf("%w: record value", domain.ErrEmptyValue)
	}
	if r.TTL < 0 {
		return fmt.Errorf("%w: ttl must not be negative, got %d", domain.ErrInvalidTTL, r.TTL)
	}
	return nil
}

// Key identifies a record within its zone for diffing. Records with the
// same type and name are treated as one logical entry.
func (r *Record) Key() string {
	return fmt.Sprintf("%s:%s", r.Type, r.Name)
}

func (r *Record) Equals(other *Record) bool {
	return r.Type == other.Type &&
		r.Name == other.Name &&
		r.Value == other.Value &&
		r.TTL == other.TTL
}
