package hetznerdns

import (
	"context"
	"encoding/json"
	"net/http"
)

// Zone is a DNS zone as the server reports it. Zones are fetched, never
// mutated locally; this scope has no create or delete zone operation.
// Timestamp fields stay strings because the server's format is not RFC 3339.
type Zone struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	TTL             int             `json:"ttl"`
	Status          string          `json:"status"`
	Paused          bool            `json:"paused"`
	RecordsCount    int             `json:"records_count"`
	Created         string          `json:"created"`
	Modified        string          `json:"modified"`
	Verified        string          `json:"verified"`
	LegacyDNSHost   string          `json:"legacy_dns_host"`
	LegacyNS        []string        `json:"legacy_ns"`
	NS              []string        `json:"ns"`
	Owner           string          `json:"owner"`
	Permission      string          `json:"permission"`
	Project         string          `json:"project"`
	Registrar       string          `json:"registrar"`
	IsSecondaryDNS  bool            `json:"is_secondary_dns"`
	TxtVerification TxtVerification `json:"txt_verification"`
	ZoneType        ZoneType        `json:"zone_type"`
}

type TxtVerification struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type ZoneType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Meta carries the pagination block of collection responses. The client
// decodes it but never traverses pages; callers get the first page only.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	LastPage     int `json:"last_page"`
	TotalEntries int `json:"total_entries"`
}

type zonesResponse struct {
	Zones []Zone `json:"zones"`
	Meta  Meta   `json:"meta"`
}

// ListZones fetches the zones visible to the token, in server order.
func (c *Client) ListZones(ctx context.Context) ([]Zone, error) {
	const op = "list zones"

	body, status, err := c.request(ctx, http.MethodGet, "/zones", nil, nil)
	if err != nil {
		return nil, transportError(op, err)
	}
	if status != http.StatusOK {
		return nil, statusError(op, status, body)
	}

	var envelope zonesResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, deserializeError(op, err)
	}

	c.logger.Debug("listed zones", "count", len(envelope.Zones))
	return envelope.Zones, nil
}
