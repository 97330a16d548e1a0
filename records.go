package hetznerdns

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// RecordType enumerates the record types the API documents. Values outside
// this set are forwarded to the server untouched and left for it to reject.
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

var recordTypes = map[RecordType]bool{
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

// Valid reports whether t is one of the documented record types.
func (t RecordType) Valid() bool {
	return recordTypes[t]
}

// Record is one DNS resource record inside a zone. IDs are opaque server
// identifiers and must not be parsed. The server omits ttl for some types;
// an absent ttl decodes as 0.
type Record struct {
	ID       string     `json:"id"`
	ZoneID   string     `json:"zone_id"`
	Type     RecordType `json:"type"`
	Name     string     `json:"name"`
	Value    string     `json:"value"`
	TTL      int        `json:"ttl"`
	Created  string     `json:"created,omitempty"`
	Modified string     `json:"modified,omitempty"`
}

// The records pointer distinguishes an absent envelope key from an empty
// collection.
type recordsResponse struct {
	Records *[]Record `json:"records"`
}

type recordResponse struct {
	Record *Record `json:"record"`
}

type createRecordRequest struct {
	Value  string     `json:"value"`
	TTL    int        `json:"ttl"`
	Type   RecordType `json:"type"`
	Name   string     `json:"name"`
	ZoneID string     `json:"zone_id"`
}

type updateRecordRequest struct {
	ZoneID string     `json:"zone_id"`
	Type   RecordType `json:"type"`
	Name   string     `json:"name"`
	Value  string     `json:"value"`
	TTL    int        `json:"ttl"`
}

// ListRecords fetches the records of one zone, in server order.
func (c *Client) ListRecords(ctx context.Context, zoneID string) ([]Record, error) {
	const op = "list records"

	query := url.Values{"zone_id": {zoneID}}
	body, status, err := c.request(ctx, http.MethodGet, "/records", query, nil)
	if err != nil {
		return nil, transportError(op, err)
	}
	if status != http.StatusOK {
		return nil, statusError(op, status, body)
	}

	var envelope recordsResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, deserializeError(op, err)
	}
	if envelope.Records == nil {
		return nil, missingFieldError(op, "records")
	}

	c.logger.Debug("listed records", "zone_id", zoneID, "count", len(*envelope.Records))
	return *envelope.Records, nil
}

// GetRecord fetches a single record by id. The live endpoint wraps the
// record in a "record" envelope; bare objects from older deployments are
// accepted as well.
func (c *Client) GetRecord(ctx context.Context, recordID string) (*Record, error) {
	const op = "get record"

	body, status, err := c.request(ctx, http.MethodGet, "/records/"+recordID, nil, nil)
	if err != nil {
		return nil, transportError(op, err)
	}
	if status != http.StatusOK {
		return nil, statusError(op, status, body)
	}

	var envelope recordResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Record != nil {
		return envelope.Record, nil
	}

	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, deserializeError(op, err)
	}
	if record.ID == "" {
		return nil, missingFieldError(op, "record")
	}
	return &record, nil
}

// CreateRecord creates a record in the given zone and returns it with the
// server-assigned id and timestamps. The server validates value syntax and
// uniqueness; 409 and 422 responses carry any "taken" detail in the error
// message.
func (c *Client) CreateRecord(ctx context.Context, value string, ttl int, recordType RecordType, name, zoneID string) (*Record, error) {
	const op = "create record"

	payload := createRecordRequest{
		Value:  value,
		TTL:    ttl,
		Type:   recordType,
		Name:   name,
		ZoneID: zoneID,
	}
	body, status, err := c.request(ctx, http.MethodPost, "/records", nil, payload)
	if err != nil {
		return nil, transportError(op, err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, statusError(op, status, body)
	}

	var envelope recordResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, deserializeError(op, err)
	}
	if envelope.Record == nil {
		return nil, missingFieldError(op, "record")
	}

	c.logger.Info("record created", "record_id", envelope.Record.ID, "zone_id", zoneID, "type", recordType, "name", name)
	return envelope.Record, nil
}

// UpdateRecord replaces all mutable fields of an existing record. This is a
// full replacement, not a partial patch.
func (c *Client) UpdateRecord(ctx context.Context, recordID, zoneID string, recordType RecordType, name, value string, ttl int) (*Record, error) {
	const op = "update record"

	payload := updateRecordRequest{
		ZoneID: zoneID,
		Type:   recordType,
		Name:   name,
		Value:  value,
		TTL:    ttl,
	}
	body, status, err := c.request(ctx, http.MethodPut, "/records/"+recordID, nil, payload)
	if err != nil {
		return nil, transportError(op, err)
	}
	if status != http.StatusOK {
		return nil, statusError(op, status, body)
	}

	var envelope recordResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, deserializeError(op, err)
	}
	if envelope.Record == nil {
		return nil, missingFieldError(op, "record")
	}

	c.logger.Info("record updated", "record_id", recordID, "zone_id", zoneID, "type", recordType, "name", name)
	return envelope.Record, nil
}

// DeleteRecord deletes a record by id. Deleting an id that no longer exists
// reports ErrNotFound, never success.
func (c *Client) DeleteRecord(ctx context.Context, recordID string) error {
	const op = "delete record"

	body, status, err := c.request(ctx, http.MethodDelete, "/records/"+recordID, nil, nil)
	if err != nil {
		return transportError(op, err)
	}
	if status != http.StatusOK {
		return statusError(op, status, body)
	}

	c.logger.Info("record deleted", "record_id", recordID)
	return nil
}
