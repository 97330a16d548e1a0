package hetznerdns

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const testToken = "test-token-1234"

// fakeHetzner is an in-memory stand-in for the DNS API. It serves the real
// endpoint layout under /api/v1 and records every call for sequence
// assertions.
type fakeHetzner struct {
	mu             sync.Mutex
	zones          []Zone
	records        map[string]Record
	nextID         int
	calls          []string
	lastWriteBody  []byte
	lastAuthHeader string
}

func newFakeHetzner() *fakeHetzner {
	return &fakeHetzner{
		zones: []Zone{
			{
				ID:           "zone-alpha",
				Name:         "alpha.example",
				TTL:          86400,
				Status:       "verified",
				RecordsCount: 3,
				NS:           []string{"hydrogen.ns.hetzner.com", "oxygen.ns.hetzner.com"},
				ZoneType:     ZoneType{Name: "primary"},
			},
			{
				ID:           "zone-beta",
				Name:         "beta.example",
				TTL:          3600,
				Status:       "pending",
				Paused:       true,
				RecordsCount: 0,
			},
		},
		records: map[string]Record{},
		nextID:  1,
	}
}

func (f *fakeHetzner) addRecord(zoneID string, recordType RecordType, name, value string, ttl int) Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := Record{
		ID:       fmt.Sprintf("rec-%d", f.nextID),
		ZoneID:   zoneID,
		Type:     recordType,
		Name:     name,
		Value:    value,
		TTL:      ttl,
		Created:  "2025-06-10 09:00:00.000 +0000 UTC",
		Modified: "2025-06-10 09:00:00.000 +0000 UTC",
	}
	f.nextID++
	f.records[rec.ID] = rec
	return rec
}

func (f *fakeHetzner) hasZone(zoneID string) bool {
	for _, z := range f.zones {
		if z.ID == zoneID {
			return true
		}
	}
	return false
}

func (f *fakeHetzner) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.lastAuthHeader = r.Header.Get("Auth-API-Token")
	f.mu.Unlock()

	if r.Header.Get("Auth-API-Token") != testToken {
		writeWireError(w, http.StatusUnauthorized, "Invalid authentication credentials")
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/zones":
		f.handleListZones(w)
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/records":
		f.handleListRecords(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/api/v1/records":
		f.handleCreateRecord(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/records/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/v1/records/")
		switch r.Method {
		case http.MethodGet:
			f.handleGetRecord(w, id)
		case http.MethodPut:
			f.handleUpdateRecord(w, r, id)
		case http.MethodDelete:
			f.handleDeleteRecord(w, id)
		default:
			writeWireError(w, http.StatusNotFound, "not found")
		}
	default:
		writeWireError(w, http.StatusNotFound, "not found")
	}
}

func (f *fakeHetzner) handleListZones(w http.ResponseWriter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"zones": f.zones,
		"meta": map[string]any{
			"pagination": map[string]int{
				"page": 1, "per_page": 100, "last_page": 1, "total_entries": len(f.zones),
			},
		},
	})
}

func (f *fakeHetzner) handleListRecords(w http.ResponseWriter, r *http.Request) {
	zoneID := r.URL.Query().Get("zone_id")
	if !f.hasZone(zoneID) {
		writeWireError(w, http.StatusNotFound, "zone not found")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	records := make([]Record, 0)
	for _, rec := range f.records {
		if rec.ZoneID == zoneID {
			records = append(records, rec)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func (f *fakeHetzner) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.lastWriteBody = body
	f.mu.Unlock()

	var req struct {
		Value  string `json:"value"`
		TTL    int    `json:"ttl"`
		Type   string `json:"type"`
		Name   string `json:"name"`
		ZoneID string `json:"zone_id"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeWireError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if !f.hasZone(req.ZoneID) {
		writeWireError(w, http.StatusUnprocessableEntity, "invalid zone_id")
		return
	}
	rec := f.addRecord(req.ZoneID, RecordType(req.Type), req.Name, req.Value, req.TTL)
	writeJSON(w, http.StatusOK, map[string]any{"record": rec})
}

func (f *fakeHetzner) handleGetRecord(w http.ResponseWriter, id string) {
	f.mu.Lock()
	rec, ok := f.records[id]
	f.mu.Unlock()
	if !ok {
		writeWireError(w, http.StatusNotFound, "record not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": rec})
}

func (f *fakeHetzner) handleUpdateRecord(w http.ResponseWriter, r *http.Request, id string) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.lastWriteBody = body
	rec, ok := f.records[id]
	f.mu.Unlock()
	if !ok {
		writeWireError(w, http.StatusNotFound, "record not found")
		return
	}

	var req struct {
		ZoneID string `json:"zone_id"`
		Type   string `json:"type"`
		Name   string `json:"name"`
		Value  string `json:"value"`
		TTL    int    `json:"ttl"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeWireError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	rec.ZoneID = req.ZoneID
	rec.Type = RecordType(req.Type)
	rec.Name = req.Name
	rec.Value = req.Value
	rec.TTL = req.TTL
	rec.Modified = "2025-06-11 10:00:00.000 +0000 UTC"

	f.mu.Lock()
	f.records[id] = rec
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"record": rec})
}

func (f *fakeHetzner) handleDeleteRecord(w http.ResponseWriter, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[id]; !ok {
		writeWireError(w, http.StatusNotFound, "record not found")
		return
	}
	delete(f.records, id)
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeWireError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{"message": message, "code": status},
	})
}

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithBaseURL(srv.URL + "/api/v1"), WithHTTPClient(srv.Client())}, opts...)
	return New(testToken, opts...)
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := New("token")
		if c.baseURL != DefaultBaseURL {
			t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
		}
		if c.httpClient != http.DefaultClient {
			t.Error("httpClient should default to http.DefaultClient")
		}
	})

	t.Run("base url trailing slash trimmed", func(t *testing.T) {
		c := New("token", WithBaseURL("http://localhost:8080/api/v1/"))
		if c.baseURL != "http://localhost:8080/api/v1" {
			t.Errorf("baseURL = %q, want trailing slash removed", c.baseURL)
		}
	})
}

func TestClient_AuthHeader(t *testing.T) {
	f := newFakeHetzner()
	c := newTestClient(t, f)

	if _, err := c.ListZones(context.Background()); err != nil {
		t.Fatalf("ListZones() error = %v", err)
	}
	if f.lastAuthHeader != testToken {
		t.Errorf("Auth-API-Token header = %q, want %q", f.lastAuthHeader, testToken)
	}
}

func TestClient_TokenNeverLogged(t *testing.T) {
	f := newFakeHetzner()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c := New(testToken, WithBaseURL(srv.URL+"/api/v1"), WithHTTPClient(srv.Client()), WithLogger(logger))

	if _, err := c.ListZones(context.Background()); err != nil {
		t.Fatalf("ListZones() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected debug log output")
	}
	if strings.Contains(buf.String(), testToken) {
		t.Errorf("token leaked into log output: %s", buf.String())
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(newFakeHetzner())
	url := srv.URL
	srv.Close()

	c := New(testToken, WithBaseURL(url+"/api/v1"))
	_, err := c.ListZones(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %v is not *APIError", err)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for transport failures", apiErr.StatusCode)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	f := newFakeHetzner()
	c := newTestClient(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListZones(ctx)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in chain", err)
	}
}

func TestAllOperations_Unauthorized(t *testing.T) {
	rejectAll := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeWireError(w, http.StatusUnauthorized, "invalid api key")
	})
	c := newTestClient(t, rejectAll)
	ctx := context.Background()

	operations := []struct {
		name string
		call func() error
	}{
		{"ListZones", func() error {
			_, err := c.ListZones(ctx)
			return err
		}},
		{"ListRecords", func() error {
			_, err := c.ListRecords(ctx, "zone1")
			return err
		}},
		{"GetRecord", func() error {
			_, err := c.GetRecord(ctx, "rec1")
			return err
		}},
		{"CreateRecord", func() error {
			_, err := c.CreateRecord(ctx, "198.51.100.1", 3600, RecordTypeA, "www", "zone1")
			return err
		}},
		{"UpdateRecord", func() error {
			_, err := c.UpdateRecord(ctx, "rec1", "zone1", RecordTypeA, "www", "198.51.100.2", 3600)
			return err
		}},
		{"DeleteRecord", func() error {
			return c.DeleteRecord(ctx, "rec1")
		}},
	}

	for _, op := range operations {
		t.Run(op.name, func(t *testing.T) {
			err := op.call()
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("error = %v, want ErrUnauthorized", err)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v is not *APIError", err)
			}
			if apiErr.StatusCode != http.StatusUnauthorized {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
			}
			if apiErr.Message != "invalid api key" {
				t.Errorf("Message = %q, want %q", apiErr.Message, "invalid api key")
			}
		})
	}
}
