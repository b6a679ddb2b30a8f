// Package integration runs the HTTP API end to end against a real listener.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hyperjump/ruiji/internal/analyzer"
	"github.com/hyperjump/ruiji/internal/config"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/report"
	"github.com/hyperjump/ruiji/internal/server"
)

func TestIntegration_Analyze(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	reg := prometheus.NewRegistry()
	a, err := analyzer.New(cfg, zap.NewNop(), reg)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(server.NewServer(a, &cfg.Server, reg, zap.NewNop()).Router())
	defer ts.Close()

	req := models.AnalyzeRequest{Documents: []*models.Document{
		models.NewDocument("a", "a.txt", "Hello, World! The quick brown fox jumps."),
		models.NewDocument("b", "b.txt", "hello world the quick brown fox jumps"),
		models.NewDocument("c", "c.txt", "short"),
		{ID: "d", Name: "d.txt"},
	}}
	body, _ := json.Marshal(req)
	resp, err := http.Post(ts.URL+"/api/v1/analyze", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var rep report.Report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatal(err)
	}
	if len(rep.Results) != 6 {
		t.Fatalf("results = %d, want 6", len(rep.Results))
	}

	byID := make(map[string]report.Row)
	for _, row := range rep.Results {
		byID[row.ID] = row
	}
	want := map[string]models.Status{
		"a-b": models.StatusIdentical,
		"a-c": models.StatusTooShort,
		"a-d": models.StatusMissingContent,
		"b-c": models.StatusTooShort,
		"b-d": models.StatusMissingContent,
		"c-d": models.StatusMissingContent,
	}
	for id, status := range want {
		row, ok := byID[id]
		if !ok {
			t.Errorf("missing result %s", id)
			continue
		}
		if row.Status != status {
			t.Errorf("%s status = %s, want %s", id, row.Status, status)
		}
	}
	if byID["a-b"].Similarity != 100 {
		t.Errorf("a-b similarity = %v, want 100", byID["a-b"].Similarity)
	}
	for _, id := range []string{"a-c", "a-d", "b-c", "b-d", "c-d"} {
		if byID[id].Similarity != 0 {
			t.Errorf("%s similarity = %v, want 0", id, byID[id].Similarity)
		}
	}
}
