package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/erikbryant/sp500/config"
)

func TestCompact(t *testing.T) {
	cfg := config.Default(t.TempDir())

	err := os.WriteFile(cfg.HistoryPath(), []byte("date,tickers\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	// An empty history is left alone and nothing is offered for upload.
	written, err := compact(cfg)
	if err != nil || written != "" {
		t.Errorf("Expected nothing written, got %q %v", written, err)
	}

	err = os.WriteFile(cfg.HistoryPath(), []byte("date,tickers\n2024-01-01,A\n2024-01-02,A\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	written, err = compact(cfg)
	if err != nil || written != cfg.HistoryPath() {
		t.Errorf("Expected %s, got %q %v", cfg.HistoryPath(), written, err)
	}
}

func TestNormalize(t *testing.T) {
	cfg := config.Default(t.TempDir())

	_, err := normalize(cfg)
	if err == nil {
		t.Errorf("Expected an error without a history file")
	}

	err = os.WriteFile(cfg.HistoryPath(), []byte("date,tickers\n2024-01-01,\"FB,AAPL\"\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	written, err := normalize(cfg)
	if err != nil || written != "" {
		t.Errorf("Expected nothing written without mappings, got %q %v", written, err)
	}

	err = os.WriteFile(cfg.MappingPath(), []byte(`{"mappings": {"FB": "META"}}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	written, err = normalize(cfg)
	if err != nil || written != cfg.NormalizedPath() {
		t.Errorf("Expected %s, got %q %v", cfg.NormalizedPath(), written, err)
	}
}

const constituentsPage = `<html><body>
<table class="wikitable sortable" id="constituents">
<tr><th>Symbol</th><th>Security</th></tr>
<tr><td>MSFT</td><td>Microsoft</td></tr>
<tr><td>AAPL</td><td>Apple Inc.</td></tr>
<tr><td>BRK.B</td><td>Berkshire Hathaway</td></tr>
</table>
</body></html>`

// serve answers every request with status and body.
func serve(t *testing.T, status int, body string) *httptest.Server {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func TestUpdate(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.URL = serve(t, http.StatusOK, constituentsPage).URL

	written, err := update(cfg)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if written != cfg.HistoryPath() {
		t.Errorf("Expected %s, got %q", cfg.HistoryPath(), written)
	}

	before, err := os.ReadFile(cfg.HistoryPath())
	if err != nil {
		t.Fatal(err)
	}

	// Same constituents again: nothing to append.
	written, err = update(cfg)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if written != "" {
		t.Errorf("Expected nothing written, got %q", written)
	}

	after, err := os.ReadFile(cfg.HistoryPath())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(after), ",\"AAPL,BRK.B,MSFT\"\n") {
		t.Errorf("Expected sorted tickers in the history, got %q", after)
	}
	if string(before) != string(after) {
		t.Errorf("History changed on an unchanged run:\n%s\n%s", before, after)
	}

	constituents, err := os.ReadFile(cfg.ConstituentsPath())
	if err != nil {
		t.Fatalf("Expected a constituents file: %v", err)
	}
	if !strings.HasPrefix(string(constituents), "symbol,security,date\nMSFT,Microsoft,") {
		t.Errorf("Unexpected constituents file %q", constituents)
	}
}

func TestUpdateFetchFails(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.URL = serve(t, http.StatusInternalServerError, constituentsPage).URL

	_, err := update(cfg)
	if err == nil {
		t.Errorf("Expected an error for a failed fetch")
	}

	for _, file := range []string{cfg.HistoryPath(), cfg.ConstituentsPath()} {
		_, err = os.Stat(file)
		if !os.IsNotExist(err) {
			t.Errorf("Expected %s not to be written, got %v", file, err)
		}
	}
}
