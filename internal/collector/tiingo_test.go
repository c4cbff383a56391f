package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stocker/internal/customerrors"
)

func TestTiingoFetcher_FetchQuote(t *testing.T) {
	const body = `[{"ticker":"AAPL","tngoLast":110.0,"prevClose":100.0}]`
	var gotPath, gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewTiingoFetcher(srv.URL+"/", "secret", "")
	got, err := f.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != body {
		t.Errorf("body mismatch: %s", got)
	}
	if gotPath != "/iex/AAPL" {
		t.Errorf("path: got %s", gotPath)
	}
	if gotAuth != "Token secret" {
		t.Errorf("authorization: got %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("content type: got %q", gotType)
	}
}

func TestTiingoFetcher_NonSuccessStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := NewTiingoFetcher(srv.URL, "bad", "")
	_, err := f.FetchQuote(context.Background(), "AAPL")
	if !errors.Is(err, customerrors.ErrHTTPStatus) {
		t.Fatalf("expected ErrHTTPStatus, got %v", err)
	}
	var statusErr *customerrors.HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status: got %d", statusErr.StatusCode)
	}
	if !strings.HasSuffix(statusErr.URL, "/iex/AAPL") || !strings.Contains(err.Error(), statusErr.URL) {
		t.Errorf("error should name the URL: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected exactly one request, got %d", calls)
	}
}

func TestTiingoFetcher_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewTiingoFetcher(url, "secret", "")
	if _, err := f.FetchQuote(context.Background(), "AAPL"); !errors.Is(err, customerrors.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestTiingoFetcher_QuoteURL(t *testing.T) {
	f := NewTiingoFetcher("https://api.tiingo.com", "k", "")
	if got := f.QuoteURL("AAPL"); got != "https://api.tiingo.com/iex/AAPL" {
		t.Errorf("unexpected url: %s", got)
	}
}
