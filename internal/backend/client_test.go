package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/five82/clipdeck/internal/clip"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_ListEncodesQueryAndDropsInvalid(t *testing.T) {
	t.Parallel()

	var gotQuery, gotUserAgent, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/items" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("s")
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"data":"hello world","data_type":"text"},
			{"data":"","data_type":"text"},
			{"data":"iVBORw0KGgo=","kind":"image"},
			{"data":"<b>x</b>","data_type":"html"}
		]`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	list, err := c.List(ctx, "hello there")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if gotQuery != "hello there" {
		t.Fatalf("query = %q, want %q", gotQuery, "hello there")
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-Id header missing")
	}
	want := clip.List{
		clip.Text("hello world"),
		clip.Image("iVBORw0KGgo="),
		{Data: "<b>x</b>", Kind: clip.KindHTML},
	}
	if !clip.ListsEqual(list, want) {
		t.Fatalf("List = %#v, want %#v", list, want)
	}
}

func TestClient_WriteAndRemoveSendItem(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	bodies := map[string]map[string]any{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		bodies[r.URL.Path] = payload
		mu.Unlock()
		switch r.URL.Path {
		case "/api/set_data":
			_, _ = io.WriteString(w, `"OK"`)
		case "/api/delete_item":
			_, _ = io.WriteString(w, `"Item not found"`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	status, err := c.Write(ctx, clip.Text("abc"))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if !status.OK() {
		t.Fatalf("Write status = %q, want OK", status)
	}

	status, err = c.Remove(ctx, clip.Text("abc"))
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if status.OK() {
		t.Fatalf("Remove status = %q, want non-OK", status)
	}
	if !errors.Is(status.Err(), ErrStatus) {
		t.Fatalf("status.Err() = %v, want ErrStatus", status.Err())
	}

	mu.Lock()
	defer mu.Unlock()
	for _, path := range []string{"/api/set_data", "/api/delete_item"} {
		item, ok := bodies[path]["item"].(map[string]any)
		if !ok {
			t.Fatalf("%s body missing item: %#v", path, bodies[path])
		}
		if item["data"] != "abc" || item["data_type"] != "text" {
			t.Fatalf("%s item = %#v, want data=abc data_type=text", path, item)
		}
	}
}

func TestClient_NonSuccessStatusIsError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `"Unsupported item kind: rtf"`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.Write(context.Background(), clip.Entry{Data: "x", Kind: clip.KindRTF})
	if err == nil {
		t.Fatalf("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "status 500") || !strings.Contains(err.Error(), "Unsupported item kind: rtf") {
		t.Fatalf("error = %q, want status and body message", err.Error())
	}

	_, err = c.List(context.Background(), "")
	if err == nil || !strings.Contains(err.Error(), "/api/items") {
		t.Fatalf("List error = %v, want path in message", err)
	}
}

func TestClient_ToggleVisibility(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/toggle_window" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `"hidden"`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	got, err := c.ToggleVisibility(context.Background())
	if err != nil {
		t.Fatalf("ToggleVisibility returned error: %v", err)
	}
	if got != "hidden" {
		t.Fatalf("ToggleVisibility = %q, want hidden", got)
	}
}

func TestClient_DecodeErrorAndCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("s") == "slow" {
			select {
			case <-release:
			case <-r.Context().Done():
			}
			return
		}
		_, _ = io.WriteString(w, "not json")
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := c.List(context.Background(), ""); err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("List error = %v, want decode error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.List(ctx, "slow"); !errors.Is(err, context.Canceled) {
		t.Fatalf("List error = %v, want context.Canceled", err)
	}
}

func TestStatus_Err(t *testing.T) {
	if err := StatusOK.Err(); err != nil {
		t.Fatalf("StatusOK.Err() = %v, want nil", err)
	}
	for _, s := range []Status{"", "Item not found", "ok"} {
		if err := s.Err(); !errors.Is(err, ErrStatus) {
			t.Fatalf("Status(%q).Err() = %v, want ErrStatus", s, err)
		}
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.List(context.Background(), ""); err == nil {
		t.Fatalf("expected error from nil client")
	}
	if _, err := c.Write(context.Background(), clip.Text("x")); err == nil {
		t.Fatalf("expected error from nil client")
	}
	if c.BaseURL() != "" {
		t.Fatalf("BaseURL of nil client should be empty")
	}
}
