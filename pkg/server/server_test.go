package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "github.com/prometheus/client_model/go"

	"github.com/lumen-ui/lumen/pkg/dom"
)

func staticProvider(node *dom.VNode) Provider {
	return func() (*dom.VNode, error) { return node, nil }
}

func TestHandlePage(t *testing.T) {
	srv := New(Config{}, staticProvider(dom.Div(dom.Class("home"), "hello")))
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != `<div class="home">hello</div>` {
		t.Errorf("body = %q", body)
	}
}

func TestHandlePageProviderError(t *testing.T) {
	srv := New(Config{}, func() (*dom.VNode, error) {
		return nil, errors.New("fixture unreadable")
	})
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", resp.StatusCode)
	}

	if got := counterValue(t, srv.metrics.RenderErrors); got != 1 {
		t.Errorf("render errors = %v, want 1", got)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := New(Config{}, staticProvider(dom.Div()))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandleReload(t *testing.T) {
	trees := []*dom.VNode{
		dom.Div(dom.Class("a"), dom.ID("x")),
		dom.Div(dom.Class("b")),
	}
	i := 0
	srv := New(Config{}, func() (*dom.VNode, error) {
		node := trees[i]
		if i < len(trees)-1 {
			i++
		}
		return node, nil
	})

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	// Prime the last-rendered tree through a page request.
	if _, err := http.Get(ts.URL + "/"); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(ts.URL+"/reload", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	// class changes and id disappears.
	if out["patches"] != 2 {
		t.Errorf("patches = %d, want 2", out["patches"])
	}

	if got := counterValue(t, srv.metrics.PatchesTotal); got != 2 {
		t.Errorf("patches total = %v, want 2", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := New(Config{MetricsNamespace: "testns"}, staticProvider(dom.Div()))
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	if _, err := http.Get(ts.URL + "/"); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "testns_render_total") {
		t.Errorf("metrics output missing render counter:\n%s", body)
	}
}

func TestRenderWarningsAreCounted(t *testing.T) {
	srv := New(Config{}, staticProvider(dom.Svg(dom.Prop("viewbox", "0 0 1 1"))))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := counterValue(t, srv.metrics.WarningsTotal); got != 1 {
		t.Errorf("warnings total = %v, want 1", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	srv := New(Config{}, staticProvider(dom.Div()))
	if srv.config.Address != ":8380" {
		t.Errorf("Address = %q", srv.config.Address)
	}
	if srv.config.MetricsNamespace != "lumen" {
		t.Errorf("MetricsNamespace = %q", srv.config.MetricsNamespace)
	}
	if srv.config.ShutdownTimeout == 0 {
		t.Error("ShutdownTimeout should default")
	}
}

// counterValue reads a prometheus counter through its protobuf form.
func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatal(err)
	}
	return m.GetCounter().GetValue()
}
