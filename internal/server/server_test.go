package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/aocctl/internal/config"
	"github.com/danmuck/aocctl/internal/inputs"
	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/danmuck/aocctl/internal/puzzles/builtin"
	"github.com/danmuck/aocctl/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
)

const day09Example = "0 3 6 9 12 15\n1 3 6 10 15 21\n10 13 16 21 30 45\n"

func newTestServer(t *testing.T, maxInput int64) *Server {
	t.Helper()
	return newTestServerWithInputs(t, maxInput, t.TempDir())
}

func newTestServerWithInputs(t *testing.T, maxInput int64, inputDir string) *Server {
	t.Helper()
	t.Setenv(inputs.SessionEnv, "")
	gin.SetMode(gin.TestMode)
	registry, err := builtin.NewRegistry(builtin.DefaultOptions())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	cfg := config.DefaultServerConfig()
	cfg.MaxInputBytes = maxInput
	cfg.InputDir = inputDir
	s := Appear(cfg, puzzles.NewRunner(registry, puzzles.RunnerConfig{Concurrency: 2}))
	s.RegisterRoutes()
	return s
}

func do(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("%s %s: decode body %q: %v", method, path, rr.Body.String(), err)
	}
	return rr, out
}

func TestHealthAndReady(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, 0)

	rr, body := do(t, s, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("health: %d %#v", rr.Code, body)
	}
	rr, body = do(t, s, http.MethodGet, "/ready", "")
	if rr.Code != http.StatusOK || body["ready"] != true || body["puzzles"] != float64(11) {
		t.Fatalf("ready: %d %#v", rr.Code, body)
	}
}

func TestListAndGetPuzzle(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, 0)

	rr, body := do(t, s, http.MethodGet, "/puzzles", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: %d", rr.Code)
	}
	list, ok := body["puzzles"].([]any)
	if !ok || len(list) != 11 {
		t.Fatalf("expected 11 puzzles, got %#v", body["puzzles"])
	}

	rr, body = do(t, s, http.MethodGet, "/puzzles/7", "")
	if rr.Code != http.StatusOK || body["id"] != "day07" || body["title"] != "Camel Cards" {
		t.Fatalf("get: %d %#v", rr.Code, body)
	}

	rr, _ = do(t, s, http.MethodGet, "/puzzles/day20", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unregistered day, got %d", rr.Code)
	}
}

func TestSolvePart(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, 0)

	rr, body := do(t, s, http.MethodPost, "/puzzles/day09/parts/1", day09Example)
	if rr.Code != http.StatusOK || body["answer"] != float64(114) || body["part"] != "part1" {
		t.Fatalf("part one: %d %#v", rr.Code, body)
	}
	rr, body = do(t, s, http.MethodPost, "/puzzles/9/parts/two", day09Example)
	if rr.Code != http.StatusOK || body["answer"] != float64(2) {
		t.Fatalf("part two: %d %#v", rr.Code, body)
	}
}

func TestSolvePartErrors(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, 64)

	cases := []struct {
		path string
		body string
		want int
	}{
		{"/puzzles/day42/parts/1", day09Example, http.StatusNotFound},
		{"/puzzles/day09/parts/3", day09Example, http.StatusBadRequest},
		{"/puzzles/day09/parts/1", "1 2 x\n", http.StatusUnprocessableEntity},
		{"/puzzles/day09/parts/1", strings.Repeat("1 2 3\n", 20), http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		rr, body := do(t, s, http.MethodPost, tc.path, tc.body)
		if rr.Code != tc.want {
			t.Fatalf("%s: got %d want %d (%#v)", tc.path, rr.Code, tc.want, body)
		}
		if _, ok := body["error"]; !ok {
			t.Fatalf("%s: expected error field, got %#v", tc.path, body)
		}
	}
}

func TestCheckExamplesRoute(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, 0)

	rr, body := do(t, s, http.MethodPost, "/puzzles/day05/check", "")
	if rr.Code != http.StatusOK || body["passed"] != true {
		t.Fatalf("check: %d %#v", rr.Code, body)
	}
	reports, ok := body["reports"].([]any)
	if !ok || len(reports) != 2 {
		t.Fatalf("expected two reports, got %#v", body["reports"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, 0)
	do(t, s, http.MethodPost, "/puzzles/day09/parts/1", day09Example)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "aocctl_solve_total") {
		t.Fatalf("expected solve counter in metrics output")
	}
}

func TestSolvePartFromCachedInput(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day09.txt"), []byte(day09Example), 0o600); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	s := newTestServerWithInputs(t, 0, dir)

	rr, body := do(t, s, http.MethodPost, "/puzzles/day09/parts/1", "")
	if rr.Code != http.StatusOK || body["answer"] != float64(114) {
		t.Fatalf("cached solve: %d %#v", rr.Code, body)
	}
	rr, _ = do(t, s, http.MethodPost, "/puzzles/day08/parts/1", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without cached input or session, got %d", rr.Code)
	}
}
