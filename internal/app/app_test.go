package app

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aurceive/genshin-dashboard/internal/clock"
	"github.com/aurceive/genshin-dashboard/internal/session"
)

const (
	accountsBody = `{"retcode":0,"message":"OK","data":{"list":[
		{"game_biz":"hk4e_global","region":"os_usa","game_uid":"600000001","nickname":"Aether","level":58}]}}`
	detailsBody = `{"retcode":0,"message":"OK","data":{
		"role":{"nickname":"Aether","level":58},
		"stats":{"avatar_number":54,"achievement_number":945,"spiral_abyss":"12-3"},
		"avatars":[
			{"id":10000046,"name":"Hu Tao","element":"Pyro","rarity":5,"level":90,"weapon_type":13},
			{"id":10000032,"name":"Bennett","element":"Pyro","rarity":4,"level":80,"weapon_type":1}],
		"world_explorations":[{"id":1,"parent_id":0,"name":"Mondstadt","exploration_percentage":1000}]}}`
	batchBody = `{"retcode":0,"message":"OK","data":{"list":[
		{"base":{"id":10000046,"name":"Hu Tao","element":"Pyro","rarity":5},
		 "weapon":{"name":"Staff of Homa","rarity":5,"level":90,"type":13}}],"property_map":{}}}`
	achievementsBody = `{"retcode":0,"message":"OK","data":{"list":[{"id":1,"name":"Wonders of the World","percentage":100}]}}`
)

func fakeProxy(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("ltoken_v2"); err != nil || ck.Value == "bad" {
			io.WriteString(w, `{"retcode":-1,"message":"invalid cookie"}`)
			return
		}
		switch r.URL.Query().Get("endpoint") {
		case "":
			io.WriteString(w, accountsBody)
		case "details":
			io.WriteString(w, detailsBody)
		case "character_detail":
			io.WriteString(w, batchBody)
		case "achievements":
			io.WriteString(w, achievementsBody)
		default:
			http.Error(w, "unknown endpoint", http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

type harness struct {
	t     *testing.T
	root  string
	proxy string
}

func newHarness(t *testing.T) *harness {
	t.Setenv(session.EnvLToken, "")
	t.Setenv(session.EnvLTUID, "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GENSHIN_DASHBOARD_PROXY_URL", "")
	return &harness{t: t, root: t.TempDir(), proxy: fakeProxy(t).URL + "/api/proxy"}
}

func (h *harness) run(args ...string) (int, string, string) {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	base := []string{"--store", "file", "--store-path", filepath.Join(h.root, "store.json"), "--log-level", "error"}
	code := RunWithOptions(Options{
		Root:   h.root,
		Args:   append(append([]string{}, args...), base...),
		Stdout: &stdout,
		Stderr: &stderr,
		Clock:  clock.Fixed{T: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
	})
	return code, stdout.String(), stderr.String()
}

func TestRun_NoCredentialsPrintsHint(t *testing.T) {
	h := newHarness(t)
	code, _, stderr := h.run("summary", "--proxy-url", h.proxy)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d (%s)", code, stderr)
	}
	if !strings.Contains(stderr, "hint: genshin_dashboard login") {
		t.Fatalf("expected login hint, got %q", stderr)
	}
}

func TestRun_MissingProxyIsConfigError(t *testing.T) {
	h := newHarness(t)
	if code, _, _ := h.run("login", "--ltoken", "tok", "--ltuid", "42"); code != 0 {
		t.Fatalf("login failed with %d", code)
	}
	code, _, stderr := h.run("summary")
	if code != 2 || !strings.Contains(stderr, "proxy.baseUrl") {
		t.Fatalf("expected exit 2 for missing proxy, got %d %q", code, stderr)
	}
}

func TestRun_UnknownFlagIsConfigError(t *testing.T) {
	h := newHarness(t)
	if code, _, _ := h.run("summary", "--bogus"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestRun_LoginSummaryCachedLogout(t *testing.T) {
	h := newHarness(t)

	if code, _, stderr := h.run("login", "--ltoken", "tok"); code != 2 {
		t.Fatalf("expected exit 2 without ltuid, got %d %q", code, stderr)
	}
	if code, _, stderr := h.run("login", "--ltoken", "tok", "--ltuid", "42"); code != 0 {
		t.Fatalf("login failed: %d %q", code, stderr)
	}
	if code, _, _ := h.run("summary", "--cached"); code != 1 {
		t.Fatalf("expected no cached summary before the first load, got %d", code)
	}

	code, stdout, stderr := h.run("summary", "--proxy-url", h.proxy)
	if code != 0 {
		t.Fatalf("summary failed: %d %q", code, stderr)
	}
	if !strings.Contains(stdout, "Aether (AR 58)") || !strings.Contains(stdout, "characters:    54") {
		t.Fatalf("unexpected summary output %q", stdout)
	}

	code, stdout, _ = h.run("summary", "--cached")
	if code != 0 || !strings.Contains(stdout, "uid=600000001") {
		t.Fatalf("expected cached summary, got %d %q", code, stdout)
	}

	if code, _, _ := h.run("logout"); code != 0 {
		t.Fatalf("logout failed")
	}
	if code, _, _ := h.run("summary", "--cached"); code != 1 {
		t.Fatalf("expected cached summary cleared by logout")
	}
}

func TestRun_RosterFiltersAndEnriches(t *testing.T) {
	h := newHarness(t)
	t.Setenv(session.EnvLToken, "tok")
	t.Setenv(session.EnvLTUID, "42")

	code, stdout, stderr := h.run("roster", "--proxy-url", h.proxy, "--weapon", "polearm")
	if code != 0 {
		t.Fatalf("roster failed: %d %q", code, stderr)
	}
	if !strings.Contains(stdout, "Characters: 1/2") || !strings.Contains(stdout, "Staff of Homa") {
		t.Fatalf("unexpected roster output %q", stdout)
	}
	if strings.Contains(stdout, "Bennett") {
		t.Fatalf("expected Bennett filtered out, got %q", stdout)
	}

	// Seeded by the roster batch, so no extra request is needed.
	code, stdout, _ = h.run("character", "10000046", "--proxy-url", h.proxy)
	if code != 0 || !strings.Contains(stdout, "(cached)") {
		t.Fatalf("expected cached character detail, got %d %q", code, stdout)
	}
	code, stdout, _ = h.run("character", "010000046", "--proxy-url", h.proxy)
	if code != 0 || !strings.Contains(stdout, "(cached)") {
		t.Fatalf("expected leading-zero id to hit the same cache entry, got %d %q", code, stdout)
	}
}

func TestRun_RemoteRejectionMessage(t *testing.T) {
	h := newHarness(t)
	t.Setenv(session.EnvLToken, "bad")
	t.Setenv(session.EnvLTUID, "42")

	code, _, stderr := h.run("regions", "--proxy-url", h.proxy)
	if code != 1 || !strings.Contains(stderr, "invalid cookie") {
		t.Fatalf("expected invalid cookie error, got %d %q", code, stderr)
	}
}

func TestRun_ExportWritesWorkbook(t *testing.T) {
	h := newHarness(t)
	t.Setenv(session.EnvLToken, "tok")
	t.Setenv(session.EnvLTUID, "42")

	code, stdout, stderr := h.run("export", "--proxy-url", h.proxy)
	if code != 0 {
		t.Fatalf("export failed: %d %q", code, stderr)
	}
	want := filepath.Join(h.root, "output", "genshin_dashboard", "20261019_Aether.xlsx")
	if !strings.Contains(stdout, want) {
		t.Fatalf("expected output path %q, got %q", want, stdout)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected workbook on disk: %v", err)
	}
}
