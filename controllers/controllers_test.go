package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NikhilaRaj7337/uga-nutrition-app/config"
	"github.com/NikhilaRaj7337/uga-nutrition-app/controllers"
	"github.com/NikhilaRaj7337/uga-nutrition-app/llm"
	"github.com/NikhilaRaj7337/uga-nutrition-app/routes"
	"github.com/NikhilaRaj7337/uga-nutrition-app/services"
	"github.com/NikhilaRaj7337/uga-nutrition-app/session"
)

// testServer wires the full router against the embedded seed menu and
// an unavailable LLM client, so advisor requests exercise the keyword
// fallback deterministically.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.LLM.APIKey = ""

	catalog, err := services.NewCatalog(services.SeedSource{})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	store := session.NewStore("test-secret", time.Hour)
	controllers.Init(cfg, store, catalog, services.NewAdvisor(catalog), llm.NewClient(cfg.LLM))

	srv := httptest.NewServer(routes.SetupRouter(cfg, store))
	t.Cleanup(srv.Close)
	return srv
}

type client struct {
	t     *testing.T
	base  string
	token string
}

func (c *client) do(method, path string, body interface{}) (*http.Response, []byte) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	return resp, buf.Bytes()
}

func (c *client) doJSON(method, path string, body interface{}, wantStatus int, out interface{}) {
	c.t.Helper()
	resp, raw := c.do(method, path, body)
	if resp.StatusCode != wantStatus {
		c.t.Fatalf("%s %s: status %d, want %d: %s", method, path, resp.StatusCode, wantStatus, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.t.Fatalf("%s %s: decode: %v (%s)", method, path, err, raw)
		}
	}
}

func newSessionClient(t *testing.T, srv *httptest.Server) *client {
	t.Helper()
	c := &client{t: t, base: srv.URL}

	var created controllers.CreateSessionResponse
	c.doJSON(http.MethodPost, "/session", nil, http.StatusCreated, &created)
	if created.Token == "" {
		t.Fatal("empty session token")
	}
	c.token = created.Token
	return c
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	srv := testServer(t)
	c := &client{t: t, base: srv.URL}

	for _, path := range []string{"/profile", "/menu", "/log", "/advisor/history", "/settings"} {
		resp, _ := c.do(http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status %d, want 401", path, resp.StatusCode)
		}
	}

	resp, _ := c.do(http.MethodGet, "/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /healthz: status %d, want 200", resp.StatusCode)
	}
}

func TestOnboardingFlow(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	// No profile yet.
	resp, _ := c.do(http.MethodGet, "/profile", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET /profile before setup: status %d, want 404", resp.StatusCode)
	}

	// Goal before profile is rejected.
	resp, _ = c.do(http.MethodPost, "/goals", map[string]string{"goal_type": "bulk"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("POST /goals before profile: status %d, want 409", resp.StatusCode)
	}

	c.doJSON(http.MethodPut, "/profile", map[string]interface{}{
		"weight_lbs":     160,
		"height_ft":      5,
		"height_in":      9,
		"activity_level": "moderate",
	}, http.StatusOK, nil)

	var goal controllers.GoalResponse
	c.doJSON(http.MethodPost, "/goals", map[string]string{"goal_type": "bulk"}, http.StatusCreated, &goal)
	if goal.Targets == nil || goal.Targets.Calories != 2975 || goal.Targets.Protein != 160 {
		t.Fatalf("targets = %+v, want 2975 kcal / 160g protein", goal.Targets)
	}

	// Targets stay frozen when the profile changes afterwards.
	c.doJSON(http.MethodPut, "/profile", map[string]interface{}{
		"weight_lbs":     200,
		"height_ft":      5,
		"height_in":      9,
		"activity_level": "moderate",
	}, http.StatusOK, nil)

	var targets struct {
		Calories int `json:"calories"`
	}
	c.doJSON(http.MethodGet, "/targets", nil, http.StatusOK, &targets)
	if targets.Calories != 2975 {
		t.Errorf("targets moved after profile edit: %d", targets.Calories)
	}
}

func TestProfileValidation(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	bad := []map[string]interface{}{
		{"weight_lbs": 50, "height_ft": 5, "height_in": 9, "activity_level": "moderate"},
		{"weight_lbs": 160, "height_ft": 9, "height_in": 0, "activity_level": "moderate"},
		{"weight_lbs": 160, "height_ft": 5, "height_in": 14, "activity_level": "moderate"},
		{"weight_lbs": 160, "height_ft": 5, "height_in": 9, "activity_level": "hyperactive"},
	}
	for i, body := range bad {
		resp, _ := c.do(http.MethodPut, "/profile", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("case %d: status %d, want 400", i, resp.StatusCode)
		}
	}
}

func TestMenuFiltering(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	var all struct {
		Items []json.RawMessage `json:"items"`
		Count int               `json:"count"`
	}
	c.doJSON(http.MethodGet, "/menu", nil, http.StatusOK, &all)
	if all.Count == 0 {
		t.Fatal("seed menu is empty")
	}

	var filtered struct {
		Count int `json:"count"`
	}
	c.doJSON(http.MethodGet, "/menu?hall=bolton&period=breakfast", nil, http.StatusOK, &filtered)
	if filtered.Count == 0 || filtered.Count >= all.Count {
		t.Errorf("filtered count = %d (total %d)", filtered.Count, all.Count)
	}

	resp, _ := c.do(http.MethodGet, "/menu?hall=hogwarts", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown hall: status %d, want 400", resp.StatusCode)
	}

	var halls []controllers.EnumOption
	c.doJSON(http.MethodGet, "/menu/halls", nil, http.StatusOK, &halls)
	if len(halls) != 5 {
		t.Errorf("got %d halls, want 5", len(halls))
	}
}

func TestFoodLogFlow(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	// Find a real item to log.
	var menu struct {
		Items []struct {
			ID        string `json:"item_id"`
			Nutrition struct {
				Calories int `json:"calories"`
			} `json:"nutrition"`
		} `json:"items"`
	}
	c.doJSON(http.MethodGet, "/menu", nil, http.StatusOK, &menu)
	if len(menu.Items) == 0 {
		t.Fatal("no menu items")
	}
	item := menu.Items[0]

	var entry struct {
		ID string `json:"entry_id"`
	}
	c.doJSON(http.MethodPost, "/log", map[string]interface{}{
		"item_id": item.ID, "servings": 2,
	}, http.StatusCreated, &entry)
	if entry.ID == "" {
		t.Fatal("created entry has no entry_id")
	}

	today := time.Now().Format("2006-01-02")
	var totals struct {
		Totals struct {
			Calories float64 `json:"calories"`
		} `json:"totals"`
	}
	c.doJSON(http.MethodGet, "/log/totals?date="+today, nil, http.StatusOK, &totals)
	if want := float64(item.Nutrition.Calories) * 2; totals.Totals.Calories != want {
		t.Errorf("totals = %v, want %v", totals.Totals.Calories, want)
	}

	// Unknown item 404s, tiny servings 400.
	resp, _ := c.do(http.MethodPost, "/log", map[string]interface{}{"item_id": "nope", "servings": 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown item: status %d, want 404", resp.StatusCode)
	}
	resp, _ = c.do(http.MethodPost, "/log", map[string]interface{}{"item_id": item.ID, "servings": 0.25})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("tiny servings: status %d, want 400", resp.StatusCode)
	}

	// Delete twice: both succeed.
	for i := 0; i < 2; i++ {
		resp, _ = c.do(http.MethodDelete, "/log/"+entry.ID, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("delete %d: status %d, want 200", i, resp.StatusCode)
		}
	}

	c.doJSON(http.MethodGet, "/log/totals?date="+today, nil, http.StatusOK, &totals)
	if totals.Totals.Calories != 0 {
		t.Errorf("totals after delete = %v, want 0", totals.Totals.Calories)
	}
}

func TestCSVExport(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	var menu struct {
		Items []struct {
			ID string `json:"item_id"`
		} `json:"items"`
	}
	c.doJSON(http.MethodGet, "/menu", nil, http.StatusOK, &menu)
	c.doJSON(http.MethodPost, "/log", map[string]interface{}{"item_id": menu.Items[0].ID, "servings": 1}, http.StatusCreated, nil)

	today := time.Now().Format("2006-01-02")
	resp, raw := c.do(http.MethodGet, "/export/log.csv?date="+today, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, raw)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != services.LogCSVHeader {
		t.Errorf("header = %q", lines[0])
	}
}

func TestBackupExportAndRestore(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	c.doJSON(http.MethodPut, "/profile", map[string]interface{}{
		"weight_lbs": 160, "height_ft": 5, "height_in": 9, "activity_level": "moderate",
	}, http.StatusOK, nil)
	c.doJSON(http.MethodPost, "/goals", map[string]string{"goal_type": "cut"}, http.StatusCreated, nil)

	resp, backup := c.do(http.MethodGet, "/export/backup", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export: status %d", resp.StatusCode)
	}

	// Wipe, then restore into the same session.
	c.doJSON(http.MethodPost, "/reset", nil, http.StatusOK, nil)
	resp, _ = c.do(http.MethodGet, "/targets", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("targets survived reset: status %d", resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/import/backup", bytes.NewReader(backup))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	restoreResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	restoreResp.Body.Close()
	if restoreResp.StatusCode != http.StatusOK {
		t.Fatalf("import: status %d", restoreResp.StatusCode)
	}

	var targets struct {
		Calories int `json:"calories"`
	}
	c.doJSON(http.MethodGet, "/targets", nil, http.StatusOK, &targets)
	if targets.Calories == 0 {
		t.Error("targets not restored from backup")
	}
}

func TestAdvisorFallbackOverHTTP(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	var reply services.AdvisorReply
	c.doJSON(http.MethodPost, "/advisor/chat", map[string]interface{}{
		"message": "how much protein should I eat?",
	}, http.StatusOK, &reply)
	if !reply.Success || reply.Message == "" || reply.Citation == "" {
		t.Fatalf("reply = %+v", reply)
	}

	// Both turns land in history.
	var history []struct {
		Role string `json:"role"`
	}
	c.doJSON(http.MethodGet, "/advisor/history", nil, http.StatusOK, &history)
	if len(history) != 2 || history[0].Role != "user" || history[1].Role != "assistant" {
		t.Fatalf("history = %+v", history)
	}

	c.doJSON(http.MethodDelete, "/advisor/history", nil, http.StatusOK, nil)
	c.doJSON(http.MethodGet, "/advisor/history", nil, http.StatusOK, &history)
	if len(history) != 0 {
		t.Errorf("history not cleared: %d messages", len(history))
	}

	resp, _ := c.do(http.MethodPost, "/advisor/chat", map[string]interface{}{"message": "   "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank message: status %d, want 400", resp.StatusCode)
	}
}

func TestSettingsCredentialPresence(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	var settings controllers.SettingsResponse
	c.doJSON(http.MethodGet, "/settings", nil, http.StatusOK, &settings)
	if settings.CredentialSet {
		t.Error("credential reported set with no key anywhere")
	}

	c.doJSON(http.MethodPut, "/settings/credential", map[string]string{"api_key": "sk-test"}, http.StatusOK, nil)

	resp, raw := c.do(http.MethodGet, "/settings", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if strings.Contains(string(raw), "sk-test") {
		t.Error("settings response echoed the key")
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !settings.CredentialSet {
		t.Error("credential not reported set")
	}
}

func TestSessionTeardown(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	c.doJSON(http.MethodDelete, "/session", nil, http.StatusOK, nil)
	resp, _ := c.do(http.MethodGet, "/profile", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("request after teardown: status %d, want 401", resp.StatusCode)
	}
}

func TestWeeklyProgressParamValidation(t *testing.T) {
	srv := testServer(t)
	c := newSessionClient(t, srv)

	for _, days := range []string{"0", "-3", "91", "abc"} {
		resp, _ := c.do(http.MethodGet, fmt.Sprintf("/progress/weekly?days=%s", days), nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("days=%s: status %d, want 400", days, resp.StatusCode)
		}
	}

	var progress struct {
		Days       int `json:"days"`
		DaysLogged int `json:"days_logged"`
	}
	c.doJSON(http.MethodGet, "/progress/weekly", nil, http.StatusOK, &progress)
	if progress.Days != 7 || progress.DaysLogged != 0 {
		t.Errorf("progress = %+v", progress)
	}
}
