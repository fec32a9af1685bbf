package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restage/internal/middleware"
	"restage/internal/promptengine"

	"github.com/rs/zerolog"
)

func testApp() *App {
	return NewApp(zerolog.Nop(), promptengine.New())
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target, body string, locale string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if locale != "" {
		req = req.WithContext(context.WithValue(req.Context(), middleware.LocaleKey, locale))
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, testApp().Health, http.MethodGet, "/v1/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Fatalf("status field = %q", body["status"])
	}
}

func TestPromptBuild(t *testing.T) {
	app := testApp()

	rec := doJSON(t, app.PromptBuild, http.MethodPost, "/v1/prompts",
		`{"style":"wabi_sabi","room_type":"living_room","engine":"sdxl"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var result promptengine.PromptResult
	decodeBody(t, rec, &result)
	if result.Prompt == "" || result.NegativePrompt == "" {
		t.Fatal("expected prompt and negative prompt")
	}
	if result.Engine != "sdxl" {
		t.Fatalf("engine = %q", result.Engine)
	}
}

func TestPromptBuildBadPayload(t *testing.T) {
	rec := doJSON(t, testApp().PromptBuild, http.MethodPost, "/v1/prompts", `{"style":`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]struct {
		Code string `json:"code"`
	}
	decodeBody(t, rec, &body)
	if body["error"].Code != "bad_request" {
		t.Fatalf("error code = %q", body["error"].Code)
	}
}

func TestPromptBuildStrictInvalidEnum(t *testing.T) {
	rec := doJSON(t, testApp().PromptBuild, http.MethodPost, "/v1/prompts",
		`{"task_mode":"repaint_everything","strict":true}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	if body["error"].Code != "invalid_enum" {
		t.Fatalf("error code = %q", body["error"].Code)
	}
	if !strings.Contains(body["error"].Message, "repaint_everything") {
		t.Fatalf("message does not name the bad value: %q", body["error"].Message)
	}
}

func TestPromptBuildUsesRequestLocale(t *testing.T) {
	rec := doJSON(t, testApp().PromptBuild, http.MethodPost, "/v1/prompts",
		`{"style":"wabi_sabi"}`, "zh")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var result promptengine.PromptResult
	decodeBody(t, rec, &result)
	if !strings.Contains(result.Prompt, "禁止改动几何结构") {
		t.Fatalf("prompt not localized to zh: %q", result.Prompt)
	}
}

func TestPromptPlan(t *testing.T) {
	rec := doJSON(t, testApp().PromptPlan, http.MethodPost, "/v1/prompts/plan",
		`{"style":"wabi_sabi","room_type":"bedroom","include_furniture":true,"include_harmonize":true}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body planResponse
	decodeBody(t, rec, &body)
	if body.PlanID == "" {
		t.Fatal("expected a plan id")
	}
	if body.Count != 9 || len(body.Passes) != 9 {
		t.Fatalf("count = %d, passes = %d, want 9", body.Count, len(body.Passes))
	}
}

func TestCatalogOptions(t *testing.T) {
	rec := doJSON(t, testApp().CatalogOptions, http.MethodGet, "/v1/catalog/options", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		TaskModes []promptengine.TaskMode `json:"task_modes"`
		Defaults  map[string]string       `json:"defaults"`
	}
	decodeBody(t, rec, &body)
	if len(body.TaskModes) != 4 {
		t.Fatalf("task modes = %v", body.TaskModes)
	}
	if body.Defaults["engine"] != string(promptengine.DefaultEngine) {
		t.Fatalf("default engine = %q", body.Defaults["engine"])
	}
}

func TestCatalogStylesLocalized(t *testing.T) {
	rec := doJSON(t, testApp().CatalogStyles, http.MethodGet, "/v1/catalog/styles", "", "zh")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Locale string                   `json:"locale"`
		Items  []promptengine.StyleInfo `json:"items"`
	}
	decodeBody(t, rec, &body)
	if body.Locale != "zh" {
		t.Fatalf("locale = %q", body.Locale)
	}
	if len(body.Items) != 8 {
		t.Fatalf("items = %d, want 8", len(body.Items))
	}
}

func TestVocabularyResolve(t *testing.T) {
	app := testApp()

	rec := doJSON(t, app.VocabularyResolve, http.MethodPost, "/v1/vocabulary/resolve",
		`{"name":"Window Frame"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body resolveResponse
	decodeBody(t, rec, &body)
	if body.Canonical != "window_frame" || !body.Resolved {
		t.Fatalf("resolve = %+v", body)
	}

	rec = doJSON(t, app.VocabularyResolve, http.MethodPost, "/v1/vocabulary/resolve",
		`{"name":"window"}`, "")
	decodeBody(t, rec, &body)
	if body.Resolved || body.Warning == "" {
		t.Fatalf("ambiguous resolve = %+v", body)
	}
}

func TestVocabularyResolveStrictAmbiguous(t *testing.T) {
	rec := doJSON(t, testApp().VocabularyResolve, http.MethodPost, "/v1/vocabulary/resolve",
		`{"name":"window","strict":true}`, "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body map[string]struct {
		Code string `json:"code"`
	}
	decodeBody(t, rec, &body)
	if body["error"].Code != "ambiguous_class" {
		t.Fatalf("error code = %q", body["error"].Code)
	}
}

func TestContractValidate(t *testing.T) {
	app := testApp()

	rec := doJSON(t, app.ContractValidate, http.MethodPost, "/v1/contracts/validate",
		`{"edit_targets":["wall"],"protect_targets":["window_frame"]}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body validateResponse
	decodeBody(t, rec, &body)
	if !body.Valid || len(body.Violations) != 0 {
		t.Fatalf("validate = %+v", body)
	}

	rec = doJSON(t, app.ContractValidate, http.MethodPost, "/v1/contracts/validate",
		`{"edit_targets":["wall","window"],"protect_targets":["wall"]}`, "")
	decodeBody(t, rec, &body)
	if body.Valid || len(body.Violations) == 0 {
		t.Fatalf("validate = %+v", body)
	}
}
