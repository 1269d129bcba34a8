package model_test

import (
	"encoding/json"
	"testing"

	"github.com/raysh454/compliscan/internal/model"
)

func TestSeverity_Label(t *testing.T) {
	t.Parallel()
	cases := map[model.Severity]string{
		model.SeveritySuccess:  "SUCCESS",
		model.SeverityHigh:     "HIGH",
		model.Severity("info"): "INFO",
		model.Severity(""):     "",
	}
	for sev, want := range cases {
		if got := sev.Label(); got != want {
			t.Errorf("Label(%q) = %q, want %q", sev, got, want)
		}
	}
}

func TestSeverity_IsSuccess(t *testing.T) {
	t.Parallel()
	if !model.SeveritySuccess.IsSuccess() {
		t.Error("success severity should report IsSuccess")
	}
	for _, s := range []model.Severity{model.SeverityLow, model.SeverityCritical, "Success", "unknown"} {
		if s.IsSuccess() {
			t.Errorf("%q should not report IsSuccess", s)
		}
	}
}

func TestAnalysisResult_DecodesServicePayload(t *testing.T) {
	t.Parallel()
	body := `{
		"score": 45,
		"status": "Non compliant",
		"scanned_pages": 3,
		"issues": [
			{"severity":"critical","rule":"privacy-policy","description":"missing","suggestion":"add one",
			 "url":"https://example.com/","screenshot":"screenshots/a.png","location_guide":"footer a"},
			{"severity":"success","rule":"https","description":"ok","context":"Secure","suggestion":"fine",
			 "url":"https://example.com/about","screenshot":"screenshots/b.png"}
		]
	}`

	var res model.AnalysisResult
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if res.Score != 45 || res.ScannedPages != 3 || res.Status != "Non compliant" {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if len(res.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(res.Issues))
	}
	if res.Issues[0].Rule != "privacy-policy" || res.Issues[1].Rule != "https" {
		t.Errorf("issue order not preserved: %q, %q", res.Issues[0].Rule, res.Issues[1].Rule)
	}
	if res.Issues[0].HasContext() || !res.Issues[0].HasLocationGuide() {
		t.Errorf("first issue optional fields wrong: %+v", res.Issues[0])
	}
	if !res.Issues[1].HasContext() || res.Issues[1].HasLocationGuide() {
		t.Errorf("second issue optional fields wrong: %+v", res.Issues[1])
	}
}
