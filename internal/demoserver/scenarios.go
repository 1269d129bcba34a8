package demoserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/raysh454/compliscan/internal/model"
)

// Scenario is one canned answer of the stub scanning service.
type Scenario struct {
	Name        string
	Description string
	Status      int
	ContentType string

	// Body builds the response for the normalized target.
	Body func(target *url.URL) []byte

	// Slow answers after Config.SlowDelay.
	Slow bool
}

// Scenario names. A target whose host contains one of them gets that answer.
const (
	ScenarioClean   = "clean"
	ScenarioBroken  = "broken"
	ScenarioGarbage = "garbage"
	ScenarioSlow    = "slow"
	ScenarioMixed   = "mixed"
)

// GetAllScenarios returns every scenario in matching order; mixed comes last
// and is the fallback.
func GetAllScenarios() []Scenario {
	return []Scenario{
		{
			Name:        ScenarioClean,
			Description: "Fully compliant site, no issues",
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        cleanResult,
		},
		{
			Name:        ScenarioBroken,
			Description: "Scanner crashes with a plain text 500",
			Status:      http.StatusInternalServerError,
			ContentType: "text/plain; charset=utf-8",
			Body:        func(*url.URL) []byte { return []byte("Internal Error") },
		},
		{
			Name:        ScenarioGarbage,
			Description: "2xx answer that is not JSON",
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        func(*url.URL) []byte { return []byte("<html><body>scanner maintenance</body></html>") },
		},
		{
			Name:        ScenarioSlow,
			Description: "Mixed findings after a delay",
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        mixedResult,
			Slow:        true,
		},
		{
			Name:        ScenarioMixed,
			Description: "Defects of every severity plus confirmations",
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        mixedResult,
		},
	}
}

// ===== RESULTS =====

func cleanResult(*url.URL) []byte {
	return mustJSON(model.AnalysisResult{
		Score:        100,
		Status:       "Compliant",
		ScannedPages: 3,
		Issues:       []model.Issue{},
	})
}

func mixedResult(target *url.URL) []byte {
	page := func(p string) string {
		u := *target
		u.Path = p
		u.RawQuery = ""
		return u.String()
	}
	return mustJSON(model.AnalysisResult{
		Score:        68,
		Status:       "Partially compliant",
		ScannedPages: 4,
		Issues: []model.Issue{
			{
				Severity:      model.SeverityCritical,
				Rule:          "Contact form over HTTP",
				Description:   "The contact form posts personal data to an unencrypted endpoint.",
				LocationGuide: `form#contact[action^="http://"]`,
				Suggestion:    "Submit the form over HTTPS only.",
				URL:           page("/contact"),
				Screenshot:    "screenshots/contact-form.png",
			},
			{
				Severity:      model.SeverityHigh,
				Rule:          "Cookie consent",
				Description:   "Analytics cookies are set before the visitor gives consent.",
				LocationGuide: "document.cookie written by /static/analytics.js on load",
				Suggestion:    "Block non-essential cookies until the visitor opts in.",
				URL:           page("/"),
				Screenshot:    "screenshots/cookie-consent.png",
			},
			{
				Severity:      model.SeverityMedium,
				Rule:          "Privacy policy link",
				Description:   "No privacy policy link in the footer.",
				LocationGuide: "footer > nav.legal-links",
				Suggestion:    "Link the privacy policy from every page footer.",
				URL:           page("/"),
				Screenshot:    "screenshots/privacy-link.png",
			},
			{
				Severity:    model.SeverityLow,
				Rule:        "Image alternative text",
				Description: "2 images have no alternative text.",
				Context:     `<img src="/img/hero.jpg">`,
				Suggestion:  "Describe every meaningful image with an alt attribute.",
				URL:         page("/about"),
				Screenshot:  "screenshots/alt-text.png",
			},
			{
				Severity:    model.SeveritySuccess,
				Rule:        "Legal notice",
				Description: "A legal notice page is linked and reachable.",
				Context:     "Legal notice",
				Suggestion:  "Compliant",
				URL:         page("/legal"),
				Screenshot:  "screenshots/legal-notice.png",
			},
		},
	})
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// matchScenario picks the scenario for a target host.
func matchScenario(scenarios []Scenario, target *url.URL) Scenario {
	host := strings.ToLower(target.Hostname())
	for _, sc := range scenarios {
		if sc.Name != ScenarioMixed && strings.Contains(host, sc.Name) {
			return sc
		}
	}
	return scenarios[len(scenarios)-1]
}
