package model

import "strings"

// AnalysisRequest is the body sent to the scanning service for one submission.
type AnalysisRequest struct {
	// URL is the normalized absolute URL of the site to scan.
	URL string `json:"url"`
}

// AnalysisResult is the scanning service's answer for a successful scan.
// Example:
//
//	{
//	  "score": 72,
//	  "status": "Partially compliant",
//	  "scanned_pages": 3,
//	  "issues": [
//	    {
//	      "severity": "high",
//	      "rule": "cookie-banner",
//	      "description": "No cookie consent banner was found",
//	      "location_guide": "body > footer",
//	      "suggestion": "Add a consent banner before setting tracking cookies",
//	      "url": "https://example.com/",
//	      "screenshot": "screenshots/home.png"
//	    }
//	  ]
//	}
type AnalysisResult struct {
	// Score is the overall compliance score, 0..100. It is displayed verbatim.
	Score int `json:"score"`

	// Status is a human-readable status label.
	Status string `json:"status"`

	// ScannedPages is the number of pages the service crawled.
	ScannedPages int `json:"scanned_pages"`

	// Issues keeps the order chosen by the service.
	Issues []Issue `json:"issues"`
}

// Issue is one finding, or one positive confirmation when Severity is SeveritySuccess.
type Issue struct {
	Severity    Severity `json:"severity"`
	Rule        string   `json:"rule"`
	Description string   `json:"description"`

	// Context is a verbatim snippet from the page. Optional.
	Context string `json:"context,omitempty"`

	// LocationGuide is a technical locator such as a CSS selector. Optional.
	LocationGuide string `json:"location_guide,omitempty"`

	// Suggestion is the remediation text, or a status confirmation for successes.
	Suggestion string `json:"suggestion"`

	// URL is the scanned page this issue pertains to.
	URL string `json:"url"`

	// Screenshot is a path relative to the service's image base.
	Screenshot string `json:"screenshot"`
}

// Severity is the service's severity bucket. Values outside the known set are
// carried verbatim and treated as defects.
type Severity string

const (
	SeveritySuccess  Severity = "success"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// IsSuccess reports whether the severity marks a positive confirmation.
func (s Severity) IsSuccess() bool {
	return s == SeveritySuccess
}

// Label returns the upper-cased badge text.
func (s Severity) Label() string {
	return strings.ToUpper(string(s))
}

// HasContext reports whether the issue carries a page snippet.
func (i Issue) HasContext() bool {
	return i.Context != ""
}

// HasLocationGuide reports whether the issue carries a technical locator.
func (i Issue) HasLocationGuide() bool {
	return i.LocationGuide != ""
}
