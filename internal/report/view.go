// Package report maps an AnalysisResult to a view tree and applies that tree to
// output surfaces (HTML, terminal text). Build is pure; the adapters only read
// the view.
package report

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/raysh454/compliscan/internal/model"
)

// Tier is the score indicator's styling bucket.
type Tier string

const (
	TierSuccess Tier = "success"
	TierWarning Tier = "warning"
	TierDanger  Tier = "danger"
)

// ScoreTier buckets a score: >= 90 success, >= 60 warning, otherwise danger.
func ScoreTier(score int) Tier {
	switch {
	case score >= 90:
		return TierSuccess
	case score >= 60:
		return TierWarning
	default:
		return TierDanger
	}
}

// Icon names the glyph shown next to a card title or block label.
type Icon string

const (
	IconCheck     Icon = "check-circle"
	IconWarning   Icon = "triangle-exclamation"
	IconThumbsUp  Icon = "thumbs-up"
	IconLightbulb Icon = "lightbulb"
	IconCode      Icon = "code-branch"
	IconLink      Icon = "external-link-alt"
)

// Fixed texts of the report.
const (
	NoIssuesTitle = "No issues detected"
	NoIssuesBody  = "Congratulations! The site appears to comply with the checked rules."

	LabelInfo             = "Info"
	LabelError            = "Error"
	LabelContextVerified  = "Verified context"
	LabelContextFound     = "Context found"
	LabelLocationGuide    = "Location guide (technical)"
	LabelStatus           = "Status"
	LabelHowToFix         = "How to Fix"
	LinkText              = "View on page"
	ScreenshotAlt         = "Screenshot of the finding"
	ScreenshotCaption     = "Click to enlarge"
	NewBrowsingContext    = "_blank"
	LocationColorSuccess  = "green"
	LocationColorDefect   = "#d63384"
	pagesScannedLabelTmpl = "Pages scanned: %d"
)

// View is the whole report as it should appear once a scan succeeded.
type View struct {
	Visible      bool      `json:"visible"`
	Score        ScoreView `json:"score"`
	Status       string    `json:"status"`
	PagesScanned int       `json:"pages_scanned"`
	PagesLabel   string    `json:"pages_label"`
	Cards        []Card    `json:"cards"`

	// Scroll asks the surface to bring the report into view with smooth motion.
	Scroll ScrollBehavior `json:"scroll"`
}

// ScrollBehavior mirrors the DOM scrollIntoView behavior values.
type ScrollBehavior string

const ScrollSmooth ScrollBehavior = "smooth"

// ScoreView is the numeric score and its tier.
type ScoreView struct {
	Value int  `json:"value"`
	Tier  Tier `json:"tier"`
}

// Card is one entry of the issue list.
type Card struct {
	// Synthetic marks the "no issues" fallback card, which is not a real Issue.
	Synthetic bool `json:"synthetic"`

	// Severity styles the card. The synthetic card uses success.
	Severity model.Severity `json:"severity"`
	Success  bool           `json:"success"`
	Icon     Icon           `json:"icon"`
	Title    string         `json:"title"`
	Badge    string         `json:"badge,omitempty"`

	Description Block  `json:"description"`
	Context     *Block `json:"context,omitempty"`
	Location    *Block `json:"location,omitempty"`
	Suggestion  *Block `json:"suggestion,omitempty"`
	Link        *Link  `json:"link,omitempty"`
	Image       *Image `json:"image,omitempty"`
}

// Block is a labelled piece of card content.
type Block struct {
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
	Icon  Icon   `json:"icon,omitempty"`

	// Color is set on the location guide: green for successes, magenta otherwise.
	Color string `json:"color,omitempty"`

	// Highlight gives the suggestion block a success background.
	Highlight bool `json:"highlight,omitempty"`
}

// Link points at the scanned page.
type Link struct {
	Href   string `json:"href"`
	Text   string `json:"text"`
	Target string `json:"target"`
}

// Image is the issue screenshot. Href opens it full size in Target.
type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Href    string `json:"href"`
	Target  string `json:"target"`
	Caption string `json:"caption"`
}

// Options carries what Build needs beyond the result itself.
type Options struct {
	// ImageBase is the origin screenshots are resolved against. When nil the
	// screenshot path is used unchanged.
	ImageBase *url.URL
}

// Build maps result to a fresh View. It does not modify result.
func Build(result model.AnalysisResult, opts Options) *View {
	v := &View{
		Visible: true,
		Score: ScoreView{
			Value: result.Score,
			Tier:  ScoreTier(result.Score),
		},
		Status:       result.Status,
		PagesScanned: result.ScannedPages,
		PagesLabel:   fmt.Sprintf(pagesScannedLabelTmpl, result.ScannedPages),
		Scroll:       ScrollSmooth,
	}

	if len(result.Issues) == 0 {
		v.Cards = []Card{noIssuesCard()}
		return v
	}

	v.Cards = make([]Card, 0, len(result.Issues))
	for _, issue := range result.Issues {
		v.Cards = append(v.Cards, issueCard(issue, opts))
	}
	return v
}

func noIssuesCard() Card {
	return Card{
		Synthetic:   true,
		Severity:    model.SeveritySuccess,
		Success:     true,
		Icon:        IconCheck,
		Title:       NoIssuesTitle,
		Description: Block{Text: NoIssuesBody},
	}
}

func issueCard(issue model.Issue, opts Options) Card {
	success := issue.Severity.IsSuccess()

	c := Card{
		Severity: issue.Severity,
		Success:  success,
		Icon:     IconWarning,
		Title:    issue.Rule,
		Badge:    issue.Severity.Label(),
		Description: Block{
			Label: LabelError,
			Text:  issue.Description,
		},
		Suggestion: &Block{
			Label: LabelHowToFix,
			Text:  issue.Suggestion,
			Icon:  IconLightbulb,
		},
		Link: &Link{
			Href:   issue.URL,
			Text:   LinkText,
			Target: NewBrowsingContext,
		},
	}
	if success {
		c.Icon = IconCheck
		c.Description.Label = LabelInfo
		c.Suggestion.Label = LabelStatus
		c.Suggestion.Icon = IconThumbsUp
		c.Suggestion.Highlight = true
	}

	if issue.HasContext() {
		label := LabelContextFound
		if success {
			label = LabelContextVerified
		}
		c.Context = &Block{Label: label, Text: issue.Context}
	}

	if issue.HasLocationGuide() {
		color := LocationColorDefect
		if success {
			color = LocationColorSuccess
		}
		c.Location = &Block{
			Label: LabelLocationGuide,
			Text:  issue.LocationGuide,
			Icon:  IconCode,
			Color: color,
		}
	}

	// Every issue card carries its screenshot, even when the path is empty.
	src := ResolveScreenshot(opts.ImageBase, issue.Screenshot)
	c.Image = &Image{
		Src:     src,
		Alt:     ScreenshotAlt,
		Href:    src,
		Target:  NewBrowsingContext,
		Caption: ScreenshotCaption,
	}

	return c
}

// ResolveScreenshot joins a screenshot path onto base. Absolute screenshot
// URLs are returned as they are.
func ResolveScreenshot(base *url.URL, screenshot string) string {
	if base == nil {
		return screenshot
	}
	ref, err := url.Parse(strings.TrimLeft(screenshot, "/"))
	if err != nil {
		return strings.TrimRight(base.String(), "/") + "/" + strings.TrimLeft(screenshot, "/")
	}
	if ref.IsAbs() {
		return ref.String()
	}

	dir := *base
	if !strings.HasSuffix(dir.Path, "/") {
		dir.Path += "/"
	}
	return dir.ResolveReference(ref).String()
}

// Counts is a summary of a view's cards.
type Counts struct {
	Synthetic int
	Issues    int
	Successes int
	Defects   int
}

// Count tallies the cards of v.
func (v *View) Count() Counts {
	var c Counts
	for _, card := range v.Cards {
		switch {
		case card.Synthetic:
			c.Synthetic++
		case card.Success:
			c.Issues++
			c.Successes++
		default:
			c.Issues++
			c.Defects++
		}
	}
	return c
}
