package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/compliscan/internal/model"
	"github.com/raysh454/compliscan/internal/report"
)

func renderDoc(t *testing.T, v *report.View) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := report.WriteHTML(&buf, v); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return doc
}

func TestWriteHTML_NilViewIsHiddenAndEmpty(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, nil)

	section := doc.Find("#" + report.ContainerID)
	if section.Length() != 1 {
		t.Fatalf("expected container, got %d", section.Length())
	}
	if !section.HasClass(report.ClassHidden) {
		t.Error("container should be hidden")
	}
	if n := doc.Find("." + report.ClassIssueItem).Length(); n != 0 {
		t.Errorf("expected no cards, got %d", n)
	}
}

func TestWriteHTML_ScoreIndicator(t *testing.T) {
	t.Parallel()
	v := report.Build(model.AnalysisResult{Score: 59, Status: "Failing", ScannedPages: 2}, report.Options{})
	doc := renderDoc(t, v)

	if doc.Find("#"+report.ContainerID).HasClass(report.ClassHidden) {
		t.Error("container should be visible")
	}
	if got := doc.Find("#" + report.ScoreValueID).Text(); got != "59" {
		t.Errorf("score = %q", got)
	}
	circle := doc.Find(".score-circle")
	if tier, _ := circle.Attr("data-tier"); tier != "danger" {
		t.Errorf("tier = %q", tier)
	}
	if style, _ := circle.Attr("style"); !strings.Contains(style, "var(--danger)") {
		t.Errorf("style = %q", style)
	}
	if got := doc.Find("#" + report.StatusTextID).Text(); got != "Failing" {
		t.Errorf("status = %q", got)
	}
	if got := doc.Find("#" + report.PagesScannedID).Text(); got != "Pages scanned: 2" {
		t.Errorf("pages = %q", got)
	}
	if scroll, _ := doc.Find("#"+report.ContainerID).Attr("data-scroll"); scroll != "smooth" {
		t.Errorf("scroll = %q", scroll)
	}
}

func TestWriteHTML_SyntheticCard(t *testing.T) {
	t.Parallel()
	v := report.Build(model.AnalysisResult{Score: 100, Status: "OK", ScannedPages: 5}, report.Options{})
	doc := renderDoc(t, v)

	cards := doc.Find("." + report.ClassIssueItem)
	if cards.Length() != 1 {
		t.Fatalf("expected 1 card, got %d", cards.Length())
	}
	if synthetic, _ := cards.Attr("data-synthetic"); synthetic != "true" {
		t.Error("card should be marked synthetic")
	}
	if !cards.HasClass("success") {
		t.Error("synthetic card should be success styled")
	}
	if doc.Find(`[data-synthetic="true"]`).Length() != 1 || doc.Find(".issue-content").Length() != 0 {
		t.Error("expected zero real issue cards")
	}
	if !strings.Contains(cards.Text(), report.NoIssuesTitle) {
		t.Errorf("card text = %q", cards.Text())
	}
}

func TestWriteHTML_IssueCardWithoutOptionalBlocks(t *testing.T) {
	t.Parallel()
	v := report.Build(model.AnalysisResult{Score: 30, Issues: []model.Issue{highIssue()}}, report.Options{ImageBase: mustURL(t, "http://localhost:8081")})
	doc := renderDoc(t, v)

	cards := doc.Find("." + report.ClassIssueItem)
	if cards.Length() != 1 {
		t.Fatalf("expected 1 card, got %d", cards.Length())
	}
	if cards.Find(".context-box").Length() != 0 || cards.Find(".location-box").Length() != 0 {
		t.Error("optional blocks should be absent")
	}
	if got := cards.Find(".issue-badge").Text(); got != "HIGH" {
		t.Errorf("badge = %q", got)
	}
	if got := cards.Find(".description strong").Text(); got != "Error:" {
		t.Errorf("description label = %q", got)
	}
	if got := cards.Find(".suggestion-box strong").Text(); got != "How to Fix:" {
		t.Errorf("suggestion label = %q", got)
	}
	link := cards.Find("a.link-btn")
	if href, _ := link.Attr("href"); href != "U" {
		t.Errorf("link href = %q", href)
	}
	if target, _ := link.Attr("target"); target != "_blank" {
		t.Errorf("link target = %q", target)
	}
	img := cards.Find(".issue-image img")
	if src, _ := img.Attr("src"); src != "http://localhost:8081/s.png" {
		t.Errorf("img src = %q", src)
	}
	if target, _ := cards.Find(".issue-image a").Attr("target"); target != "_blank" {
		t.Errorf("image link target = %q", target)
	}
}

func TestWriteHTML_BothOptionalBlocks(t *testing.T) {
	t.Parallel()
	issue := highIssue()
	issue.Context = "Accept all cookies"
	issue.LocationGuide = "div#banner > button"
	doc := renderDoc(t, report.Build(model.AnalysisResult{Issues: []model.Issue{issue}}, report.Options{}))

	if got := doc.Find(".context-box blockquote").Text(); got != `"Accept all cookies"` {
		t.Errorf("context = %q", got)
	}
	code := doc.Find(".location-box code")
	if code.Text() != "div#banner > button" {
		t.Errorf("location = %q", code.Text())
	}
	if style, _ := code.Attr("style"); !strings.Contains(style, "monospace") || !strings.Contains(style, "#d63384") {
		t.Errorf("location style = %q", style)
	}
}

func TestWriteHTML_EscapesServiceText(t *testing.T) {
	t.Parallel()
	issue := highIssue()
	issue.Description = `<script>alert("x")</script>`
	var buf bytes.Buffer
	if err := report.WriteHTML(&buf, report.Build(model.AnalysisResult{Issues: []model.Issue{issue}}, report.Options{})); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("service text must be escaped: %s", buf.String())
	}
}
