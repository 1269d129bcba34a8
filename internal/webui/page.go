package webui

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/raysh454/compliscan/internal/report"
)

// Element IDs of the page outside the report container.
const (
	FormID       = "scanForm"
	InputID      = "urlInput"
	ButtonID     = "analyzeBtn"
	ButtonTextID = "btnText"
	LoadingID    = "loading"
	AlertID      = "alertBox"

	// ButtonLabel and BusyButtonLabel are the trigger texts while idle and
	// while a scan runs.
	ButtonLabel     = "Analyze"
	BusyButtonLabel = "Analyzing..."

	pageTitle      = "Compliance Scanner"
	inputHint      = "example.com"
	loadingLabel   = "Analyzing... this can take a while."
	fontAwesomeCSS = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
)

// PageState is everything the page shows besides its fixed chrome.
type PageState struct {
	Input     string
	Busy      bool
	Alert     string
	AlertKind string
	View      *report.View
}

// WritePage renders the full HTML document for st.
func WritePage(w io.Writer, st PageState) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(pageNode(st))
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func pageNode(st PageState) *html.Node {
	root := report.Elem(atom.Html, report.Attr("lang", "en"))

	head := report.Elem(atom.Head)
	head.AppendChild(report.Elem(atom.Meta, report.Attr("charset", "utf-8")))
	head.AppendChild(report.Elem(atom.Meta,
		report.Attr("name", "viewport"),
		report.Attr("content", "width=device-width, initial-scale=1")))
	title := report.Elem(atom.Title)
	title.AppendChild(report.Text(pageTitle))
	head.AppendChild(title)
	head.AppendChild(report.Elem(atom.Link, report.Attr("rel", "stylesheet"), report.Attr("href", fontAwesomeCSS)))
	head.AppendChild(report.Elem(atom.Link, report.Attr("rel", "stylesheet"), report.Attr("href", "/static/style.css")))
	root.AppendChild(head)

	body := report.Elem(atom.Body)
	content := report.Elem(atom.Main, report.Attr("class", "container"))

	header := report.Elem(atom.Header)
	h1 := report.Elem(atom.H1)
	h1.AppendChild(report.Text(pageTitle))
	header.AppendChild(h1)
	content.AppendChild(header)

	content.AppendChild(formNode(st))
	content.AppendChild(loadingNode(st.Busy))
	if st.Alert != "" {
		content.AppendChild(alertNode(st.Alert, st.AlertKind))
	}
	content.AppendChild(report.ContainerNode(st.View))

	body.AppendChild(content)
	body.AppendChild(report.Elem(atom.Script, report.Attr("src", "/static/app.js"), report.Attr("defer", "")))
	root.AppendChild(body)
	return root
}

func formNode(st PageState) *html.Node {
	form := report.Elem(atom.Form,
		report.Attr("id", FormID),
		report.Attr("method", "post"),
		report.Attr("action", "/analyze"),
		report.Attr("class", "scan-form"))

	form.AppendChild(report.Elem(atom.Input,
		report.Attr("id", InputID),
		report.Attr("name", "url"),
		report.Attr("type", "text"),
		report.Attr("placeholder", inputHint),
		report.Attr("value", st.Input),
		report.Attr("autocomplete", "url")))

	btn := report.Elem(atom.Button,
		report.Attr("id", ButtonID),
		report.Attr("type", "submit"),
		report.Attr("data-idle-label", ButtonLabel),
		report.Attr("data-busy-label", BusyButtonLabel))
	label := ButtonLabel
	if st.Busy {
		btn.Attr = append(btn.Attr, report.Attr("disabled", ""))
		label = BusyButtonLabel
	}
	text := report.Elem(atom.Span, report.Attr("id", ButtonTextID))
	text.AppendChild(report.Text(label))
	btn.AppendChild(text)
	form.AppendChild(btn)
	return form
}

func loadingNode(busy bool) *html.Node {
	class := "loading"
	if !busy {
		class += " " + report.ClassHidden
	}
	div := report.Elem(atom.Div, report.Attr("id", LoadingID), report.Attr("class", class))
	div.AppendChild(report.Elem(atom.Span, report.Attr("class", "spinner"), report.Attr("aria-hidden", "true")))
	div.AppendChild(report.Text(" " + loadingLabel))
	return div
}

func alertNode(msg, kind string) *html.Node {
	div := report.Elem(atom.Div,
		report.Attr("id", AlertID),
		report.Attr("class", "alert"),
		report.Attr("role", "alert"),
		report.Attr("data-kind", kind))
	div.AppendChild(report.Text(msg))
	return div
}
