package report

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element IDs and classes shared with the page layout and its stylesheet.
const (
	ContainerID    = "resultsSection"
	IssuesListID   = "issuesList"
	ScoreValueID   = "scoreValue"
	StatusTextID   = "statusText"
	PagesScannedID = "pagesScanned"

	ClassHidden    = "hidden"
	ClassIssueItem = "issue-item"
)

// WriteHTML renders the report container for v. A nil view renders the hidden,
// empty container shown before any successful scan.
func WriteHTML(w io.Writer, v *View) error {
	if err := html.Render(w, ContainerNode(v)); err != nil {
		return fmt.Errorf("render report html: %w", err)
	}
	return nil
}

// ContainerNode builds the report container element for v.
func ContainerNode(v *View) *html.Node {
	if v == nil || !v.Visible {
		section := elem(atom.Section, attr("id", ContainerID), attr("class", "results "+ClassHidden))
		section.AppendChild(elem(atom.Div, attr("id", IssuesListID), attr("class", "issues-list")))
		return section
	}

	section := elem(atom.Section,
		attr("id", ContainerID),
		attr("class", "results"),
		attr("data-scroll", string(v.Scroll)))

	section.AppendChild(scoreNode(v))

	list := elem(atom.Div, attr("id", IssuesListID), attr("class", "issues-list"))
	for i := range v.Cards {
		list.AppendChild(cardNode(&v.Cards[i]))
	}
	section.AppendChild(list)
	return section
}

func scoreNode(v *View) *html.Node {
	card := elem(atom.Div, attr("class", "score-card"))

	circle := elem(atom.Div,
		attr("class", "score-circle tier-"+string(v.Score.Tier)),
		attr("data-tier", string(v.Score.Tier)),
		attr("style", "border-color: var(--"+string(v.Score.Tier)+")"))
	circle.AppendChild(withText(elem(atom.Span, attr("id", ScoreValueID)), strconv.Itoa(v.Score.Value)))
	card.AppendChild(circle)

	card.AppendChild(withText(elem(atom.H2, attr("id", StatusTextID)), v.Status))
	card.AppendChild(withText(elem(atom.P, attr("id", PagesScannedID)), v.PagesLabel))
	return card
}

func cardNode(c *Card) *html.Node {
	class := ClassIssueItem + " " + string(c.Severity)
	item := elem(atom.Div, attr("class", class))
	if c.Synthetic {
		item.Attr = append(item.Attr, attr("data-synthetic", "true"))
	}

	header := elem(atom.Div, attr("class", "issue-header"))
	title := elem(atom.Span, attr("class", "issue-title"))
	title.AppendChild(iconNode(c.Icon))
	title.AppendChild(text(" " + c.Title))
	header.AppendChild(title)
	if c.Badge != "" {
		badgeClass := "issue-badge"
		if c.Success {
			badgeClass += " success"
		}
		header.AppendChild(withText(elem(atom.Span, attr("class", badgeClass)), c.Badge))
	}
	item.AppendChild(header)

	if c.Synthetic {
		item.AppendChild(withText(elem(atom.P), c.Description.Text))
		return item
	}

	content := elem(atom.Div, attr("class", "issue-content"))
	details := elem(atom.Div, attr("class", "issue-details"))

	details.AppendChild(labelled(elem(atom.P, attr("class", "description")), c.Description.Label+":", " "+c.Description.Text))

	if c.Context != nil {
		box := elem(atom.Div, attr("class", "context-box"))
		box.AppendChild(withText(elem(atom.Strong), c.Context.Label+":"))
		box.AppendChild(withText(elem(atom.Blockquote), `"`+c.Context.Text+`"`))
		details.AppendChild(box)
	}

	if c.Location != nil {
		box := elem(atom.Div, attr("class", "location-box"))
		box.AppendChild(iconNode(c.Location.Icon))
		box.AppendChild(withText(elem(atom.Strong), c.Location.Label+":"))
		box.AppendChild(withText(elem(atom.Code, attr("style", "display: block; font-family: monospace; color: "+c.Location.Color+";")), c.Location.Text))
		details.AppendChild(box)
	}

	if c.Suggestion != nil {
		boxClass := "suggestion-box"
		if c.Suggestion.Highlight {
			boxClass += " success"
		}
		box := elem(atom.Div, attr("class", boxClass))
		box.AppendChild(iconNode(c.Suggestion.Icon))
		box.AppendChild(withText(elem(atom.Strong), c.Suggestion.Label+":"))
		box.AppendChild(withText(elem(atom.P), c.Suggestion.Text))
		details.AppendChild(box)
	}

	if c.Link != nil {
		a := elem(atom.A,
			attr("href", c.Link.Href),
			attr("target", c.Link.Target),
			attr("rel", "noopener noreferrer"),
			attr("class", "link-btn"))
		a.AppendChild(iconNode(IconLink))
		a.AppendChild(text(" " + c.Link.Text))
		details.AppendChild(a)
	}
	content.AppendChild(details)

	if c.Image != nil {
		fig := elem(atom.Div, attr("class", "issue-image"))
		a := elem(atom.A, attr("href", c.Image.Href), attr("target", c.Image.Target), attr("rel", "noopener noreferrer"))
		a.AppendChild(elem(atom.Img, attr("src", c.Image.Src), attr("alt", c.Image.Alt), attr("loading", "lazy")))
		fig.AppendChild(a)
		fig.AppendChild(withText(elem(atom.Small), c.Image.Caption))
		content.AppendChild(fig)
	}

	item.AppendChild(content)
	return item
}

// ─── node helpers ──────────────────────────────────────────────────────

func elem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(text(s))
	return n
}

func labelled(n *html.Node, label, rest string) *html.Node {
	n.AppendChild(withText(elem(atom.Strong), label))
	n.AppendChild(text(rest))
	return n
}

func iconNode(icon Icon) *html.Node {
	if icon == "" {
		return text("")
	}
	return elem(atom.I, attr("class", "fa-solid fa-"+string(icon)), attr("aria-hidden", "true"))
}

// Elem, Attr and Text let the page layout build nodes the same way.
func Elem(a atom.Atom, attrs ...html.Attribute) *html.Node { return elem(a, attrs...) }

func Attr(key, val string) html.Attribute { return attr(key, val) }

func Text(s string) *html.Node { return text(s) }
