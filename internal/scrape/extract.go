package scrape

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sells-group/insight-cli/internal/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// skipTextParents are elements whose text content is never user-visible.
var skipTextParents = map[string]bool{
	"style":    true,
	"script":   true,
	"head":     true,
	"title":    true,
	"meta":     true,
	"noscript": true,
}

// ExtractContent parses HTML into SiteContent: visible text, title,
// description/keywords/viewport meta, Open Graph properties, H1/H2
// headings, and absolute link targets.
func ExtractContent(body []byte, baseURL string) *model.SiteContent {
	content := &model.SiteContent{
		URL:   baseURL,
		Meta:  map[string]any{},
		Links: []string{},
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return content
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	var description, keywords, viewport string
	og := map[string]string{}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		if name == "" {
			name, _ = sel.Attr("property")
		}
		name = strings.ToLower(name)
		value, _ := sel.Attr("content")
		if value == "" {
			return
		}
		switch {
		case name == "description":
			description = value
		case name == "keywords":
			keywords = value
		case name == "viewport":
			viewport = value
		case strings.HasPrefix(name, "og:"):
			og[name] = value
		}
	})

	h1s := headingTexts(doc, "h1")
	h2s := headingTexts(doc, "h2")

	content.Meta = map[string]any{
		"title":       title,
		"description": description,
		"keywords":    keywords,
		"viewport":    viewport,
		"og":          og,
		"h1":          h1s,
		"h2":          h2s,
	}

	base, baseErr := url.Parse(baseURL)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return
		}
		if baseErr == nil {
			if ref, err := url.Parse(href); err == nil {
				href = base.ResolveReference(ref).String()
			}
		}
		if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return
		}
		content.Links = append(content.Links, href)
	})

	var chunks []string
	for _, node := range doc.Nodes {
		collectVisibleText(node, &chunks)
	}
	content.Text = strings.Join(chunks, "\n")

	return content
}

func headingTexts(doc *goquery.Document, tag string) []string {
	var out []string
	doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			out = append(out, t)
		}
	})
	if out == nil {
		out = []string{}
	}
	return out
}

// collectVisibleText walks the node tree appending collapsed text chunks,
// skipping non-visible containers and comments.
func collectVisibleText(n *html.Node, chunks *[]string) {
	if n.Type == html.TextNode {
		if n.Parent != nil && skipTextParents[n.Parent.Data] {
			return
		}
		chunk := strings.TrimSpace(whitespaceRe.ReplaceAllString(n.Data, " "))
		if chunk != "" {
			*chunks = append(*chunks, chunk)
		}
		return
	}
	if n.Type == html.CommentNode {
		return
	}
	if n.Type == html.ElementNode && skipTextParents[n.Data] {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectVisibleText(c, chunks)
	}
}
