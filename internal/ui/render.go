package ui

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// uintPtr returns a pointer to u. Used by ansi.StyleConfig fields.
func uintPtr(u uint) *uint { return &u }

// markdownStyle starts from glamour's stock style for the terminal
// background, drops the document margin and colors bold text with the accent
// so the letters the poem borrowed from the input stand out.
func markdownStyle() ansi.StyleConfig {
	cfg := styles.LightStyleConfig
	if IsDarkBackground() {
		cfg = styles.DarkStyleConfig
	}
	accent := colorHex(GetTheme().Accent)
	cfg.Document.Margin = uintPtr(0)
	cfg.Document.BlockPrefix = ""
	cfg.Document.BlockSuffix = ""
	cfg.Strong.Color = &accent
	return cfg
}

// GetMarkdownRenderer returns a glamour renderer wrapping at width.
func GetMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
}

// strongRule replaces the converter's stock <strong>/<b> rule, which pads the
// delimiters with a space when a word continues right after them. The server
// highlights single letters inside words, so the run must stay attached:
// <strong>r</strong>ain is **r**ain, not **r** ain.
var strongRule = md.Rule{
	Filter: []string{"strong", "b"},
	Replacement: func(content string, _ *goquery.Selection, opt *md.Options) *string {
		trimmed := strings.TrimSpace(content)
		if trimmed == "" {
			return md.String(content)
		}
		lead := content[:strings.Index(content, trimmed)]
		trail := content[len(lead)+len(trimmed):]
		return md.String(lead + opt.StrongDelimiter + trimmed + opt.StrongDelimiter + trail)
	},
}

// HTMLToMarkdown converts the HTML fragment the translation server returns
// (paragraphs with <strong> highlights) to markdown.
func HTMLToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	converter.AddRules(strongRule)
	out, err := converter.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RenderOutput renders a translation for the terminal. Anything that fails
// to convert is shown as plain text rather than dropped.
func RenderOutput(html string, width int) string {
	markdown, err := HTMLToMarkdown(html)
	if err != nil {
		return PlainText(html)
	}
	r, err := GetMarkdownRenderer(width)
	if err != nil {
		return markdown
	}
	rendered, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.Trim(rendered, "\n")
}

// PlainText extracts the text of an HTML fragment, one line per paragraph.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	paragraphs := doc.Find("p")
	if paragraphs.Length() == 0 {
		return strings.TrimSpace(doc.Text())
	}

	lines := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		p.Find("br").ReplaceWithHtml("\n")
		if text := strings.TrimSpace(p.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n")
}
