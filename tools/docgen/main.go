// Command docgen renders the markdown files under docs/ into a static
// HTML site. Pages and their order come from docs/_sidebar.md; the page
// shell comes from docs/_template.html.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Page is one sidebar entry: a markdown source and its display title.
type Page struct {
	Title string
	Path  string // .md path relative to the docs dir
}

// pageData is what _template.html is executed with.
type pageData struct {
	Title   string
	Nav     template.HTML
	Content template.HTML
}

var linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+\.md)\)`)
var hrefRe = regexp.MustCompile(`href="([^"]*)\.md(#[^"]*)?"`)

func main() {
	docsDir := flag.String("docs", "docs", "path to the docs directory")
	outDir := flag.String("out", "docs/_site", "output directory")
	flag.Parse()

	pages, err := readSidebar(filepath.Join(*docsDir, "_sidebar.md"))
	if err != nil {
		fatal("%v", err)
	}

	tmplData, err := os.ReadFile(filepath.Join(*docsDir, "_template.html"))
	if err != nil {
		fatal("reading template: %v", err)
	}
	tmpl, err := template.New("page").Parse(string(tmplData))
	if err != nil {
		fatal("parsing template: %v", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Linkify,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatal("creating %s: %v", *outDir, err)
	}

	for _, page := range pages {
		src, err := os.ReadFile(filepath.Join(*docsDir, page.Path))
		if err != nil {
			fatal("reading %s: %v", page.Path, err)
		}

		var content bytes.Buffer
		if err := md.Convert(src, &content); err != nil {
			fatal("converting %s: %v", page.Path, err)
		}

		data := pageData{
			Title:   pageTitle(string(src), page.Title),
			Nav:     template.HTML(renderNav(pages, page.Path)),
			Content: template.HTML(rewriteLinks(content.String())),
		}

		var out bytes.Buffer
		if err := tmpl.Execute(&out, data); err != nil {
			fatal("rendering %s: %v", page.Path, err)
		}

		outPath := filepath.Join(*outDir, htmlName(page.Path))
		if err := os.WriteFile(outPath, out.Bytes(), 0o644); err != nil {
			fatal("writing %s: %v", outPath, err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}

	fmt.Printf("\n  %d pages generated\n", len(pages))
}

// readSidebar collects the pages from _sidebar.md, a flat markdown list of
// links in display order.
func readSidebar(path string) ([]Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sidebar: %w", err)
	}

	var pages []Page
	for _, line := range strings.Split(string(data), "\n") {
		m := linkRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		pages = append(pages, Page{Title: m[1], Path: m[2]})
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages listed in %s", path)
	}
	return pages, nil
}

// pageTitle prefers the first # heading of the page, falling back to the
// sidebar title.
func pageTitle(src, fallback string) string {
	for _, line := range strings.Split(src, "\n") {
		if t, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return t
		}
	}
	return fallback
}

// htmlName maps a markdown source name to its output name; README.md
// becomes the site index.
func htmlName(mdPath string) string {
	base := filepath.Base(mdPath)
	if strings.EqualFold(base, "README.md") {
		return "index.html"
	}
	return strings.TrimSuffix(base, ".md") + ".html"
}

// rewriteLinks points rendered .md hrefs at their .html outputs.
func rewriteLinks(content string) string {
	return hrefRe.ReplaceAllStringFunc(content, func(match string) string {
		m := hrefRe.FindStringSubmatch(match)
		name := htmlName(m[1] + ".md")
		return `href="` + name + m[2] + `"`
	})
}

func renderNav(pages []Page, current string) string {
	var b strings.Builder
	b.WriteString("<nav>\n")
	for _, p := range pages {
		class := ""
		if p.Path == current {
			class = ` class="active"`
		}
		fmt.Fprintf(&b, `  <a href="%s"%s>%s</a>`+"\n", htmlName(p.Path), class, p.Title)
	}
	b.WriteString("</nav>\n")
	return b.String()
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docgen: "+format+"\n", args...)
	os.Exit(1)
}
