// Package page loads content pages: an optional YAML frontmatter block
// followed by an HTML body.
package page

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/pagekit/summary"
)

// frontmatterDelimiter opens and closes the frontmatter block.
const frontmatterDelimiter = "---"

// Extensions lists the file extensions Discover treats as pages.
var Extensions = []string{".md", ".html", ".htm"}

// ErrFrontmatter is returned when a frontmatter block is opened but never
// closed, or its YAML cannot be parsed.
var ErrFrontmatter = errors.New("invalid frontmatter")

// Page is a single content page.
type Page struct {
	// Frontmatter fields
	Title       string            `yaml:"title" json:"title"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Summary     *summary.Override `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Content is the body after the frontmatter.
	Content string `yaml:"-" json:"content"`

	// Path is the file the page was loaded from, empty for parsed pages.
	Path string `yaml:"-" json:"path,omitempty"`
}

// Slug returns the page's file name without its extension.
func (p *Page) Slug() string {
	if p.Path == "" {
		return ""
	}
	base := filepath.Base(p.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SummaryConfig returns the site configuration with the page's overrides
// applied.
func (p *Page) SummaryConfig(site summary.Config) summary.Config {
	return site.Merge(p.Summary)
}

// SummaryHTML returns the page summary produced by the site summarizer with
// the page's overrides applied.
func (p *Page) SummaryHTML(s *summary.Summarizer) string {
	return s.WithOverride(p.Summary).Summarize(p.Content)
}

// Body returns the page content with the summary delimiter removed.
func (p *Page) Body(site summary.Config) string {
	return summary.Strip(p.Content, p.SummaryConfig(site).Delimiter)
}

// Excerpt returns the frontmatter description when set, and otherwise a
// plain-text excerpt of the content cut to maxLength characters.
func (p *Page) Excerpt(maxLength int) string {
	if p.Description != "" {
		return p.Description
	}
	return summary.Description(p.Content, maxLength)
}

// Vars returns the variables a page template can reference: title,
// description, summary, content, slug and path.
func (p *Page) Vars(s *summary.Summarizer) map[string]any {
	return map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"summary":     p.SummaryHTML(s),
		"content":     p.Body(s.Config()),
		"slug":        p.Slug(),
		"path":        p.Path,
	}
}

// Load reads and parses the page at path.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	p.Path = path

	return p, nil
}

// Parse parses page content. Frontmatter is optional; when the first line
// is "---" everything up to the next "---" line is decoded as YAML.
func Parse(data []byte) (*Page, error) {
	p := &Page{}

	if !bytes.HasPrefix(data, []byte(frontmatterDelimiter)) {
		p.Content = strings.TrimSpace(string(data))
		return p, nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 10*1024*1024)

	var frontmatterLines []string
	var contentLines []string
	inFrontmatter := false
	foundEnd := false

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			if strings.TrimRight(line, " \t\r") != frontmatterDelimiter {
				// "---" followed by more text is body, not frontmatter
				p.Content = strings.TrimSpace(string(data))
				return p, nil
			}
			inFrontmatter = true
			continue
		}

		if inFrontmatter && strings.TrimRight(line, " \t\r") == frontmatterDelimiter {
			inFrontmatter = false
			foundEnd = true
			continue
		}

		if inFrontmatter {
			frontmatterLines = append(frontmatterLines, line)
		} else {
			contentLines = append(contentLines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan page: %w", err)
	}

	if !foundEnd {
		return nil, fmt.Errorf("%w: not closed (missing %s)", ErrFrontmatter, frontmatterDelimiter)
	}

	if err := yaml.Unmarshal([]byte(strings.Join(frontmatterLines, "\n")), p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrontmatter, err)
	}

	p.Content = strings.TrimSpace(strings.Join(contentLines, "\n"))

	return p, nil
}

// Discover loads every page directly inside dir, sorted by path.
// Files that fail to parse are skipped.
func Discover(dir string) ([]*Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read pages directory: %w", err)
	}

	var pages []*Page
	for _, entry := range entries {
		if entry.IsDir() || !isPageFile(entry.Name()) {
			continue
		}

		p, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		pages = append(pages, p)
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Path < pages[j].Path
	})

	return pages, nil
}

func isPageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
