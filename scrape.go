package fintrace

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Free-text HTML scraping utility: given an HTML snippet, collect its
// structural content. Pure glue around the record engine, kept here because
// scraped tables are a handy source of records to import.

// Link is a scraped anchor.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is a scraped image reference.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// FormField is a scraped input, select or textarea element.
type FormField struct {
	Tag   string `json:"tag"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ScrapeResult aggregates everything extracted from a snippet.
type ScrapeResult struct {
	Headings   []string     `json:"headings"`
	Links      []Link       `json:"links"`
	Images     []Image      `json:"images"`
	Tables     [][][]string `json:"tables"`
	FormFields []FormField  `json:"formFields"`
}

// Scrape parses an HTML snippet and extracts headings, links, images,
// tables, and form fields. The parser is lenient like browsers are; the
// only error is an unreadable input.
func Scrape(r io.Reader) (*ScrapeResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse HTML: %w", err)
	}

	result := &ScrapeResult{
		Headings:   []string{},
		Links:      []Link{},
		Images:     []Image{},
		Tables:     [][][]string{},
		FormFields: []FormField{},
	}
	scrapeNode(doc, result)
	return result, nil
}

func scrapeNode(n *html.Node, result *ScrapeResult) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if text := strings.TrimSpace(textContent(n)); text != "" {
				result.Headings = append(result.Headings, text)
			}
		case "a":
			if href, ok := attr(n, "href"); ok {
				result.Links = append(result.Links, Link{
					Text: strings.TrimSpace(textContent(n)),
					Href: href,
				})
			}
		case "img":
			if src, ok := attr(n, "src"); ok {
				alt, _ := attr(n, "alt")
				result.Images = append(result.Images, Image{Src: src, Alt: alt})
			}
		case "table":
			if rows := scrapeTable(n); len(rows) > 0 {
				result.Tables = append(result.Tables, rows)
			}
		case "input", "select", "textarea":
			name, _ := attr(n, "name")
			typ, _ := attr(n, "type")
			result.FormFields = append(result.FormFields, FormField{
				Tag:   n.Data,
				Name:  name,
				Type:  typ,
				Value: fieldValue(n),
			})
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		scrapeNode(c, result)
	}
}

// scrapeTable collects the non-empty rows of cell text of a table element.
func scrapeTable(table *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "th" || c.Data == "td") {
					cells = append(cells, strings.TrimSpace(textContent(c)))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)
	return rows
}

// fieldValue mirrors what a browser reports as the element's value.
func fieldValue(n *html.Node) string {
	switch n.Data {
	case "textarea":
		return textContent(n)
	case "select":
		var first *html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "option" {
				if first == nil {
					first = c
				}
				if _, selected := attr(c, "selected"); selected {
					return optionValue(c)
				}
			}
		}
		if first != nil {
			return optionValue(first)
		}
		return ""
	default:
		v, _ := attr(n, "value")
		return v
	}
}

func optionValue(option *html.Node) string {
	if v, ok := attr(option, "value"); ok {
		return v
	}
	return strings.TrimSpace(textContent(option))
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
