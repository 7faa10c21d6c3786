package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Node is a navigable element of a parsed HTML document
type Node interface {
	// FindAll returns the descendants matching a CSS selector, in document order
	FindAll(selector string) []Node
	// Tag returns the lowercase element name
	Tag() string
	// Text returns the trimmed text nodes joined with single spaces
	Text() string
	// Attr returns the value of an attribute
	Attr(name string) (string, bool)
}

// ParseHTML parses an HTML document into its root Node
func ParseHTML(r io.Reader) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &selectionNode{sel: doc.Selection}, nil
}

// selectionNode adapts a goquery selection holding a single node
type selectionNode struct {
	sel *goquery.Selection
}

func (n *selectionNode) FindAll(selector string) []Node {
	found := n.sel.Find(selector)
	nodes := make([]Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &selectionNode{sel: s})
	})
	return nodes
}

func (n *selectionNode) Tag() string {
	return goquery.NodeName(n.sel)
}

func (n *selectionNode) Text() string {
	parts := make([]string, 0)
	for _, node := range n.sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func (n *selectionNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// collectText appends every non-blank text node below node, trimmed
func collectText(node *html.Node, parts *[]string) {
	if node.Type == html.TextNode {
		if t := strings.TrimSpace(node.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
