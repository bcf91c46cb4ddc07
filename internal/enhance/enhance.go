// Package enhance post-processes rendered HTML before it reaches the client:
// timestamp spans get display text, multi-select controls get their widget
// configuration. It runs on every full page and on partial content swaps.
package enhance

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Rewriter mutates a single element node in place.
type Rewriter interface {
	Rewrite(n *html.Node)
}

// Pipeline applies its rewriters to every element in document order.
type Pipeline struct {
	rewriters []Rewriter
}

func NewPipeline(rs ...Rewriter) *Pipeline {
	return &Pipeline{rewriters: rs}
}

// Document rewrites a complete HTML page.
func (p *Pipeline) Document(page []byte) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}
	p.walk(doc)
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fragment rewrites partial markup (a content-swap body without the
// html/head/body wrappers a full parse would add).
func (p *Pipeline) Fragment(frag []byte) ([]byte, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(bytes.NewReader(frag), ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for _, n := range nodes {
		p.walk(n)
		if err := html.Render(&buf, n); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (p *Pipeline) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		for _, r := range p.rewriters {
			r.Rewrite(n)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// setText replaces all children of n with a single text node.
func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
