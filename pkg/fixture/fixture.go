// Package fixture loads dom trees from YAML descriptions. Fixtures drive
// the CLI and the preview server, and make the attribute edge-case table
// expressible as data instead of Go code.
package fixture

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumen-ui/lumen/internal/rerr"
	"github.com/lumen-ui/lumen/pkg/dom"
)

// Node is the YAML shape of a single tree node. Exactly one of Tag, Text,
// or Raw must be set; Props and Children are only valid with Tag.
type Node struct {
	Tag      string         `yaml:"tag,omitempty"`
	Text     string         `yaml:"text,omitempty"`
	Raw      string         `yaml:"raw,omitempty"`
	Key      string         `yaml:"key,omitempty"`
	Props    map[string]any `yaml:"props,omitempty"`
	Children []Node         `yaml:"children,omitempty"`
}

// Document is the top-level fixture file shape.
type Document struct {
	// Name labels the fixture in CLI and server output.
	Name string `yaml:"name,omitempty"`

	// Root is the tree to render.
	Root Node `yaml:"root"`
}

// Load reads and parses a fixture file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rerr.New("L101").Wrap(err).WithSuggestion(fmt.Sprintf("check that %q exists and is readable", path))
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a fixture document from the reader.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, rerr.New("L101").Wrap(err)
	}
	if err := doc.Root.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// VNode converts the fixture document to a renderable tree.
func (d *Document) VNode() *dom.VNode {
	return d.Root.vnode()
}

func (n Node) validate() error {
	set := 0
	if n.Tag != "" {
		set++
	}
	if n.Text != "" {
		set++
	}
	if n.Raw != "" {
		set++
	}
	if set != 1 {
		return rerr.New("L100").WithDetail(fmt.Sprintf("node has tag=%q text=%q raw=%q", n.Tag, n.Text, n.Raw)).
			WithSuggestion("set exactly one of tag, text, or raw per node")
	}
	if n.Tag == "" && (len(n.Props) > 0 || len(n.Children) > 0) {
		return rerr.New("L100").WithDetail("props and children are only valid on tag nodes")
	}
	for _, child := range n.Children {
		if err := child.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (n Node) vnode() *dom.VNode {
	switch {
	case n.Text != "":
		return dom.Text(n.Text)
	case n.Raw != "":
		return dom.Raw(n.Raw)
	}

	node := &dom.VNode{
		Kind:  dom.KindElement,
		Tag:   n.Tag,
		Key:   n.Key,
		Props: make(dom.Props, len(n.Props)),
	}
	for k, v := range n.Props {
		node.Props[k] = normalizeProp(v)
	}
	for _, child := range n.Children {
		node.Children = append(node.Children, child.vnode())
	}
	return node
}

// normalizeProp rewrites YAML decoding artifacts into the prop value
// shapes the reconciler understands. YAML maps decode as map[string]any
// already; integers come out as int, which Resolve handles.
func normalizeProp(v any) any {
	if m, ok := v.(map[any]any); ok {
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprintf("%v", k)] = normalizeProp(val)
		}
		return out
	}
	return v
}
