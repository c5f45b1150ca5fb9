package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/lumen-ui/lumen/internal/rerr"
	"github.com/lumen-ui/lumen/pkg/dom"
	"github.com/lumen-ui/lumen/pkg/reconcile"
)

// Config configures the markup renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Namespace is the namespace the root nodes are rendered in.
	// Defaults to HTML.
	Namespace dom.Namespace

	// Sanitizer, when set, is applied to raw markup nodes and
	// dangerouslySetInnerHTML content before emission.
	Sanitizer *bluemonday.Policy

	// Warn receives reconciliation warnings. Defaults to discarding them.
	Warn reconcile.Warner
}

// Renderer handles server-side rendering of dom trees to markup.
type Renderer struct {
	config Config
	warn   reconcile.Warner
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	warn := config.Warn
	if warn == nil {
		warn = reconcile.NopWarner{}
	}
	return &Renderer{config: config, warn: warn}
}

// RenderToString renders a tree to a complete markup string.
func (r *Renderer) RenderToString(node *dom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.VNode) error {
	return r.renderNode(w, node, r.config.Namespace, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.VNode, ns dom.Namespace, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node, ns, depth)
	case dom.KindText:
		return r.renderText(w, node)
	case dom.KindFragment:
		return r.renderFragment(w, node, ns, depth)
	case dom.KindComponent:
		return r.renderComponent(w, node, ns, depth)
	case dom.KindRaw:
		return r.renderRaw(w, node)
	default:
		return rerr.New("L001").WithDetail(fmt.Sprintf("node kind %d on tag %q", node.Kind, node.Tag))
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.VNode, parent dom.Namespace, depth int) error {
	tag := elementTag(node.Tag, parent)
	self := dom.ElementNamespace(parent, node.Tag)

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := w.Write([]byte{'<'}); err != nil {
		return err
	}
	if _, err := w.Write([]byte(tag)); err != nil {
		return err
	}

	// Entering a foreign namespace from HTML declares it explicitly.
	if parent == dom.NamespaceHTML && self != dom.NamespaceHTML {
		if _, err := fmt.Fprintf(w, ` xmlns="%s"`, self.URI()); err != nil {
			return err
		}
	}

	if err := r.renderAttributes(w, node, self); err != nil {
		return err
	}

	// Void elements have no children and no closing tag.
	if self == dom.NamespaceHTML && dom.IsVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	// Foreign-content leaves self-close in XML style.
	if self != dom.NamespaceHTML && len(node.Children) == 0 && node.Props["dangerouslySetInnerHTML"] == nil {
		if _, err := w.Write([]byte("/>")); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if rawHTML, ok := node.Props["dangerouslySetInnerHTML"].(string); ok {
		if _, err := w.Write([]byte(r.sanitize(rawHTML))); err != nil {
			return err
		}
	} else {
		content := dom.ContentNamespace(self, node.Tag)
		hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			w.Write([]byte{'\n'})
		}

		for _, child := range node.Children {
			if err := r.renderNode(w, child, content, depth+1); err != nil {
				return err
			}
		}

		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with escaping.
func (r *Renderer) renderText(w io.Writer, node *dom.VNode) error {
	_, err := w.Write([]byte(escapeText(node.Text)))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *dom.VNode, ns dom.Namespace, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, ns, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent renders a component by rendering its output node.
func (r *Renderer) renderComponent(w io.Writer, node *dom.VNode, ns dom.Namespace, depth int) error {
	if node.Comp == nil {
		return rerr.New("L002").WithDetail(fmt.Sprintf("component node %+v has nil Comp", node))
	}
	return r.renderNode(w, node.Comp.Render(), ns, depth)
}

// renderRaw renders raw markup, sanitized when a policy is configured.
func (r *Renderer) renderRaw(w io.Writer, node *dom.VNode) error {
	_, err := w.Write([]byte(r.sanitize(node.Text)))
	return err
}

// renderAttributes resolves and writes all attributes for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *dom.VNode, ns dom.Namespace) error {
	if len(node.Props) == 0 {
		return nil
	}

	resolved := make([]reconcile.Attribute, 0, len(node.Props))
	for key, value := range node.Props {
		if a, ok := reconcile.Resolve(key, value, node.Tag, ns, r.warn); ok {
			resolved = append(resolved, a)
		}
	}

	// Sort for deterministic output; attribute-level equivalence between
	// renders is what downstream hydration relies on.
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Name < resolved[j].Name })

	for _, a := range resolved {
		if a.Value == "" && ns == dom.NamespaceHTML && isBareBooleanAttr(a.Name) {
			if _, err := fmt.Fprintf(w, " %s", a.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Name, escapeAttr(a.Value)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) sanitize(markup string) string {
	if r.config.Sanitizer == nil {
		return markup
	}
	return r.config.Sanitizer.Sanitize(markup)
}

// elementTag normalizes the serialized tag name. Standard HTML tags are
// lowercased; custom elements and foreign-content tags (foreignObject,
// linearGradient) keep their casing.
func elementTag(tag string, parent dom.Namespace) string {
	if parent != dom.NamespaceHTML || dom.IsCustomElement(tag) {
		return tag
	}
	return strings.ToLower(tag)
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
