package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <svg>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindComponent             // Nested component
	KindRaw                   // Raw markup (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     Kind      // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes, style maps, handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
}

// Props holds the property set of an element. Keys are prop names; values
// may be strings, numbers, booleans, style maps, or nil. How a prop maps
// onto a serialized attribute is decided by the reconcile package.
type Props map[string]any

// Attr represents a single property assignment.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// Text creates a text node.
func Text(text string) *VNode {
	return &VNode{Kind: KindText, Text: text}
}

// Raw creates a raw markup node. The content bypasses escaping, so it must
// come from a trusted source or be sanitized by the renderer.
func Raw(markup string) *VNode {
	return &VNode{Kind: KindRaw, Text: markup}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*VNode) *VNode {
	nodes := make([]*VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			nodes = append(nodes, child)
		}
	}
	return &VNode{Kind: KindFragment, Children: nodes}
}

// Clone returns a deep copy of the node. Props maps are copied shallowly
// per node; values are shared.
func (v *VNode) Clone() *VNode {
	if v == nil {
		return nil
	}
	out := &VNode{
		Kind: v.Kind,
		Tag:  v.Tag,
		Key:  v.Key,
		Text: v.Text,
		Comp: v.Comp,
	}
	if v.Props != nil {
		out.Props = make(Props, len(v.Props))
		for k, val := range v.Props {
			out.Props[k] = val
		}
	}
	if v.Children != nil {
		out.Children = make([]*VNode, len(v.Children))
		for i, child := range v.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}
