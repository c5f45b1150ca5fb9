package reconcile

import "github.com/lumen-ui/lumen/pkg/dom"

// EffectiveAttrs returns the attributes that should exist on the DOM for
// the given element node in the given namespace. Suppressed props are
// simply absent from the result, which is what makes diffing against a
// previous render remove stale attributes.
func EffectiveAttrs(node *dom.VNode, ns dom.Namespace, w Warner) map[string]string {
	if node == nil || node.Kind != dom.KindElement || len(node.Props) == 0 {
		return nil
	}

	attrs := make(map[string]string, len(node.Props))
	for key, value := range node.Props {
		if a, ok := Resolve(key, value, node.Tag, ns, w); ok {
			attrs[a.Name] = a.Value
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
