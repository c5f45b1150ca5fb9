package reconcile

import "github.com/lumen-ui/lumen/pkg/dom"

// PatchOp identifies a patch operation. The values double as the wire
// form on the preview server's websocket channel.
type PatchOp string

const (
	OpSetAttr    PatchOp = "setAttr"
	OpRemoveAttr PatchOp = "removeAttr"
	OpSetText    PatchOp = "setText"
	OpReplace    PatchOp = "replace"
	OpInsert     PatchOp = "insert"
	OpRemove     PatchOp = "remove"
)

// Patch describes a single mutation that transforms the previous tree
// into the next one. Nodes are addressed by their child-index path from
// the root.
type Patch struct {
	Op    PatchOp    `json:"op"`
	Path  []int      `json:"path"`
	Key   string     `json:"key,omitempty"`
	Value string     `json:"value,omitempty"`
	Node  *dom.VNode `json:"-"`

	// Markup carries serialized replacement content for replace/insert
	// ops on the wire; filled in by the caller that owns a renderer.
	Markup string `json:"markup,omitempty"`
}
