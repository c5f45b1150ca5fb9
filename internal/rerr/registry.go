package rerr

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Render errors (L001-L099)

	"L001": {
		Category: CategoryRender,
		Message:  "Unknown node kind",
		Detail:   "The renderer encountered a VNode whose Kind is not one of the defined kinds. This usually means the node was constructed by hand instead of through the dom package constructors.",
	},
	"L002": {
		Category: CategoryRender,
		Message:  "Component has no render target",
		Detail:   "A KindComponent node carries a nil Component. Build component nodes with dom.Func or a type implementing dom.Component.",
	},

	// Fixture errors (L100-L199)

	"L100": {
		Category: CategoryFixture,
		Message:  "Invalid fixture node",
		Detail:   "A fixture node must set exactly one of tag, text, or raw.",
	},
	"L101": {
		Category: CategoryFixture,
		Message:  "Fixture parse failed",
		Detail:   "The fixture file is not valid YAML.",
	},

	// Config errors (L200-L299)

	"L200": {
		Category: CategoryConfig,
		Message:  "Config parse failed",
		Detail:   "The lumen.yaml file is not valid YAML.",
	},
	"L201": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A config field holds a value outside its allowed range.",
	},

	// Publish errors (L300-L399)

	"L300": {
		Category: CategoryPublish,
		Message:  "Upload failed",
		Detail:   "The object store rejected the upload.",
	},
}
