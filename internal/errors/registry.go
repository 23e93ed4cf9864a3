package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	"A001": {
		Category: CategoryRuntime,
		Message:  "Unknown node kind",
		Detail:   "The engine encountered a node kind it does not handle. This indicates a corrupted tree or an internal bug.",
	},
	"A002": {
		Category: CategoryHydration,
		Message:  "Hydration mismatch",
		Detail:   "The server-rendered output does not match the tree being hydrated. The affected subtree is re-mounted on the client instead.",
	},
	"A003": {
		Category: CategoryValidation,
		Message:  "Duplicate sibling key",
		Detail:   "Two children of the same keyed list share a key. Matching across renders is undefined until the keys are made unique.",
	},
	"A004": {
		Category: CategoryRuntime,
		Message:  "State already unmounted",
		Detail:   "Unmount was called twice on the same rendered state. The owner of a rendered state must unmount it at most once.",
	},
	"A005": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be loaded or failed validation.",
	},
}
