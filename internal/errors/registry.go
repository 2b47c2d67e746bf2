package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Hook Errors (E001-E019)
	// ============================================

	"E001": {
		Category:   CategoryHooks,
		Message:    "Hook order changed",
		Detail:     "A component called its hooks in a different order, kind or count than on its previous render. Hook slots are addressed by call order, so the render was aborted instead of reusing the wrong slot.",
		Suggestion: "Call State, Effect and Ref unconditionally at the top level of the component, never inside if statements or loops.",
	},
	"E002": {
		Category:   CategoryHooks,
		Message:    "Hook called outside render",
		Detail:     "A hook was called with a context that is not the instance currently being rendered.",
		Suggestion: "Only call hooks from the component body, using the Ctx passed to it.",
	},

	// ============================================
	// Runtime Errors (E020-E039)
	// ============================================

	"E020": {
		Category:   CategoryRuntime,
		Message:    "Cannot mount a host element",
		Detail:     "Render and mount accept component elements only. Host elements are always reached through a component.",
		Suggestion: "Wrap the markup in a component function and render that instead.",
	},
	"E021": {
		Category:   CategoryRuntime,
		Message:    "Invalid component root",
		Detail:     "A component must return exactly one host element as its root.",
		Suggestion: "Wrap the returned content in a single element such as a div.",
	},
	"E022": {
		Category: CategoryRuntime,
		Message:  "Instance disposed",
		Detail:   "The instance has been unmounted and its hook state released.",
	},
	"E023": {
		Category: CategoryRuntime,
		Message:  "Unknown instance",
		Detail:   "No instance with this id is registered with the renderer.",
	},
	"E024": {
		Category:   CategoryRuntime,
		Message:    "Render loop",
		Detail:     "An instance kept changing its own state while rendering, so every render scheduled another one.",
		Suggestion: "Move state changes out of the component body into an event handler or an effect with dependencies.",
	},

	// ============================================
	// Host Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryHost,
		Message:  "Host mutation failed",
		Detail:   "The host document rejected a tree mutation requested by the renderer.",
	},

	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category:   CategoryConfig,
		Message:    "Config load failed",
		Detail:     "The configuration file could not be read or parsed.",
		Suggestion: "Check the file syntax, or pass --config with a valid path.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		Detail:   "A configuration value is outside its allowed range.",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category:   CategoryCLI,
		Message:    "Unknown demo",
		Detail:     "The requested demo application does not exist.",
		Suggestion: "Run `soda demo --help` to list the available demos.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
