// Package scripting reaches the Resolve scripting service through fuscript,
// the script host shipped alongside the application. Each call is marshalled
// into a generated Python payload, executed in a one-shot host process, and
// the JSON envelope it prints is parsed back into a Result.
package scripting

import "github.com/tidwall/gjson"

// DefaultApp is the scripting entry point name passed to bmd.scriptapp.
const DefaultApp = "Resolve"

// Call describes a single remote operation: walk the accessor chain from the
// scripting entry point, then invoke the named method with the given args.
type Call struct {
	// App is the scripting application name. Empty means DefaultApp.
	App string

	// Target is the accessor chain from the entry point to the object the
	// method lives on, e.g. ["GetMediaStorage"]. Empty targets the entry
	// point itself.
	Target []string

	// Method is the vendor method name to invoke, e.g. "GetMountedVolumeList".
	Method string

	// Args are JSON-encodable positional arguments.
	Args []any

	// ClipName, when set, is resolved to the matching media pool item in the
	// current folder and prepended to Args. Scripting objects cannot survive
	// a host round-trip, so clips are addressed by name.
	ClipName string

	// CurrentProject, when true, prepends the currently open project object
	// to Args. Used by vendor methods that take a project handle.
	CurrentProject bool
}

// AppName returns the scripting application name for the call.
func (c Call) AppName() string {
	if c.App == "" {
		return DefaultApp
	}

	return c.App
}

// Result wraps the decoded payload reply. The vendor side is untyped; callers
// pick the shape they expect and get the zero value on mismatch.
type Result struct {
	raw gjson.Result
}

// ResultFromJSON builds a Result from raw JSON text, mainly for tests.
func ResultFromJSON(raw string) Result {
	return Result{raw: gjson.Parse(raw)}
}

// IsNull reports whether the vendor returned an explicit null (Python None).
func (r Result) IsNull() bool {
	return r.raw.Type == gjson.Null || !r.raw.Exists()
}

// Bool returns the result as a bool. Vendor methods that report success
// return Python True/False, which arrive here as JSON booleans.
func (r Result) Bool() bool {
	return r.raw.Bool()
}

// Str returns the result as a string.
func (r Result) Str() string {
	return r.raw.String()
}

// StringSlice returns the result as a slice of strings. Non-string elements
// are rendered with their JSON string form, matching how the vendor API
// reports mixed file listings.
func (r Result) StringSlice() []string {
	if !r.raw.IsArray() {
		return nil
	}

	items := r.raw.Array()
	out := make([]string, 0, len(items))

	for _, item := range items {
		out = append(out, item.String())
	}

	return out
}

// Value returns the result as generic Go values (map[string]any, []any,
// string, float64, bool, nil) for callers that decode further themselves.
func (r Result) Value() any {
	return r.raw.Value()
}

// Raw returns the raw JSON text of the result, mainly for trace logging.
func (r Result) Raw() string {
	return r.raw.Raw
}
