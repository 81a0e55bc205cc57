package domain

// Definitions maps variable names to raw values read from a definitions file.
type Definitions map[string]string

// Recognized key names. They are part of the generated file's contract.
const (
	KeyGoogleMaps = "GOOGLE_MAPS_API_KEY"
	KeyLTA        = "LTA_API_KEY"
)

// RecognizedKeys lists the emitted keys in output order.
var RecognizedKeys = []string{KeyGoogleMaps, KeyLTA}

// Get returns a value for the given key and a boolean indicating if it exists.
func Get(defs Definitions, key string) (string, bool) {
	if defs == nil {
		return "", false
	}
	val, ok := defs[key]
	return val, ok
}

// ConfigKeys holds the resolved recognized keys, one entry per RecognizedKeys name.
type ConfigKeys map[string]string

// Resolve picks the recognized keys out of defs. Absent keys resolve to "".
func Resolve(defs Definitions) ConfigKeys {
	out := make(ConfigKeys, len(RecognizedKeys))
	for _, k := range RecognizedKeys {
		v, _ := Get(defs, k)
		out[k] = v
	}
	return out
}

// KeyStatus reports whether a recognized key carries a non-empty value.
type KeyStatus struct {
	Name string
	Set  bool
}

// Inspect reports the status of every recognized key, in output order.
func Inspect(defs Definitions) []KeyStatus {
	out := make([]KeyStatus, 0, len(RecognizedKeys))
	for _, k := range RecognizedKeys {
		v, _ := Get(defs, k)
		out = append(out, KeyStatus{Name: k, Set: v != ""})
	}
	return out
}
