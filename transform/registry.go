package transform

import "fmt"

// The registry maps names to transformer bundles. Registration is an
// explicit call executed at startup before any conversion runs; nothing
// registers itself from an import side effect. A handful of built-in
// transformers are part of the static table.
var registry = map[string]Transformer{}

// Register attaches a named transformer. Registering an existing name is
// an error; the built-in names cannot be replaced.
func Register(name string, t Transformer) error {
	if name == "" {
		return fmt.Errorf("%w: empty transformer name", ErrTransform)
	}
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("%w: %q is a built-in transformer", ErrTransform, name)
	}
	if _, ok := registry[name]; ok {
		return fmt.Errorf("%w: transformer %q already registered", ErrTransform, name)
	}
	registry[name] = t
	return nil
}

// Lookup resolves a name against the built-in table, then the registry.
func Lookup(name string) (Transformer, bool) {
	if t, ok := builtins[name]; ok {
		return t, true
	}
	t, ok := registry[name]
	return t, ok
}

// Names returns the built-in and registered transformer names.
func Names() []string {
	res := make([]string, 0, len(builtins)+len(registry))
	for name := range builtins {
		res = append(res, name)
	}
	for name := range registry {
		res = append(res, name)
	}
	return res
}
