package model

import (
	"encoding/json"
	"fmt"
)

// Descriptor :
// Defines a raw equipment descriptor as produced by the game
// data dumps. It is an opaque tree of string keys to scalars,
// maps and lists. The normalizers of this package consume such
// trees and produce flat records suited for the combat engine.
// No particular wire format is mandated: any decoding able to
// produce nested maps (typically `encoding/json`) can feed it.
type Descriptor map[string]interface{}

// ErrDescriptorMissingField :
// Used to indicate that a descriptor does not define a field
// required to normalize it.
var ErrDescriptorMissingField = fmt.Errorf("Missing required field in descriptor")

// missingField :
// Convenience wrapper to produce a missing field error that
// carries the name of the offending key.
//
// The `key` defines the name of the missing field.
//
// Returns the built error.
func missingField(key string) error {
	return fmt.Errorf("%w: \"%s\"", ErrDescriptorMissingField, key)
}

// asDescriptor :
// Used to interpret a raw value of the tree as a nested
// descriptor.
//
// The `v` defines the value to interpret.
//
// Returns the descriptor along with a boolean indicating
// whether the conversion was possible.
func asDescriptor(v interface{}) (Descriptor, bool) {
	switch d := v.(type) {
	case Descriptor:
		return d, true
	case map[string]interface{}:
		return Descriptor(d), true
	}

	return nil, false
}

// asFloat :
// Used to interpret a raw value of the tree as a real number.
// Descriptor documents may carry numbers as any of the usual
// scalar encodings depending on how they were decoded so all
// of them are accepted.
//
// The `v` defines the value to interpret.
//
// Returns the number along with a boolean indicating whether
// the conversion was possible.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}

	return 0, false
}

// child :
// Used to access a nested descriptor under the specified key.
//
// The `key` defines the name of the child to access.
//
// Returns the child descriptor along with a boolean which is
// `false` if the key does not exist or does not refer to a
// nested map.
func (d Descriptor) child(key string) (Descriptor, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}

	return asDescriptor(v)
}

// requireChild :
// Similar to `child` but returns a missing field error in
// case the key does not refer to a nested descriptor.
//
// The `key` defines the name of the child to access.
//
// Returns the child descriptor along with any error.
func (d Descriptor) requireChild(key string) (Descriptor, error) {
	c, ok := d.child(key)
	if !ok {
		return nil, missingField(key)
	}

	return c, nil
}

// floatAt :
// Used to access a scalar number under the specified key.
//
// The `key` defines the name of the field to access.
//
// Returns the number along with a boolean which is `false`
// if the key does not exist or is not a number.
func (d Descriptor) floatAt(key string) (float64, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}

	return asFloat(v)
}

// floatOr :
// Used to access a scalar number under the specified key and
// fall back to the provided default when the field does not
// exist.
//
// The `key` defines the name of the field to access.
//
// The `fallback` defines the value to use when the field is
// not defined.
//
// Returns the number.
func (d Descriptor) floatOr(key string, fallback float64) float64 {
	v, ok := d.floatAt(key)
	if !ok {
		return fallback
	}

	return v
}

// requireFloat :
// Similar to `floatAt` but returns a missing field error in
// case the key does not refer to a number.
//
// The `key` defines the name of the field to access.
//
// Returns the number along with any error.
func (d Descriptor) requireFloat(key string) (float64, error) {
	v, ok := d.floatAt(key)
	if !ok {
		return 0, missingField(key)
	}

	return v, nil
}

// stringAt :
// Used to access a string under the specified key.
//
// The `key` defines the name of the field to access.
//
// Returns the string along with a boolean which is `false`
// if the key does not exist or is not a string.
func (d Descriptor) stringAt(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	return s, ok
}

// requireString :
// Similar to `stringAt` but returns a missing field error
// in case the key does not refer to a string.
//
// The `key` defines the name of the field to access.
//
// Returns the string along with any error.
func (d Descriptor) requireString(key string) (string, error) {
	s, ok := d.stringAt(key)
	if !ok {
		return "", missingField(key)
	}

	return s, nil
}

// listAt :
// Used to access a list under the specified key.
//
// The `key` defines the name of the field to access.
//
// Returns the list along with a boolean which is `false`
// if the key does not exist or is not a list.
func (d Descriptor) listAt(key string) ([]interface{}, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}

	l, ok := v.([]interface{})
	return l, ok
}

// requireList :
// Similar to `listAt` but returns a missing field error in
// case the key does not refer to a list.
//
// The `key` defines the name of the field to access.
//
// Returns the list along with any error.
func (d Descriptor) requireList(key string) ([]interface{}, error) {
	l, ok := d.listAt(key)
	if !ok {
		return nil, missingField(key)
	}

	return l, nil
}
