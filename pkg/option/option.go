package option

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/distribution-auth/expect/internal/abort"
)

// Option represents an optional value.
// It either contains a value or it does not.
//
// This interface is modeled after github.com/sagikazarmark/go-option.Option
type Option[T any] interface {
	// HasValue returns true if the Option contains a value.
	HasValue() bool

	// Value returns the value (or its default) stored in the Option.
	Value() T
}

// Value is the default Option implementation.
//
// The zero value holds nothing.
type Value[T any] struct {
	value T
	set   bool
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{
		value: v,
		set:   true,
	}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// From converts the comma-ok idiom into a Value.
//
//	port := option.From(os.LookupEnv("PORT"))
func From[T any](v T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// HasValue implements Option.
func (v Value[T]) HasValue() bool {
	return v.set
}

// Value implements Option.
func (v Value[T]) Value() T {
	return v.value
}

// Get returns the stored value and whether there is one.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set
}

// ExpectFmt returns the stored value or calls fn if there is none.
// fn must not return.
func (v Value[T]) ExpectFmt(fn func()) T {
	if v.set {
		return v.value
	}

	return abort.Call[T](fn)
}

// String returns "Some(<value>)" or "None".
func (v Value[T]) String() string {
	return fmt.Sprint(v)
}

// Format implements fmt.Formatter.
// Verbs and flags are applied to the stored value.
func (v Value[T]) Format(f fmt.State, verb rune) {
	if !v.set {
		fmt.Fprint(f, "None")

		return
	}

	fmt.Fprintf(f, "Some("+fmt.FormatString(f, verb)+")", v.value)
}

// MarshalYAML implements yaml.Marshaler.
// An empty Value is encoded as null.
func (v Value[T]) MarshalYAML() (interface{}, error) {
	if !v.set {
		return nil, nil
	}

	return v.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// A null node decodes to an empty Value.
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*v = None[T]()

		return nil
	}

	var value T
	if err := node.Decode(&value); err != nil {
		return fmt.Errorf("decoding optional value: %w", err)
	}

	*v = Some(value)

	return nil
}
