package sapling

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Container is a source of named, typed fields with a staleness signal.
// Widgets read from it through Ref.
type Container interface {
	// Field returns the value stored under key, or a *LookupError if there
	// is none.
	Field(key string) (Value, error)
	// IsUpdated reports whether the container has changed since its owner
	// last cleared the flag. When it resets is up to the container.
	IsUpdated() bool
	// LastUpdated returns the timestamp of the most recent change.
	LastUpdated() int64
}

var (
	// ErrNotFound matches any *LookupError via errors.Is.
	ErrNotFound = errors.New("field not found")
	// ErrTypeMismatch matches any *TypeMismatchError via errors.Is.
	ErrTypeMismatch = errors.New("field type mismatch")
)

// LookupError reports a key that is absent from a container.
type LookupError struct {
	Key string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("sapling: field %q not found", e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *LookupError) Is(target error) bool { return target == ErrNotFound }

// TypeMismatchError reports a stored field whose type is incompatible with the
// requested one.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("sapling: field %q is %s, want %s", e.Key, e.Got, e.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// Kind is the tag of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota // zero Value
	KindBool
	KindInt
	KindFloat
	KindString
	KindOther // any other Go type, kept as-is
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindOther:
		return "other"
	default:
		return "invalid"
	}
}

// Value is a tagged union holding one field. The common scalar kinds are
// stored unboxed; everything else is kept in an interface.
type Value struct {
	kind Kind
	b    bool
	i    int
	f    float64
	s    string
	x    any
}

// BoolValue returns a KindBool value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue returns a KindInt value.
func IntValue(i int) Value { return Value{kind: KindInt, i: i} }

// FloatValue returns a KindFloat value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue returns a KindString value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ValueOf wraps v. bool, int, float64 and string get their own kind; any other
// non-nil value is KindOther. nil yields the invalid Value.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case bool:
		return BoolValue(t)
	case int:
		return IntValue(t)
	case float64:
		return FloatValue(t)
	case string:
		return StringValue(t)
	default:
		return Value{kind: KindOther, x: v}
	}
}

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// Any returns the payload as an interface. The invalid Value returns nil.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindOther:
		return v.x
	default:
		return nil
	}
}

// String returns the plain textual form of the payload.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindOther:
		return fmt.Sprint(v.x)
	default:
		return ""
	}
}

// Get looks up key in c and returns it as a T. A missing key returns the
// container's error unchanged; a stored value that is not a T returns a
// *TypeMismatchError.
func Get[T any](c Container, key string) (T, error) {
	var zero T
	v, err := c.Field(key)
	if err != nil {
		return zero, err
	}
	t, ok := v.Any().(T)
	if !ok {
		return zero, &TypeMismatchError{
			Key:  key,
			Want: reflect.TypeFor[T]().String(),
			Got:  typeName(v),
		}
	}
	return t, nil
}

func typeName(v Value) string {
	if v.kind == KindInvalid {
		return "nil"
	}
	return fmt.Sprintf("%T", v.Any())
}

// Store is an in-memory Container. It is not safe for concurrent use; like
// the rest of sapling it expects to live on the game's update goroutine.
type Store struct {
	// Now returns the timestamp recorded on each change.
	// Defaults to time.Now().UnixNano.
	Now func() int64

	fields      map[string]Value
	updated     bool
	lastUpdated int64
	onChange    []func(key string)
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{fields: make(map[string]Value)}
}

// Set stores v under key (see ValueOf) and marks the store updated.
func (s *Store) Set(key string, v any) {
	s.SetValue(key, ValueOf(v))
}

// SetValue stores v under key and marks the store updated.
func (s *Store) SetValue(key string, v Value) {
	if s.fields == nil {
		s.fields = make(map[string]Value)
	}
	s.fields[key] = v
	s.touch(key)
}

// Delete removes key. Deleting a missing key is a no-op and does not mark
// the store updated.
func (s *Store) Delete(key string) {
	if _, ok := s.fields[key]; !ok {
		return
	}
	delete(s.fields, key)
	s.touch(key)
}

// Field implements Container.
func (s *Store) Field(key string) (Value, error) {
	v, ok := s.fields[key]
	if !ok {
		return Value{}, &LookupError{Key: key}
	}
	return v, nil
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored fields.
func (s *Store) Len() int { return len(s.fields) }

// IsUpdated implements Container. The flag stays set until MarkSeen.
func (s *Store) IsUpdated() bool { return s.updated }

// LastUpdated implements Container.
func (s *Store) LastUpdated() int64 { return s.lastUpdated }

// MarkSeen clears the updated flag. The timestamp is kept.
func (s *Store) MarkSeen() { s.updated = false }

// OnChange registers fn to run after every change, with the changed key.
func (s *Store) OnChange(fn func(key string)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Store) touch(key string) {
	s.updated = true
	if s.Now != nil {
		s.lastUpdated = s.Now()
	} else {
		s.lastUpdated = time.Now().UnixNano()
	}
	for _, fn := range s.onChange {
		fn(key)
	}
}
