package sapling

import (
	"errors"
	"weak"
)

// ErrDetached is returned by a Ref whose container has been garbage collected.
var ErrDetached = errors.New("sapling: reference container is gone")

// Ref binds a widget to one field of one Container and renders that field as
// text. The binding is fixed at construction; bind again to point elsewhere.
//
// A Ref only holds a weak pointer to its container: it never keeps the
// container alive and has nothing to release. Every read goes to the
// container, so values, staleness and timestamps are always current.
type Ref[T any] struct {
	// Localize passes the value's text through the Localizer before display.
	Localize bool
	// Template, when non-empty, is filled in by the Formatter with the
	// (possibly localized) value.
	Template string
	// Formatter overrides the default template substitution rules.
	Formatter Formatter
	// Localizer overrides the default localization table.
	Localizer Localizer

	key       string
	container func() Container
}

// Bind returns a reference to key in container c.
//
// c must be a pointer, since the reference holds it weakly. A container
// whose methods have value receivers, such as a plain map type, cannot be
// bound directly; declare its methods on the pointer and pass its address.
//
//	score := sapling.Bind[int](store, "score")
//	score.Template = "{0} pts"
func Bind[T any, C any, PC interface {
	*C
	Container
}](c PC, key string) *Ref[T] {
	wp := weak.Make((*C)(c))
	return &Ref[T]{
		key: key,
		container: func() Container {
			p := wp.Value()
			if p == nil {
				return nil
			}
			return PC(p)
		},
	}
}

// Key returns the bound field name.
func (r *Ref[T]) Key() string { return r.key }

// Value looks the field up in the container. Container errors are returned
// unchanged.
func (r *Ref[T]) Value() (T, error) {
	c := r.container()
	if c == nil {
		var zero T
		if globalDebug {
			Logger().Debug("sapling: read through detached reference", "key", r.key)
		}
		return zero, ErrDetached
	}
	return Get[T](c, r.key)
}

// IsUpdated reports the container's staleness flag. A detached reference
// reports false.
func (r *Ref[T]) IsUpdated() bool {
	if c := r.container(); c != nil {
		return c.IsUpdated()
	}
	return false
}

// LastUpdated reports the container's last-change timestamp. A detached
// reference reports 0.
func (r *Ref[T]) LastUpdated() int64 {
	if c := r.container(); c != nil {
		return c.LastUpdated()
	}
	return 0
}

// Text renders the value for display:
//
//	template  localize  result
//	no        no        value text
//	no        yes       Localizer(value text)
//	yes       yes       Formatter(template, Localizer(value text))
//	yes       no        Formatter(template, value)
//
// A failed lookup returns the container's error unchanged.
func (r *Ref[T]) Text() (string, error) {
	v, err := r.Value()
	if err != nil {
		return "", err
	}
	raw := argText(v)
	hasTemplate := r.Template != ""

	switch {
	case !hasTemplate && !r.Localize:
		return raw, nil
	case !hasTemplate && r.Localize:
		return r.localizer().Localize(raw), nil
	case hasTemplate && r.Localize:
		return r.formatter().Format(r.Template, r.localizer().Localize(raw)), nil
	default:
		return r.formatter().Format(r.Template, v), nil
	}
}

// MustText is like Text but panics on error.
func (r *Ref[T]) MustText() string {
	s, err := r.Text()
	if err != nil {
		panic(err)
	}
	return s
}

func (r *Ref[T]) formatter() Formatter {
	if r.Formatter != nil {
		return r.Formatter
	}
	return defaultFormatter
}

func (r *Ref[T]) localizer() Localizer {
	if r.Localizer != nil {
		return r.Localizer
	}
	return defaultLocalizer
}
