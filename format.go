package sapling

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter substitutes arguments into a template string.
type Formatter interface {
	Format(template string, args ...any) string
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(template string, args ...any) string

// Format calls f.
func (f FormatterFunc) Format(template string, args ...any) string {
	return f(template, args...)
}

// IndexFormatter replaces positional placeholders {0}, {1}, ... with the
// textual form of the matching argument. "{{" and "}}" produce literal
// braces. Placeholders that are malformed or out of range are copied
// verbatim. This is the default formatter.
type IndexFormatter struct{}

// Format implements Formatter.
func (IndexFormatter) Format(template string, args ...any) string {
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				b.WriteString(template[i:])
				return b.String()
			}
			field := template[i+1 : i+1+end]
			n, err := strconv.Atoi(field)
			if err != nil || n < 0 || n >= len(args) {
				b.WriteString(template[i : i+2+end])
			} else {
				b.WriteString(argText(args[n]))
			}
			i += end + 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func argText(a any) string {
	if v, ok := a.(Value); ok {
		return v.String()
	}
	return fmt.Sprint(a)
}

// PrintfFormatter formats the template with fmt.Sprintf verbs.
type PrintfFormatter struct{}

// Format implements Formatter.
func (PrintfFormatter) Format(template string, args ...any) string {
	return fmt.Sprintf(template, args...)
}

// LocaleFormatter formats the template with fmt-style verbs using the number
// conventions of Tag (digit grouping, decimal separator).
type LocaleFormatter struct {
	Tag language.Tag
}

// Format implements Formatter.
func (f LocaleFormatter) Format(template string, args ...any) string {
	return message.NewPrinter(f.Tag).Sprintf(template, args...)
}

var defaultFormatter Formatter = IndexFormatter{}

// SetDefaultFormatter sets the formatter used by references that have no
// Formatter of their own. nil restores IndexFormatter.
func SetDefaultFormatter(f Formatter) {
	if f == nil {
		f = IndexFormatter{}
	}
	defaultFormatter = f
}

// DefaultFormatter returns the package-wide default formatter.
func DefaultFormatter() Formatter {
	return defaultFormatter
}
