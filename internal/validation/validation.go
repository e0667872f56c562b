package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/snnyvrz/go-book-crud-gin/internal/model"
)

var validate = validator.New()

const notAnObject = "instance is not of a type(s) object"

// maxSafeInt bounds integers to what every JSON consumer reads exactly.
const maxSafeInt = 1 << 53

// ValidationError carries every schema violation of a payload, in schema order.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// ImmutableFieldError reports an attempt to change a field fixed at creation.
type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return e.Field + " cannot be changed"
}

// DecodeObject reads a JSON object from r, keeping numbers as json.Number so
// integers are checked without float rounding.
func DecodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil || payload == nil {
		return nil, &ValidationError{Violations: []string{notAnObject}}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &ValidationError{Violations: []string{notAnObject}}
	}
	return payload, nil
}

// Validate checks payload against s and returns one message per failing
// field. A nil result means the payload is valid.
func Validate(payload map[string]any, s Schema) []string {
	var violations []string

	for _, f := range s.Fields {
		raw, ok := payload[f.Name]
		if !ok {
			if f.Required {
				violations = append(violations, fmt.Sprintf("instance requires property %q", f.Name))
			}
			continue
		}

		value, ok := coerce(raw, f.Kind)
		if !ok {
			violations = append(violations, fmt.Sprintf("instance.%s is not of a type(s) %s", f.Name, f.Kind))
			continue
		}

		if f.Rule == "" {
			continue
		}
		if err := validate.Var(value, f.Rule); err != nil {
			violations = append(violations, ruleMessage(f.Name, err))
		}
	}

	return violations
}

func CreateBook(payload map[string]any) (model.Book, error) {
	if v := Validate(payload, CreateBookSchema); len(v) > 0 {
		return model.Book{}, &ValidationError{Violations: v}
	}
	return toBook(payload), nil
}

// UpdateBook validates a whole-record replacement. The returned book carries
// the payload isbn if one was sent; callers must not persist it.
func UpdateBook(payload map[string]any) (model.Book, error) {
	if v := Validate(payload, UpdateBookSchema); len(v) > 0 {
		return model.Book{}, &ValidationError{Violations: v}
	}
	return toBook(payload), nil
}

// CheckISBNUnchanged must run after UpdateBook has accepted the payload.
func CheckISBNUnchanged(pathISBN string, payload map[string]any) error {
	raw, ok := payload["isbn"]
	if !ok {
		return nil
	}
	if isbn, _ := raw.(string); isbn == pathISBN {
		return nil
	}
	return &ImmutableFieldError{Field: "isbn"}
}

func toBook(p map[string]any) model.Book {
	return model.Book{
		ISBN:      stringField(p, "isbn"),
		AmazonURL: stringField(p, "amazon_url"),
		Author:    stringField(p, "author"),
		Language:  stringField(p, "language"),
		Pages:     intField(p, "pages"),
		Publisher: stringField(p, "publisher"),
		Title:     stringField(p, "title"),
		Year:      intField(p, "year"),
	}
}

func stringField(p map[string]any, name string) string {
	s, _ := p[name].(string)
	return s
}

func intField(p map[string]any, name string) int {
	v, ok := coerce(p[name], KindInteger)
	if !ok {
		return 0
	}
	return int(v.(int64))
}

func coerce(raw any, kind Kind) (any, bool) {
	switch kind {
	case KindString:
		s, ok := raw.(string)
		return s, ok
	case KindInteger:
		return toInt64(raw)
	default:
		return nil, false
	}
}

func toInt64(raw any) (any, bool) {
	switch n := raw.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return boundInt64(i)
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(n)
	case int:
		return boundInt64(int64(n))
	case int64:
		return boundInt64(n)
	default:
		return nil, false
	}
}

func floatToInt64(f float64) (any, bool) {
	if f != math.Trunc(f) || math.Abs(f) > maxSafeInt {
		return nil, false
	}
	return int64(f), true
}

func ruleMessage(field string, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Sprintf("instance.%s is invalid", field)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("instance.%s does not meet minimum length of %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("instance.%s must be greater than or equal to %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("instance.%s does not conform to the \"uri\" format", field)
	default:
		return fmt.Sprintf("instance.%s is invalid (%s)", field, fe.Tag())
	}
}

func boundInt64(i int64) (any, bool) {
	if i > maxSafeInt || i < -maxSafeInt {
		return nil, false
	}
	return i, true
}
