package validation

type Kind int

const (
	KindString Kind = iota
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Field describes one payload property. Rule is a validator tag applied to
// the decoded value once its JSON type is correct.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Rule     string
}

// Schema is an ordered set of fields; violations are reported in this order.
type Schema struct {
	Name   string
	Fields []Field
}

var CreateBookSchema = Schema{
	Name: "bookCreate",
	Fields: []Field{
		{Name: "isbn", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "amazon_url", Kind: KindString, Required: true, Rule: "url"},
		{Name: "author", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "language", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "pages", Kind: KindInteger, Required: true, Rule: "gte=0"},
		{Name: "publisher", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "title", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "year", Kind: KindInteger, Required: true},
	},
}

// UpdateBookSchema accepts isbn only so it can be compared with the path.
var UpdateBookSchema = Schema{
	Name: "bookUpdate",
	Fields: []Field{
		{Name: "isbn", Kind: KindString, Rule: "min=1"},
		{Name: "amazon_url", Kind: KindString, Required: true, Rule: "url"},
		{Name: "author", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "language", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "pages", Kind: KindInteger, Required: true, Rule: "gte=0"},
		{Name: "publisher", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "title", Kind: KindString, Required: true, Rule: "min=1"},
		{Name: "year", Kind: KindInteger, Required: true},
	},
}
