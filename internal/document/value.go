package document

// Kind identifies what a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// Value is one node of a parsed document. Sequences and mappings preserve
// the order the source supplied; mapping keys are not deduplicated (the
// viewer tolerates duplicates even though well-formed documents should not
// contain them).
type Value struct {
	Kind   Kind
	Bool   bool
	Number string // lexical form as written in the source
	Str    string
	Items  []*Value // sequence children
	Pairs  []Pair   // mapping entries, insertion order
}

// Pair is a single mapping entry.
type Pair struct {
	Key   string
	Value *Value
}

// NewNull returns the null value.
func NewNull() *Value { return &Value{Kind: KindNull} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// NewNumber returns a numeric value from its lexical form.
func NewNumber(lexical string) *Value { return &Value{Kind: KindNumber, Number: lexical} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }

// NewSequence returns an ordered sequence value.
func NewSequence(items ...*Value) *Value { return &Value{Kind: KindSequence, Items: items} }

// NewMapping returns an ordered mapping value.
func NewMapping(pairs ...Pair) *Value { return &Value{Kind: KindMapping, Pairs: pairs} }

// IsScalar reports whether v is a terminal (non-composite) value.
func (v *Value) IsScalar() bool {
	switch v.Kind {
	case KindSequence, KindMapping:
		return false
	}
	return true
}

// Equal reports structural equality: same kinds, same scalar lexemes, same
// child order, same key order.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str == b.Str
	case KindSequence:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.Pairs) != len(b.Pairs) {
			return false
		}
		for i := range a.Pairs {
			if a.Pairs[i].Key != b.Pairs[i].Key || !Equal(a.Pairs[i].Value, b.Pairs[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
