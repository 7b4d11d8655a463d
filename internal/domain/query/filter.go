package query

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Op identifies a comparison operator in a filter condition
type Op string

const (
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
	OpIn  Op = "in"
)

// comparisonOps maps the recognized parameter sub-keys to operators
var comparisonOps = map[string]Op{
	"gt":  OpGt,
	"gte": OpGte,
	"lt":  OpLt,
	"lte": OpLte,
	"in":  OpIn,
}

// reservedKeys are control parameters consumed by other stages, never filters
var reservedKeys = map[string]bool{
	"select": true,
	"sort":   true,
	"page":   true,
	"limit":  true,
}

// Condition is a single typed filter constraint on a store column
type Condition struct {
	Column string
	Op     Op
	Value  interface{} // string, or []string for OpIn
}

// FieldMap maps exposed parameter names to store columns. Parameters outside
// the map are rejected rather than passed through to the store.
type FieldMap map[string]string

// Translator turns raw query parameters into a store query specification for
// one resource type
type Translator struct {
	Fields FieldMap
	// DefaultSort is applied when the request carries no sort parameter,
	// e.g. "submission_date DESC"
	DefaultSort string
	// AlwaysSelect columns are kept in every projection so identity and
	// relation keys survive a narrow select
	AlwaysSelect []string
}

// Spec is the translated query: filter conditions, projection and ordering.
// Building a Spec performs no I/O.
type Spec struct {
	Conditions []Condition
	Columns    []string
	Orders     []string
}

// Translate converts the parameter mapping into a Spec. Reserved keys are
// stripped first; every remaining key is an equality constraint unless it
// carries a recognized comparison sub-key in the form field[op].
func (t Translator) Translate(values url.Values) (*Spec, error) {
	spec := &Spec{}

	keys := make([]string, 0, len(values))
	for key := range values {
		if reservedKeys[key] {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, opToken := splitOperator(key)

		op := OpEq
		if opToken != "" {
			var ok bool
			op, ok = comparisonOps[opToken]
			if !ok {
				return nil, fmt.Errorf("unsupported operator %q on field %q", opToken, field)
			}
		}

		column, ok := t.Fields[field]
		if !ok {
			return nil, fmt.Errorf("cannot filter on unknown field %q", field)
		}

		raw := values.Get(key)
		var value interface{} = raw
		if op == OpIn {
			value = strings.Split(raw, ",")
		}

		spec.Conditions = append(spec.Conditions, Condition{Column: column, Op: op, Value: value})
	}

	if err := t.parseSelect(values.Get("select"), spec); err != nil {
		return nil, err
	}
	if err := t.parseSort(values.Get("sort"), spec); err != nil {
		return nil, err
	}

	return spec, nil
}

// splitOperator breaks a parameter key of the form field[op] into its parts.
// Keys without a well-formed bracket suffix are plain field names, so a field
// that merely contains an operator token is never rewritten.
func splitOperator(key string) (field, op string) {
	open := strings.Index(key, "[")
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, ""
	}
	return key[:open], key[open+1 : len(key)-1]
}

func (t Translator) parseSelect(raw string, spec *Spec) error {
	if raw == "" {
		return nil
	}

	seen := make(map[string]bool)
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		column, ok := t.Fields[field]
		if !ok {
			return fmt.Errorf("cannot select unknown field %q", field)
		}
		if !seen[column] {
			seen[column] = true
			spec.Columns = append(spec.Columns, column)
		}
	}

	for _, column := range t.AlwaysSelect {
		if !seen[column] {
			seen[column] = true
			spec.Columns = append(spec.Columns, column)
		}
	}
	return nil
}

func (t Translator) parseSort(raw string, spec *Spec) error {
	if raw == "" {
		if t.DefaultSort != "" {
			spec.Orders = []string{t.DefaultSort}
		}
		return nil
	}

	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = field[1:]
		}
		column, ok := t.Fields[field]
		if !ok {
			return fmt.Errorf("cannot sort on unknown field %q", field)
		}
		spec.Orders = append(spec.Orders, column+" "+direction)
	}
	return nil
}

// Scope returns a GORM scope applying only the filter conditions. Counting
// queries use this to share the exact filter with the listing query.
func (s *Spec) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range s.Conditions {
			switch c.Op {
			case OpGt:
				db = db.Where(c.Column+" > ?", c.Value)
			case OpGte:
				db = db.Where(c.Column+" >= ?", c.Value)
			case OpLt:
				db = db.Where(c.Column+" < ?", c.Value)
			case OpLte:
				db = db.Where(c.Column+" <= ?", c.Value)
			case OpIn:
				db = db.Where(c.Column+" IN ?", c.Value)
			default:
				db = db.Where(c.Column+" = ?", c.Value)
			}
		}
		return db
	}
}

// Apply layers projection and ordering on top of the filter conditions
func (s *Spec) Apply(db *gorm.DB) *gorm.DB {
	db = s.Scope()(db)
	if len(s.Columns) > 0 {
		db = db.Select(s.Columns)
	}
	for _, order := range s.Orders {
		db = db.Order(order)
	}
	return db
}
