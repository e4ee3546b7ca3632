package vectordb

import "fmt"

// FilterCondition is one predicate on a payload field. Adapters translate
// each concrete condition into the store's own filter syntax and ignore
// conditions they cannot express.
type FilterCondition interface {
	IsFilterCondition()
}

// FilterSet combines conditions: every Must condition, at least one Should
// condition (when any are given) and no MustNot condition has to hold.
type FilterSet struct {
	Must    *ConditionSet `json:"must,omitempty"`
	Should  *ConditionSet `json:"should,omitempty"`
	MustNot *ConditionSet `json:"mustNot,omitempty"`
}

// ConditionSet is the condition list of one FilterSet clause.
type ConditionSet struct {
	Conditions []FilterCondition `json:"conditions,omitempty"`
}

// NewFilterSet builds a FilterSet from clauses.
//
//	vectordb.NewFilterSet(
//	    vectordb.Must(vectordb.NewMatch("rarity", "rare")),
//	    vectordb.Should(vectordb.NewMatch("colors", "R"), vectordb.NewMatch("colors", "G")),
//	)
func NewFilterSet(clauses ...func(*FilterSet)) *FilterSet {
	fs := &FilterSet{}
	for _, clause := range clauses {
		clause(fs)
	}
	return fs
}

// Must sets the conditions that all have to hold.
func Must(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.Must = &ConditionSet{Conditions: conditions} }
}

// Should sets the conditions of which at least one has to hold.
func Should(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.Should = &ConditionSet{Conditions: conditions} }
}

// MustNot sets the conditions none of which may hold.
func MustNot(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.MustNot = &ConditionSet{Conditions: conditions} }
}

// IsEmpty reports whether the set holds no condition at all.
func (fs *FilterSet) IsEmpty() bool {
	if fs == nil {
		return true
	}
	return fs.Must.size() == 0 && fs.Should.size() == 0 && fs.MustNot.size() == 0
}

func (cs *ConditionSet) size() int {
	if cs == nil {
		return 0
	}
	return len(cs.Conditions)
}

// MatchCondition holds when Field equals Value. Value is a string, bool or
// integer. On list fields such as colors it holds when any element is equal.
type MatchCondition struct {
	Field string `json:"field"`
	Value any    `json:"equalTo"`
}

func (*MatchCondition) IsFilterCondition() {}

// NewMatch returns a Field == value condition.
func NewMatch(field string, value any) *MatchCondition {
	return &MatchCondition{Field: field, Value: value}
}

// MatchAnyCondition holds when Field equals one of Values.
type MatchAnyCondition struct {
	Field  string `json:"field"`
	Values []any  `json:"anyOf"`
}

func (*MatchAnyCondition) IsFilterCondition() {}

// NewMatchAny returns a Field IN values condition. It panics when values mix
// strings, numbers and booleans.
func NewMatchAny(field string, values ...any) *MatchAnyCondition {
	mustBeUniform(values)
	return &MatchAnyCondition{Field: field, Values: values}
}

// MatchExceptCondition holds when Field equals none of Values.
type MatchExceptCondition struct {
	Field  string `json:"field"`
	Values []any  `json:"noneOf"`
}

func (*MatchExceptCondition) IsFilterCondition() {}

// NewMatchExcept returns a Field NOT IN values condition. It panics when
// values mix strings, numbers and booleans.
func NewMatchExcept(field string, values ...any) *MatchExceptCondition {
	mustBeUniform(values)
	return &MatchExceptCondition{Field: field, Values: values}
}

// NumericRange bounds a numeric field. Nil bounds are open.
type NumericRange struct {
	Gt  *float64
	Gte *float64
	Lt  *float64
	Lte *float64
}

// NumericRangeCondition holds when Field lies within Range, e.g. a
// collector number window.
type NumericRangeCondition struct {
	Field string
	Range NumericRange
}

func (*NumericRangeCondition) IsFilterCondition() {}

// NewNumericRange returns a range condition on field.
func NewNumericRange(field string, r NumericRange) *NumericRangeCondition {
	return &NumericRangeCondition{Field: field, Range: r}
}

// IsEmptyCondition holds when Field is missing, null or an empty list.
type IsEmptyCondition struct {
	Field string `json:"isEmpty"`
}

func (*IsEmptyCondition) IsFilterCondition() {}

// NewIsEmpty returns an emptiness condition on field.
func NewIsEmpty(field string) *IsEmptyCondition {
	return &IsEmptyCondition{Field: field}
}

func mustBeUniform(values []any) {
	var first string
	for i, v := range values {
		kind := valueKind(v)
		if kind == "" {
			panic(fmt.Sprintf("vectordb: unsupported filter value %v (%T) at index %d", v, v, i))
		}
		if i == 0 {
			first = kind
			continue
		}
		if kind != first {
			panic(fmt.Sprintf("vectordb: filter values must share a type: %s at index 0, %s at index %d", first, kind, i))
		}
	}
}

func valueKind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int, int64, float64:
		return "number"
	case bool:
		return "bool"
	default:
		return ""
	}
}
