package vectordb

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON writes the conditions as a bare JSON array.
func (cs *ConditionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(cs.Conditions)
}

// UnmarshalJSON reads a JSON array of conditions. The concrete type of each
// condition is inferred from its keys: "equalTo", "anyOf", "noneOf", a range
// bound or "isEmpty".
func (cs *ConditionSet) UnmarshalJSON(data []byte) error {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	cs.Conditions = make([]FilterCondition, 0, len(items))
	for i, fields := range items {
		cond := conditionFor(fields)
		if cond == nil {
			return fmt.Errorf("vectordb: condition %d: unknown condition type", i)
		}
		raw, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, cond); err != nil {
			return fmt.Errorf("vectordb: condition %d: %w", i, err)
		}
		cs.Conditions = append(cs.Conditions, cond)
	}
	return nil
}

var rangeKeys = []string{"greaterThan", "greaterThanOrEqualTo", "lessThan", "lessThanOrEqualTo"}

func conditionFor(fields map[string]json.RawMessage) FilterCondition {
	has := func(key string) bool { _, ok := fields[key]; return ok }

	switch {
	case has("equalTo"):
		return &MatchCondition{}
	case has("anyOf"):
		return &MatchAnyCondition{}
	case has("noneOf"):
		return &MatchExceptCondition{}
	case has("isEmpty"):
		return &IsEmptyCondition{}
	}
	for _, key := range rangeKeys {
		if has(key) {
			return &NumericRangeCondition{}
		}
	}
	return nil
}

type numericRangeJSON struct {
	Field string   `json:"field"`
	Gt    *float64 `json:"greaterThan,omitempty"`
	Gte   *float64 `json:"greaterThanOrEqualTo,omitempty"`
	Lt    *float64 `json:"lessThan,omitempty"`
	Lte   *float64 `json:"lessThanOrEqualTo,omitempty"`
}

// MarshalJSON flattens the bounds next to the field name.
func (c *NumericRangeCondition) MarshalJSON() ([]byte, error) {
	r := c.Range
	return json.Marshal(numericRangeJSON{Field: c.Field, Gt: r.Gt, Gte: r.Gte, Lt: r.Lt, Lte: r.Lte})
}

// UnmarshalJSON reads the flattened form written by MarshalJSON.
func (c *NumericRangeCondition) UnmarshalJSON(data []byte) error {
	var v numericRangeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	c.Field = v.Field
	c.Range = NumericRange{Gt: v.Gt, Gte: v.Gte, Lt: v.Lt, Lte: v.Lte}
	return nil
}
