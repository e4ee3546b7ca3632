package qdrant

import (
	"fmt"
	"strconv"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/cardforge/mtgsearch/v1/vectordb"
)

// ── Point Conversion ─────────────────────────────────────────────────────────

func toPoints(inputs []vectordb.EmbeddingInput) ([]*qdrant.PointStruct, error) {
	points := make([]*qdrant.PointStruct, 0, len(inputs))
	for _, in := range inputs {
		if len(in.Vector) == 0 {
			return nil, fmt.Errorf("point %q has no vector", in.ID)
		}
		payload, err := qdrant.TryValueMap(normalizePayload(in.Payload))
		if err != nil {
			return nil, fmt.Errorf("point %q payload: %w", in.ID, err)
		}
		points = append(points, &qdrant.PointStruct{
			Id:      newPointID(in.ID),
			Vectors: qdrant.NewVectors(in.Vector...),
			Payload: payload,
		})
	}
	return points, nil
}

// newPointID maps unsigned integer strings to numeric ids and everything else to UUID ids.
func newPointID(id string) *qdrant.PointId {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return qdrant.NewIDNum(n)
	}
	return qdrant.NewID(id)
}

// normalizePayload rewrites typed slices into []any so the SDK value
// conversion accepts them.
func normalizePayload(payload map[string]any) map[string]any {
	if payload == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return items
	case []int:
		items := make([]any, len(val))
		for i, n := range val {
			items[i] = n
		}
		return items
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = normalizeValue(item)
		}
		return items
	case map[string]any:
		return normalizePayload(val)
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return m
	default:
		return v
	}
}

// ── Filter Conversion ────────────────────────────────────────────────────────

// convertFilterSet converts a vectordb.FilterSet to a Qdrant filter. It returns
// nil when no condition survives conversion.
func convertFilterSet(filters *vectordb.FilterSet) *qdrant.Filter {
	if filters == nil {
		return nil
	}

	filter := &qdrant.Filter{
		Must:    convertConditionSet(filters.Must),
		Should:  convertConditionSet(filters.Should),
		MustNot: convertConditionSet(filters.MustNot),
	}

	if len(filter.Must) == 0 && len(filter.Should) == 0 && len(filter.MustNot) == 0 {
		return nil
	}
	return filter
}

func convertConditionSet(cs *vectordb.ConditionSet) []*qdrant.Condition {
	if cs == nil {
		return nil
	}

	var conditions []*qdrant.Condition
	for _, c := range cs.Conditions {
		if cond := convertCondition(c); cond != nil {
			conditions = append(conditions, cond)
		}
	}
	return conditions
}

func convertCondition(c vectordb.FilterCondition) *qdrant.Condition {
	switch cond := c.(type) {
	case *vectordb.MatchCondition:
		return convertMatchCondition(cond)
	case *vectordb.MatchAnyCondition:
		return convertMatchAnyCondition(cond)
	case *vectordb.MatchExceptCondition:
		return convertMatchExceptCondition(cond)
	case *vectordb.NumericRangeCondition:
		return convertNumericRangeCondition(cond)
	case *vectordb.IsEmptyCondition:
		return qdrant.NewIsEmpty(cond.Field)
	default:
		return nil
	}
}

func convertMatchCondition(c *vectordb.MatchCondition) *qdrant.Condition {
	key := c.Field
	switch v := c.Value.(type) {
	case string:
		return qdrant.NewMatch(key, v)
	case bool:
		return qdrant.NewMatchBool(key, v)
	case int:
		return qdrant.NewMatchInt(key, int64(v))
	case int64:
		return qdrant.NewMatchInt(key, v)
	case float64:
		// JSON numbers decode as float64
		return qdrant.NewMatchInt(key, int64(v))
	default:
		return nil
	}
}

func convertMatchAnyCondition(c *vectordb.MatchAnyCondition) *qdrant.Condition {
	if len(c.Values) == 0 {
		return nil
	}
	key := c.Field
	if strs, ok := toStrings(c.Values); ok {
		return qdrant.NewMatchKeywords(key, strs...)
	}
	if ints, ok := toInts(c.Values); ok {
		return qdrant.NewMatchInts(key, ints...)
	}
	return nil
}

func convertMatchExceptCondition(c *vectordb.MatchExceptCondition) *qdrant.Condition {
	if len(c.Values) == 0 {
		return nil
	}
	key := c.Field
	if strs, ok := toStrings(c.Values); ok {
		return qdrant.NewMatchExceptKeywords(key, strs...)
	}
	if ints, ok := toInts(c.Values); ok {
		return qdrant.NewMatchExceptInts(key, ints...)
	}
	return nil
}

func convertNumericRangeCondition(c *vectordb.NumericRangeCondition) *qdrant.Condition {
	r := c.Range
	if r.Gt == nil && r.Gte == nil && r.Lt == nil && r.Lte == nil {
		return nil
	}
	return qdrant.NewRange(c.Field, &qdrant.Range{
		Gt:  r.Gt,
		Gte: r.Gte,
		Lt:  r.Lt,
		Lte: r.Lte,
	})
}

func toStrings(values []any) ([]string, bool) {
	strs := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		strs[i] = s
	}
	return strs, true
}

func toInts(values []any) ([]int64, bool) {
	ints := make([]int64, len(values))
	for i, v := range values {
		switch n := v.(type) {
		case int:
			ints[i] = int64(n)
		case int64:
			ints[i] = n
		case float64:
			ints[i] = int64(n)
		default:
			return nil, false
		}
	}
	return ints, true
}

// ── Result Conversion ────────────────────────────────────────────────────────

func parseSearchResults(resp []*qdrant.ScoredPoint) ([]vectordb.SearchResult, error) {
	results := make([]vectordb.SearchResult, 0, len(resp))
	for _, r := range resp {
		id, err := extractPointID(r.GetId())
		if err != nil {
			return nil, err
		}

		results = append(results, vectordb.SearchResult{
			ID:      id,
			Score:   r.GetScore(),
			Payload: convertPayload(r.GetPayload()),
		})
	}
	return results, nil
}

func extractPointID(id *qdrant.PointId) (string, error) {
	if id == nil {
		return "", fmt.Errorf("nil point ID")
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return strconv.FormatUint(v.Num, 10), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("unexpected PointId type: %T", v)
	}
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}

// extractVectorDetails reads the vector size and distance metric of a
// single-vector collection, or returns (0, "") when the config is absent.
func extractVectorDetails(info *qdrant.CollectionInfo) (int, string) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok {
		return int(cfg.Params.Size), cfg.Params.Distance.String()
	}

	return 0, ""
}

func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}
