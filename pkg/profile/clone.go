package profile

import "time"

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// cloneData deep-copies a data payload so that a cloned object never shares
// nested maps or slices with its source. Scalars are copied as-is.
func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneData(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return val
	}
}
