package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Metrics holds named run metrics. Values that JSON cannot represent (NaN and
// the infinities) are written as the strings "NaN", "+Inf" and "-Inf".
type Metrics map[string]float64

func (m Metrics) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	out := make(map[string]any, len(m))
	for name, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[name] = strconv.FormatFloat(v, 'g', -1, 64)
			continue
		}
		out[name] = v
	}
	return json.Marshal(out)
}

func (m *Metrics) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}

	out := make(Metrics, len(raw))
	for name, msg := range raw {
		var v float64
		if err := json.Unmarshal(msg, &v); err == nil {
			out[name] = v
			continue
		}
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return fmt.Errorf("storage: metric %s: %w", name, err)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("storage: metric %s: %w", name, err)
		}
		out[name] = f
	}
	*m = out
	return nil
}
