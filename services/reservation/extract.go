package reservation

// The create-booking response is not a stable contract: three identifier
// layouts have been observed in production. Extraction is an explicit
// ordered list of strategies so the probing is auditable and testable,
// and a missing identifier fails loudly instead of propagating an empty ID.

type extractStrategy struct {
	name string
	fn   func(map[string]any) (string, bool)
}

var bookingIDStrategies = []extractStrategy{
	{"booking._id", func(m map[string]any) (string, bool) {
		return digString(m, "booking", "_id")
	}},
	{"_id", func(m map[string]any) (string, bool) {
		return digString(m, "_id")
	}},
	{"data.booking._id", func(m map[string]any) (string, bool) {
		return digString(m, "data", "booking", "_id")
	}},
}

// ExtractBookingID probes the known response shapes in order and returns the
// first identifier found.
func ExtractBookingID(resp map[string]any) (string, error) {
	if resp == nil {
		return "", NewContractViolationError(MsgNoBookingID)
	}
	for _, s := range bookingIDStrategies {
		if id, ok := s.fn(resp); ok {
			return id, nil
		}
	}
	return "", NewContractViolationError(MsgNoBookingID)
}

// digString walks nested maps along path and returns the string leaf, if any.
func digString(m map[string]any, path ...string) (string, bool) {
	cur := any(m)
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = obj[key]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
