package vibeeq

// bandKeys are the keys whose presence in the first element marks an array
// as a band list. preamp is included because some exporters put a preamp
// record first.
var bandKeys = []string{"frequency", "gain", "fc", "q", "preamp"}

// priorityKeys are probed, in order, before the generic member scan
var priorityKeys = []string{"preset", "bands", "eq1", "entries", "equalizer"}

// Locate finds the first band list inside an arbitrary JSON document.
// It returns nil when there is none.
func Locate(v *Value) []*Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case Array:
		if looksLikeBands(v) {
			return v.Items
		}
		for _, item := range v.Items {
			if res := Locate(item); len(res) > 0 {
				return res
			}
		}
	case Object:
		for _, k := range priorityKeys {
			if sub, ok := v.Lookup(k); ok {
				if res := Locate(sub); len(res) > 0 {
					return res
				}
			}
		}
		for _, m := range v.Members {
			if res := Locate(m.Value); len(res) > 0 {
				return res
			}
		}
	}
	return nil
}

func looksLikeBands(v *Value) bool {
	if len(v.Items) == 0 {
		return false
	}
	first := v.Items[0]
	if first.Kind != Object {
		return false
	}
	for _, k := range bandKeys {
		if first.Has(k) {
			return true
		}
	}
	return false
}
