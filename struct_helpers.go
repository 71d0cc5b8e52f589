package sitter

// Accessors over the generic values ghodss/yaml and encoding/json produce.
// The schema loader and the importers use these instead of type-asserting
// inline everywhere.

func AsMap(v interface{}) map[string]interface{} {
	if v != nil {
		if m, ok := v.(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

func AsArray(v interface{}) []interface{} {
	if v != nil {
		if a, ok := v.([]interface{}); ok {
			return a
		}
	}
	return nil
}

func AsString(v interface{}) string {
	if v != nil {
		switch s := v.(type) {
		case string:
			return s
		case *string:
			return *s
		}
	}
	return ""
}

func AsBool(v interface{}) bool {
	if v != nil {
		if b, isBool := v.(bool); isBool {
			return b
		}
		return true
	}
	return false
}

func AsStringMap(v interface{}) map[string]string {
	m := AsMap(v)
	if m == nil {
		return nil
	}
	sm := make(map[string]string, len(m))
	for k, mv := range m {
		sm[k] = AsString(mv)
	}
	return sm
}

func Get(m map[string]interface{}, key string) interface{} {
	if m != nil {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return nil
}

func GetString(m map[string]interface{}, key string) string {
	return AsString(Get(m, key))
}

func GetBool(m map[string]interface{}, key string) bool {
	return AsBool(Get(m, key))
}

func GetArray(m map[string]interface{}, key string) []interface{} {
	return AsArray(Get(m, key))
}

func GetMap(m map[string]interface{}, key string) map[string]interface{} {
	return AsMap(Get(m, key))
}

func Has(m map[string]interface{}, key string) bool {
	_, ok := m[key]
	return ok
}
