package model

// Legacy critical keys from a previously-shipped schema version. Persisted
// scenarios written by that version are still in circulation, and the
// execution engine reads these keys unconditionally, so every save must
// carry them even when the current schema no longer declares them.
//
// This shim is technical debt: delete it (and nothing else) once all
// persisted scenarios have been migrated past the old schema.
var legacyCriticalKeys = []string{"renameTo", "moveTo"}

// IsLegacyCriticalKey reports whether the key must survive normalization
// even when absent from the schema.
func IsLegacyCriticalKey(key string) bool {
	for _, k := range legacyCriticalKeys {
		if k == key {
			return true
		}
	}
	return false
}

// PatchLegacyKeys force-inserts the legacy critical keys as empty strings
// when absent. It returns the same map for call chaining; a nil map is
// replaced by a fresh one.
func PatchLegacyKeys(m FieldMap) FieldMap {
	if m == nil {
		m = make(FieldMap, len(legacyCriticalKeys))
	}
	for _, k := range legacyCriticalKeys {
		if _, ok := m[k]; !ok {
			m[k] = ""
		}
	}
	return m
}
