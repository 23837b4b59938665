package dao

// MissingFields returns the subset of defaults whose top-level keys are not
// present in existing. A key that is present keeps its stored value no
// matter what the default says; nested structures are never merged
// recursively, so a customized section survives re-seeding untouched.
func MissingFields(existing, defaults map[string]any) map[string]any {
	missing := make(map[string]any)
	for key, value := range defaults {
		if _, ok := existing[key]; !ok {
			missing[key] = value
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return missing
}
