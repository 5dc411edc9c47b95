package internal

// ComposeKey builds the wire-level cache key for a resource type and key.
// Format: <resource_type>:<key>
//
// The separator is not escaped. A resource type or key that itself contains
// ':' produces an ambiguous but deterministic composed key; callers that need
// unambiguous keys must keep ':' out of their resource types.
func ComposeKey(resourceType, key string) string {
	return resourceType + ":" + key
}

// KeyPattern builds the SCAN match pattern covering every key under a
// resource type namespace.
func KeyPattern(resourceType string) string {
	return resourceType + ":*"
}
