package weak

// Index looks up key in container. If container is a Map that has key, the
// stored value is returned. In all other cases, including when container is
// Absent, the result is Absent.
func Index(container Value, key string) Value {
	switch c := container.(type) {
	case Map:
		if v, ok := c.Get(key); ok {
			return v
		}
		return Absent{}
	case Text, Number, List, Absent, nil:
		return Absent{}
	default:
		panic("unreachable")
	}
}

// IndexPath calls Index repeatedly, using each key in turn on the result of
// the previous lookup.
func IndexPath(container Value, keys ...string) Value {
	v := orAbsent(container)
	for _, key := range keys {
		v = Index(v, key)
	}
	return v
}
