package main

// countKeys returns the number of leaves reachable from node. Nested
// mappings are traversed; every other value, arrays included, counts as a
// single key. prefix is the dotted path of node and only feeds debug logs.
func countKeys(node Node, prefix string) int {
	m, ok := node.(Mapping)
	if !ok {
		return 0
	}
	count := 0
	for _, k := range sortedKeys(m) {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := m[k].(Mapping); ok {
			count += countKeys(child, key)
			continue
		}
		log.Debugw("leaf", "key", key)
		count++
	}
	return count
}
