package distribute

// ToSets converts groups into sets, dropping duplicates within each group.
//
// Distribution itself never deduplicates: equal elements are legitimate input
// and each one lands in exactly one group. Use ToSets when set semantics are
// wanted downstream. Duplicates spread over different groups stay in each of
// those sets.
//
// Example:
//
//	sets := distribute.ToSets([][]string{{"a", "a", "b"}, {"b"}})
//	// sets: [{a, b}, {b}]
func ToSets[E comparable](groups [][]E) []map[E]struct{} {
	sets := make([]map[E]struct{}, len(groups))
	for i, group := range groups {
		set := make(map[E]struct{}, len(group))
		for _, e := range group {
			set[e] = struct{}{}
		}
		sets[i] = set
	}

	return sets
}
