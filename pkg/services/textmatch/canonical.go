package textmatch

// DefaultThreshold is the similarity percentage above which two labels
// are considered variants of the same name.
const DefaultThreshold = 85.0

type cluster struct {
	key     string // normalized form of the first member
	members []string
}

// Canonicalize maps every distinct label in the input to one canonical
// representative.
//
// Labels are clustered greedily in first-seen order: each label joins
// the first existing cluster whose key scores at least threshold
// against it, otherwise it opens a new cluster keyed by its own
// normalized form. A label absorbed by an early cluster is never
// re-evaluated against later, possibly closer ones; callers rely on
// this order dependence for stable output. Within a cluster the member
// with the highest occurrence count in the input multiset becomes
// canonical, first-seen winning ties.
//
// Overrides are applied last as exact raw-label matches and win over
// the clustering result unconditionally.
//
// Cost is O(D²·L) for D distinct labels of average length L, which is
// fine for vocabularies in the low thousands. Larger inputs would need
// a candidate pre-filter proven to keep the output identical.
func Canonicalize(labels []string, threshold float64, overrides map[string]string) map[string]string {
	counts := make(map[string]int, len(labels))
	var distinct []string
	for _, label := range labels {
		if counts[label] == 0 {
			distinct = append(distinct, label)
		}
		counts[label]++
	}

	var clusters []cluster
	for _, label := range distinct {
		normalized := NormalizeLabel(label)

		matched := false
		for i := range clusters {
			if Similarity(normalized, clusters[i].key) >= threshold {
				clusters[i].members = append(clusters[i].members, label)
				matched = true
				break
			}
		}
		if !matched {
			clusters = append(clusters, cluster{key: normalized, members: []string{label}})
		}
	}

	mapping := make(map[string]string, len(distinct))
	for _, c := range clusters {
		canonical := c.members[0]
		best := counts[canonical]
		for _, m := range c.members[1:] {
			if counts[m] > best {
				best = counts[m]
				canonical = m
			}
		}
		for _, m := range c.members {
			mapping[m] = canonical
		}
	}

	for raw, forced := range overrides {
		mapping[raw] = forced
	}

	return mapping
}
