package gen

import "staygen/internal/fake"

// Pair is one accepted (parent, child) link.
type Pair struct {
	ParentID int
	ChildID  int
}

// linkAttemptFactor bounds the random top-up phase before LinkPairs falls
// back to enumerating the remaining distinct pairs.
const linkAttemptFactor = 20

// LinkPairs builds the link set used by every many-to-many table: each
// parent first receives one randomly chosen child, then random pairs are
// drawn until quota is met, rejecting duplicates. If random draws stall it
// enumerates the unused pairs so the loop always terminates; the result is
// then the full cross product if that is smaller than the quota.
func LinkPairs(fp *fake.Provider, parents, children []int, quota int) []Pair {
	if len(parents) == 0 || len(children) == 0 {
		return nil
	}
	maxPairs := len(parents) * len(children)
	if quota > maxPairs {
		quota = maxPairs
	}

	seen := make(map[Pair]bool, quota)
	var pairs []Pair
	add := func(p Pair) bool {
		if seen[p] {
			return false
		}
		seen[p] = true
		pairs = append(pairs, p)
		return true
	}

	for _, parent := range parents {
		if len(pairs) >= quota {
			break
		}
		add(Pair{ParentID: parent, ChildID: fake.Pick(fp, children)})
	}

	attempts := quota * linkAttemptFactor
	for len(pairs) < quota && attempts > 0 {
		attempts--
		add(Pair{ParentID: fake.Pick(fp, parents), ChildID: fake.Pick(fp, children)})
	}

	if len(pairs) < quota {
		var unused []Pair
		for _, parent := range parents {
			for _, child := range children {
				if p := (Pair{ParentID: parent, ChildID: child}); !seen[p] {
					unused = append(unused, p)
				}
			}
		}
		for _, i := range fp.Perm(len(unused)) {
			if len(pairs) >= quota {
				break
			}
			add(unused[i])
		}
	}

	return pairs
}
