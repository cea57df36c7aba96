package pricing

// Unbounded marks a tier with no upper limit. It must be the last tier.
const Unbounded = 0

// Tier is a price bracket covering quantities up to its inclusive upper bound.
type Tier interface {
	UpperBound() int
}

// ResolveBracket selects the smallest tier whose upper bound is >= n. When n
// exceeds every bound the highest tier is returned. ok is false only when
// tiers is empty. Tiers must be sorted by ascending upper bound.
func ResolveBracket[T Tier](tiers []T, n int) (tier T, ok bool) {
	if len(tiers) == 0 {
		return tier, false
	}
	for _, t := range tiers {
		if t.UpperBound() == Unbounded || n <= t.UpperBound() {
			return t, true
		}
	}
	return tiers[len(tiers)-1], true
}

// ExceedsBrackets reports whether n is above the highest bounded tier.
func ExceedsBrackets[T Tier](tiers []T, n int) bool {
	if len(tiers) == 0 {
		return true
	}
	top := tiers[len(tiers)-1].UpperBound()
	return top != Unbounded && n > top
}

func validateBounds[T Tier](section string, tiers []T) []string {
	var problems []string
	if len(tiers) == 0 {
		return []string{section + ": at least one bracket is required"}
	}
	prev := 0
	for i, t := range tiers {
		bound := t.UpperBound()
		if bound == Unbounded {
			if i != len(tiers)-1 {
				problems = append(problems, section+": open-ended bracket must be the last one")
			}
			continue
		}
		if bound < 0 {
			problems = append(problems, section+": bracket bound must be positive")
			continue
		}
		if bound <= prev {
			problems = append(problems, section+": bracket bounds must be strictly increasing")
		}
		prev = bound
	}
	return problems
}
