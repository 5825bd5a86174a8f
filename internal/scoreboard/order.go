package scoreboard

// Order arranges games for display. Games of followed teams come first, in
// follow-list order and then encounter order (doubleheaders keep both games
// adjacent). When allGames is set, the remaining games follow, grouped by the
// given status order; otherwise they are dropped.
func Order(games []Game, index TeamGameIndex, favorites []string, displayOrder []Status, allGames bool) []Game {
	if len(displayOrder) == 0 {
		displayOrder = DefaultDisplayOrder
	}

	byID := make(map[int64]Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	ordered := make([]Game, 0, len(games))
	seen := make(map[int64]bool, len(games))

	for _, fav := range favorites {
		for _, id := range index[fav] {
			if seen[id] {
				continue
			}
			g, ok := byID[id]
			if !ok {
				continue
			}
			ordered = append(ordered, g)
			seen[id] = true
		}
	}

	if !allGames {
		return ordered
	}

	for _, status := range displayOrder {
		for _, g := range games {
			if seen[g.ID] || g.Status != status {
				continue
			}
			ordered = append(ordered, g)
			seen[g.ID] = true
		}
	}

	// Games with an unrecognized status still render, at the end.
	for _, g := range games {
		if !seen[g.ID] {
			ordered = append(ordered, g)
			seen[g.ID] = true
		}
	}

	return ordered
}
