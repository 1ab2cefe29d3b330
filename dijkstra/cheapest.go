package dijkstra

// OnCheapestPaths returns every vertex that lies on at least one cheapest
// path from src to any of targets, together with that cheapest cost.
//
// It runs Dijkstra forward from src over children until the cheapest target
// is settled and every vertex at most that far away is settled too. For each
// target attaining the minimum it then runs Dijkstra from the target over
// parents, which must enumerate the edges of children reversed: parents(v)
// yields {c, u} exactly when children(u) yields {c, v}. A vertex v is kept
// when dist(src, v) + dist(v, target) equals the minimum for some such
// target. An inconsistent parents function gives silently wrong results.
//
// ok is false if no target is reachable.
func OnCheapestPaths[T comparable](src T, targets []T, children, parents EdgeFunc[T]) (map[T]struct{}, int, bool) {
	targetSet := make(map[T]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}

	fwd := newRunner(src, children, nil)
	fwd.options.StopAt = func(v T) bool {
		if _, ok := targetSet[v]; !ok {
			return false
		}
		// keep going, but never beyond the first target's distance
		if fwd.options.MaxDistance > fwd.res.Dist[v] {
			fwd.options.MaxDistance = fwd.res.Dist[v]
		}
		return false
	}
	fwd.process()

	best, found := 0, false
	for t := range targetSet {
		if d, ok := fwd.res.Dist[t]; ok && (!found || d < best) {
			best, found = d, true
		}
	}
	if !found {
		return nil, 0, false
	}

	on := make(map[T]struct{})
	for t := range targetSet {
		if d, ok := fwd.res.Dist[t]; !ok || d != best {
			continue
		}
		back := Run(t, parents, WithMaxDistance[T](best))
		for v, toTarget := range back.Dist {
			if fromSrc, ok := fwd.res.Dist[v]; ok && fromSrc+toTarget == best {
				on[v] = struct{}{}
			}
		}
	}

	return on, best, true
}
