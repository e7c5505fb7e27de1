package crafting

import "github.com/osse101/Armory_Go/internal/domain"

// pathSet is the set of slugs on the current branch of a walk. It is never
// mutated after creation; with returns an extended copy so sibling branches
// do not see each other's nodes.
type pathSet map[string]struct{}

func (p pathSet) contains(slug string) bool {
	_, ok := p[slug]
	return ok
}

func (p pathSet) with(slug string) pathSet {
	next := make(pathSet, len(p)+1)
	for k := range p {
		next[k] = struct{}{}
	}
	next[slug] = struct{}{}
	return next
}

// componentAccumulator merges raw components by slug, keeping first-seen order
type componentAccumulator struct {
	index      map[string]int
	components []domain.RawComponent
}

func newComponentAccumulator() *componentAccumulator {
	return &componentAccumulator{index: make(map[string]int)}
}

func (a *componentAccumulator) add(item domain.Equipment, quantity int) {
	if i, ok := a.index[item.Slug]; ok {
		a.components[i].Quantity += quantity
		return
	}
	a.index[item.Slug] = len(a.components)
	a.components = append(a.components, domain.RawComponent{Item: item, Quantity: quantity})
}

func (a *componentAccumulator) mergeScaled(components []domain.RawComponent, factor int) {
	for _, c := range components {
		a.add(c.Item, c.Quantity*factor)
	}
}

func (a *componentAccumulator) list() []domain.RawComponent {
	if a.components == nil {
		return []domain.RawComponent{}
	}
	return a.components
}

// productAccumulator sums final-product quantities by slug
type productAccumulator struct {
	order  []string
	totals map[string]int
}

func newProductAccumulator() *productAccumulator {
	return &productAccumulator{totals: make(map[string]int)}
}

func (a *productAccumulator) add(slug string, quantity int) {
	if _, ok := a.totals[slug]; !ok {
		a.order = append(a.order, slug)
	}
	a.totals[slug] += quantity
}

func (a *productAccumulator) len() int {
	return len(a.order)
}
