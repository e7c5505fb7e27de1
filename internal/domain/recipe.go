package domain

// RequirementEdge is one line of a recipe: crafting one Parent consumes
// Quantity units of Child.
type RequirementEdge struct {
	ParentSlug string `json:"parent_slug" db:"parent_slug"`
	ChildSlug  string `json:"child_slug" db:"child_slug"`
	Quantity   int    `json:"quantity" db:"quantity"`
}

// RequiredItem is an outgoing requirement edge seen from the parent
type RequiredItem struct {
	RequiredSlug string `json:"required_slug"`
	Quantity     int    `json:"quantity"`
}

// Requirer is an incoming requirement edge seen from the child
type Requirer struct {
	ParentSlug string `json:"parent_slug"`
	Quantity   int    `json:"quantity"`
}

// RecipeComponent is a direct recipe ingredient resolved to its catalog record
type RecipeComponent struct {
	Item     Equipment `json:"item"`
	Quantity int       `json:"quantity"`
}

// Recipe is the one-level view of how an item is crafted
type Recipe struct {
	Item       Equipment         `json:"item"`
	GoldCost   int               `json:"gold_cost"`
	Components []RecipeComponent `json:"components"`
}

// RawComponent is one raw material in a flattened bill of materials
type RawComponent struct {
	Item     Equipment `json:"item"`
	Quantity int       `json:"quantity"`
}

// RawCostResult is the flattened bill of raw materials and the cumulative
// crafting gold needed to build one unit of an item. Components holds at most
// one entry per slug.
type RawCostResult struct {
	GoldCost   int            `json:"gold_cost"`
	Components []RawComponent `json:"components"`
}

// FinalProduct is a terminal item that transitively consumes a queried
// component. TotalQuantity is summed across every path that reaches it.
type FinalProduct struct {
	Item          Equipment `json:"item"`
	TotalQuantity int       `json:"total_quantity"`
}
