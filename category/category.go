package category

// Category is a node in an is-a hierarchy.
// A category's parents are fixed at construction, so a hierarchy is always acyclic.
type Category struct {
	name    string
	parents []*Category
}

// New creates a category below the given parents.
// Every category is implicitly below Object.
func New(name string, parents ...*Category) *Category {
	ps := make([]*Category, 0, len(parents))
	for _, p := range parents {
		if p == nil {
			panic("category.New: nil parent")
		}
		ps = append(ps, p)
	}
	return &Category{name: name, parents: ps}
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) String() string {
	return c.name
}

// Parents returns the direct parents of c.
func (c *Category) Parents() []*Category {
	return append([]*Category(nil), c.parents...)
}

// IsA reports whether c is ancestor itself or one of its descendants.
func (c *Category) IsA(ancestor *Category) bool {
	if c == nil || ancestor == nil {
		return c == ancestor
	}
	if c == ancestor || ancestor == Object {
		return true
	}
	for _, p := range c.parents {
		if p.IsA(ancestor) {
			return true
		}
	}
	return false
}

// Member is implemented by user-defined types that belong to a category.
type Member interface {
	Category() *Category
}
