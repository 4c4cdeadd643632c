package hidden

// Hidden excludes an entity from all unculled rendering.
type Hidden struct{}

// HiddenPropagate is the same exclusion inherited from an ancestor in a
// scene hierarchy. Set by hierarchy propagation, not by users directly.
type HiddenPropagate struct{}
