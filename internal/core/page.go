package core

// PageAction is what the delivery layer should do with a page request.
type PageAction int

const (
	ActionRender PageAction = iota
	ActionNotFound
)

func (a PageAction) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
