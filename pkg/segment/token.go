package segment

// Kind classifies a path token.
type Kind uint8

const (
	Static Kind = iota
	Dynamic
	Optional
	CatchAll
	Group
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Optional:
		return "optional"
	case CatchAll:
		return "catchall"
	case Group:
		return "group"
	default:
		return "unknown"
	}
}

// Token is one lexical piece of a page path segment.
type Token struct {
	Kind  Kind
	Value string
}
