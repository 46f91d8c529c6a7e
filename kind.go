package sqldraft

// QueryKind is the closed set of statement kinds a draft can hold.
//
// KindUpdate currently has no entry operation on Builder. It exists so
// the filter and limit permission rules are already exhaustive when one
// lands.
type QueryKind uint8

const (
	KindSelect QueryKind = iota
	KindUpdate
)

func (k QueryKind) String() string {
	var s string
	switch k {
	case KindSelect:
		s = "SELECT"
	case KindUpdate:
		s = "UPDATE"
	}
	return s
}

// permitsFilter reports whether a draft of this kind may accumulate
// where predicates.
func (k QueryKind) permitsFilter() bool {
	switch k {
	case KindSelect, KindUpdate:
		return true
	}
	return false
}

// permitsLimit reports whether a draft of this kind may carry a limit
// clause.
func (k QueryKind) permitsLimit() bool {
	switch k {
	case KindSelect:
		return true
	case KindUpdate:
		return false
	}
	return false
}
