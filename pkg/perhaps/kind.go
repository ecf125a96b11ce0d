package perhaps

// Kind is the discriminant of a Perhaps. The zero Kind is KindEmpty.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindFailure
	KindPresent
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindFailure:
		return "Failure"
	case KindPresent:
		return "Present"
	default:
		return "Kind(invalid)"
	}
}

func (k Kind) valid() bool {
	return k <= KindPresent
}
