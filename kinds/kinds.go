package kinds

const (
	length   = 64
	idLength = 8
	depthMax = length / idLength
	idMask   = (1 << idLength) - 1
)

// Bases returns the base IDs encoded beyond the first level
// by shifting and masking.
func Bases(kind uint64) [depthMax]uint64 {
	var bases [depthMax]uint64
	for i := 1; i < depthMax; i++ {
		bases[i-1] = (kind >> (idLength * i)) & idMask
	}
	return bases
}

// Kind builds a kind value from an ID and the kinds it derives from.
func Kind(id uint64, bases ...uint64) uint64 {
	id = id & idMask
	ids := make(map[uint64]struct{})

	for _, base := range bases {
		for j := 0; j < depthMax; j++ {
			baseId := (base >> (idLength * j)) & idMask
			if baseId == 0 {
				break
			}
			if _, ok := ids[baseId]; !ok {
				ids[baseId] = struct{}{}
				id |= baseId << (idLength * len(ids))
			}
		}
	}
	return id
}

// IsKind checks if 'kind' matches any of the bases provided.
func IsKind(kind uint64, bases ...uint64) bool {
	for _, base := range bases {
		baseId := base & idMask
		if kind == baseId {
			return true
		}
		for i := 0; i < depthMax; i++ {
			currentId := (kind >> (idLength * i)) & idMask
			if currentId == baseId {
				return true
			}
		}
	}
	return false
}

var (
	Null       = Kind(0)
	Element    = Kind(1)
	State      = Kind(2, Element)
	Symbol     = Kind(3, Element)
	Transition = Kind(4, Element)
	Initial    = Kind(5, State)
	Accepting  = Kind(6, State)

	Diagnostic        = Kind(7, Element)
	NoStates          = Kind(8, Diagnostic)
	NoAlphabet        = Kind(9, Diagnostic)
	NoInitial         = Kind(10, Diagnostic)
	UnknownInitial    = Kind(11, Diagnostic)
	UnknownAccepting  = Kind(12, Diagnostic)
	MissingTransition = Kind(13, Diagnostic)
)
