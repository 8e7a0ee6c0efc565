package world

// CharSet is a set of grid characters, typically the ones treated as walls
type CharSet [256]bool

// NewCharSet builds a set from every byte of chars
func NewCharSet(chars string) CharSet {
	var s CharSet
	for i := 0; i < len(chars); i++ {
		s[chars[i]] = true
	}
	return s
}

// Has checks if c is in the set
func (s *CharSet) Has(c byte) bool {
	return s[c]
}

// Chars returns the members in ascending order
func (s *CharSet) Chars() string {
	var out []byte
	for c := 0; c < len(s); c++ {
		if s[c] {
			out = append(out, byte(c))
		}
	}
	return string(out)
}
