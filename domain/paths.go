package domain

import "strings"

// CandidatePath is an ordered sequence of tokens of length >= 2, starting
// at the source token and ending at the destination, with no token
// repeated. A path of N tokens traverses N-1 pools (hops).
type CandidatePath []Token

// Source returns the first token of the path.
func (p CandidatePath) Source() Token {
	return p[0]
}

// Destination returns the last token of the path.
func (p CandidatePath) Destination() Token {
	return p[len(p)-1]
}

// NumHops returns the number of pools the path traverses.
func (p CandidatePath) NumHops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// ContractIDs returns the ordered token contract ids of the path.
func (p CandidatePath) ContractIDs() []string {
	ids := make([]string, 0, len(p))
	for _, token := range p {
		ids = append(ids, token.ContractID)
	}
	return ids
}

// String implements fmt.Stringer. Uses display symbols for readability
// in logs.
func (p CandidatePath) String() string {
	var sb strings.Builder
	for i, token := range p {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(token.Symbol)
	}
	return sb.String()
}
