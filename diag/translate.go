package diag

import "strings"

// Prefix opens every translated diagnostic.
const Prefix = "Hey, you're missing "

// maxChain bounds the number of wrappers followed when translating.
const maxChain = 64

// Translator renders a [Kind] and its root-cause chain as an English sentence.
type Translator struct {
	Kind Kind
}

// String returns the sentence for t.Kind: [Prefix] followed by the
// explanation of each kind on the chain, outermost first, ending with the
// leaf. A nil kind, or a wrapper chain that never reaches a leaf, ends with
// the generic [ItemError].
func (t Translator) String() string {
	var sb strings.Builder

	sb.WriteString(Prefix)

	k := cause(t.Kind)

	for range maxChain {
		sb.WriteString(k.Explanation())

		next, ok := k.RootCause()
		if !ok {
			return sb.String()
		}

		k = next
	}

	sb.WriteString(ItemError{}.Explanation())

	return sb.String()
}

// Translate is shorthand for Translator{k}.String().
func Translate(k Kind) string { return Translator{Kind: k}.String() }
