package calc

// Classification codes returned by ClassifyNumber.
const (
	CodeEven   uint32 = 12
	CodeTriple uint32 = 13
	CodeOther  uint32 = 17
)

// ClassifyNumber returns CodeEven if n is divisible by 2, CodeTriple if n is
// divisible by 3, and CodeOther otherwise. Evenness wins, so 6 maps to CodeEven.
func ClassifyNumber(n uint32) uint32 {
	if n%2 == 0 {
		return CodeEven
	} else if n%3 == 0 {
		return CodeTriple
	}
	return CodeOther
}
