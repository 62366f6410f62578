package cleaner

// EnglishManchester uses the base chain unchanged: the Manchester corpus
// follows the shared conventions throughout.
type EnglishManchester struct {
	Base
}
