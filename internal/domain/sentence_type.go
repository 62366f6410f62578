package domain

// SentenceType classifies an utterance by its terminator coding.
type SentenceType string

const (
	SentenceDeclarative             SentenceType = "declarative"
	SentenceQuestion                SentenceType = "question"
	SentenceExclamation             SentenceType = "exclamation"
	SentenceBrokenForCoding         SentenceType = "broken for coding"
	SentenceTrailOff                SentenceType = "trail off"
	SentenceTrailOffQuestion        SentenceType = "trail off of question"
	SentenceQuestionExclamation     SentenceType = "question with exclamation"
	SentenceInterruption            SentenceType = "interruption"
	SentenceInterruptionQuestion    SentenceType = "interruption of a question"
	SentenceSelfInterruption        SentenceType = "self interruption"
	SentenceSelfInterruptedQuestion SentenceType = "self interrupted question"
	SentenceQuotationFollows        SentenceType = "quotation follows"
	SentenceQuotationPrecedes       SentenceType = "quotation precedes"
)

// sentenceTypes maps terminator codings to sentence types.
var sentenceTypes = map[string]SentenceType{
	".":    SentenceDeclarative,
	"?":    SentenceQuestion,
	"!":    SentenceExclamation,
	"+.":   SentenceBrokenForCoding,
	"+...": SentenceTrailOff,
	"+..?": SentenceTrailOffQuestion,
	"+!?":  SentenceQuestionExclamation,
	"+/.":  SentenceInterruption,
	"+/?":  SentenceInterruptionQuestion,
	"+//.": SentenceSelfInterruption,
	"+//?": SentenceSelfInterruptedQuestion,
	`+"/.`: SentenceQuotationFollows,
	`+".`:  SentenceQuotationPrecedes,
}

// SentenceTypeForTerminator resolves a raw terminator coding to a sentence
// type. The second return value is false for codings outside the inventory.
func SentenceTypeForTerminator(terminator string) (SentenceType, bool) {
	st, ok := sentenceTypes[terminator]
	return st, ok
}
