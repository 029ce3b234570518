package engine

// Config carries every table and threshold the engine decides with. It is
// treated as immutable after construction; tests substitute fixtures
// instead of mutating package state.
type Config struct {
	// Intents are evaluated in order; earliest declaration wins ties.
	Intents []IntentRule

	// Sentiment word lists.
	PositiveWords []string
	NegativeWords []string

	// FAQs are checked in order; the first keyword hit short-circuits the
	// conversational generator.
	FAQs []FAQEntry

	// ScoreWeights maps field names to their qualification-score weight.
	ScoreWeights map[string]float64

	// Responses maps intents to their candidate reply templates. One is
	// picked with the engine's randomness source.
	Responses map[string][]string

	// FollowUpLadder is the missing-field priority order; FollowUpQuestions
	// holds the templated question per field.
	FollowUpLadder    []string
	FollowUpQuestions map[string]string

	// CallToAction is appended when nothing is left to ask and the score
	// exceeds CTAThreshold.
	CallToAction string
	CTAThreshold float64

	// Lead decision thresholds.
	LeadScoreThreshold  float64
	PriorityHighScore   float64
	PriorityMediumScore float64

	// Interest tiers scanned over the user transcript, high first.
	HighInterestKeywords   []string
	MediumInterestKeywords []string
}

// DefaultConfig returns the production tables.
func DefaultConfig() Config {
	return Config{
		Intents:                defaultIntents(),
		PositiveWords:          defaultPositiveWords(),
		NegativeWords:          defaultNegativeWords(),
		FAQs:                   defaultFAQs(),
		ScoreWeights:           DefaultScoreWeights(),
		Responses:              defaultResponses(),
		FollowUpLadder:         defaultFollowUpLadder(),
		FollowUpQuestions:      defaultFollowUpQuestions(),
		CallToAction:           defaultCallToAction,
		CTAThreshold:           7,
		LeadScoreThreshold:     4,
		PriorityHighScore:      8,
		PriorityMediumScore:    5,
		HighInterestKeywords:   defaultHighInterest(),
		MediumInterestKeywords: defaultMediumInterest(),
	}
}

// DefaultScoreWeights exposes the production field weights; the scorer sums
// the weights of populated fields.
func DefaultScoreWeights() map[string]float64 {
	return map[string]float64{
		FieldName:           2,
		FieldEmail:          3,
		FieldPhone:          2,
		FieldBusinessName:   1,
		FieldBusinessType:   1,
		FieldTimeInBusiness: 1,
		FieldRevenue:        2,
		FieldEmployees:      0.5,
		FieldLoanAmount:     1.5,
		FieldLoanPurpose:    1,
		FieldCreditScore:    1,
	}
}
