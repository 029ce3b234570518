package engine

func defaultIntents() []IntentRule {
	return []IntentRule{
		{Name: IntentGreeting, Keywords: []WeightedKeyword{
			{Word: "hello", Weight: 2},
			{Word: "hi", Weight: 1.5},
			{Word: "hey", Weight: 1.5},
			{Word: "good morning", Weight: 2},
			{Word: "good afternoon", Weight: 2},
			{Word: "greetings", Weight: 1.5},
		}},
		{Name: IntentFinancingInquiry, Keywords: []WeightedKeyword{
			{Word: "loan", Weight: 2},
			{Word: "financing", Weight: 2},
			{Word: "funding", Weight: 2},
			{Word: "line of credit", Weight: 2},
			{Word: "borrow", Weight: 1.5},
			{Word: "capital", Weight: 1.5},
		}},
		{Name: IntentEquipmentNeed, Keywords: []WeightedKeyword{
			{Word: "equipment", Weight: 2},
			{Word: "machinery", Weight: 2},
			{Word: "machine", Weight: 1.5},
			{Word: "truck", Weight: 1},
			{Word: "vehicle", Weight: 1},
		}},
		{Name: IntentBusinessInfo, Keywords: []WeightedKeyword{
			{Word: "my business", Weight: 1.5},
			{Word: "my company", Weight: 1.5},
			{Word: "in business", Weight: 1.5},
			{Word: "revenue", Weight: 1.5},
			{Word: "employees", Weight: 1.5},
			{Word: "we make", Weight: 1},
		}},
		{Name: IntentApplicationIntent, Keywords: []WeightedKeyword{
			{Word: "apply", Weight: 2.5},
			{Word: "application", Weight: 2.5},
			{Word: "get started", Weight: 2},
			{Word: "sign up", Weight: 2},
			{Word: "ready to", Weight: 1.5},
		}},
		{Name: IntentContactSharing, Keywords: []WeightedKeyword{
			{Word: "my name is", Weight: 2},
			{Word: "my email", Weight: 2},
			{Word: "my phone", Weight: 2},
			{Word: "my number", Weight: 2},
			{Word: "reach me", Weight: 1.5},
			{Word: "call me", Weight: 1.5},
		}},
		{Name: IntentObjection, Keywords: []WeightedKeyword{
			{Word: "not interested", Weight: 3},
			{Word: "too expensive", Weight: 2},
			{Word: "no thanks", Weight: 2},
			{Word: "already have", Weight: 1.5},
			{Word: "stop", Weight: 1.5},
		}},
		{Name: IntentProductInquiry, Keywords: []WeightedKeyword{
			{Word: "what loans", Weight: 2},
			{Word: "types of loans", Weight: 2},
			{Word: "products", Weight: 1.5},
			{Word: "options", Weight: 1.5},
			{Word: "offer", Weight: 1},
		}},
		{Name: IntentPricingInquiry, Keywords: []WeightedKeyword{
			{Word: "rates", Weight: 2},
			{Word: "rate", Weight: 2},
			{Word: "interest", Weight: 2},
			{Word: "apr", Weight: 2},
			{Word: "cost", Weight: 1.5},
			{Word: "fees", Weight: 1.5},
		}},
		{Name: IntentTimelineInquiry, Keywords: []WeightedKeyword{
			{Word: "how long", Weight: 2},
			{Word: "how fast", Weight: 2},
			{Word: "how quickly", Weight: 2},
			{Word: "turnaround", Weight: 2},
			{Word: "when", Weight: 1},
			{Word: "soon", Weight: 1},
		}},
		{Name: IntentContactRequest, Keywords: []WeightedKeyword{
			{Word: "talk to someone", Weight: 2.5},
			{Word: "speak to", Weight: 2},
			{Word: "representative", Weight: 2},
			{Word: "real person", Weight: 2},
			{Word: "human", Weight: 2},
			{Word: "call me back", Weight: 2},
		}},
		{Name: IntentCheckQualification, Keywords: []WeightedKeyword{
			{Word: "do i qualify", Weight: 3},
			{Word: "qualify", Weight: 2.5},
			{Word: "eligible", Weight: 2.5},
			{Word: "approval odds", Weight: 2},
			{Word: "chances", Weight: 1.5},
		}},
	}
}

func defaultPositiveWords() []string {
	return []string{
		"great", "thanks", "thank you", "awesome", "perfect", "excellent",
		"good", "appreciate", "helpful", "sounds good", "love",
	}
}

func defaultNegativeWords() []string {
	return []string{
		"bad", "frustrated", "annoyed", "terrible", "waste", "scam",
		"awful", "hate", "angry", "worst", "ridiculous",
	}
}

func defaultFAQs() []FAQEntry {
	return []FAQEntry{
		{
			Keywords: []string{"interest rate", "rates", "what rate", "apr"},
			Answer: "Our rates typically range from 8% to 24% APR depending on your credit profile, time in business, and revenue. " +
				"The strongest applications see single-digit rates. I can give you a better estimate once I know a bit more about your business.",
		},
		{
			Keywords: []string{"requirements", "what do i need", "documents", "paperwork"},
			Answer: "Most applications need just three things: 6 months of business bank statements, a government-issued ID, and your basic business details. " +
				"No tax returns are required for loans under $250,000.",
		},
		{
			Keywords: []string{"how long", "how fast", "how quickly", "turnaround"},
			Answer: "Most approvals come back within 24 hours, and funds typically land in your account within 1 to 3 business days after approval.",
		},
		{
			Keywords: []string{"minimum credit", "credit requirement", "bad credit", "low credit"},
			Answer: "We work with credit scores as low as 550, though scores above 650 unlock better rates and larger amounts. " +
				"Revenue and time in business matter as much as the score itself. What does your credit look like?",
		},
		{
			Keywords: []string{"collateral", "secured", "personal guarantee"},
			Answer: "Most of our working capital products are unsecured, so no collateral is required. " +
				"Equipment financing uses the equipment itself as security.",
		},
		{
			Keywords: []string{"repayment", "terms", "how do i pay"},
			Answer: "Terms run from 6 months to 5 years depending on the product, with automatic daily, weekly, or monthly payments. " +
				"There are no prepayment penalties.",
		},
	}
}

func defaultResponses() map[string][]string {
	return map[string][]string{
		IntentGreeting: {
			"Hi there! I'm here to help you explore financing options for your business.",
			"Hello! Welcome. I can help you find the right business loan.",
			"Hey! Great to hear from you. Let's talk about your business financing needs.",
		},
		IntentFinancingInquiry: {
			"We offer term loans, lines of credit, and equipment financing from $10,000 up to $2 million.",
			"Happy to help with financing. We fund most industries with flexible terms.",
		},
		IntentEquipmentNeed: {
			"Equipment financing is one of our most popular products, covering up to 100% of the purchase price.",
			"We finance new and used equipment with terms up to 5 years.",
		},
		IntentBusinessInfo: {
			"Thanks for sharing that about your business.",
			"Got it, that helps me understand your business better.",
		},
		IntentApplicationIntent: {
			"Great, the full application takes about 10 minutes and a decision usually comes back within a day.",
			"Excellent! I can get your application started right away.",
		},
		IntentContactSharing: {
			"Thanks, I've noted that down.",
			"Perfect, got it.",
		},
		IntentObjection: {
			"No problem at all. If anything changes, we're here to help.",
			"Understood. Feel free to reach out anytime if your situation changes.",
		},
		IntentProductInquiry: {
			"We offer term loans, business lines of credit, equipment financing, and working capital advances.",
			"Our main products are term loans, credit lines, and equipment financing.",
		},
		IntentPricingInquiry: {
			"Pricing depends on your credit profile and revenue; most clients see rates between 8% and 24% APR.",
		},
		IntentTimelineInquiry: {
			"Approvals usually take under 24 hours, with funding in 1 to 3 business days.",
		},
		IntentContactRequest: {
			"Absolutely, one of our loan specialists can reach out.",
			"Of course, I'll have a specialist follow up with you.",
		},
		IntentCheckQualification: {
			"Qualification mainly comes down to time in business, monthly revenue, and credit score.",
		},
		IntentGeneralInquiry: {
			"I can help with business loans, lines of credit, and equipment financing.",
			"Happy to help. Tell me a bit about your business and what you're looking for.",
		},
	}
}

func defaultFollowUpLadder() []string {
	return []string{
		FieldName,
		FieldBusinessName,
		FieldBusinessType,
		FieldTimeInBusiness,
		FieldRevenue,
		FieldLoanAmount,
		FieldLoanPurpose,
		FieldEmail,
		FieldPhone,
	}
}

func defaultFollowUpQuestions() map[string]string {
	return map[string]string{
		FieldName:           "May I have your name?",
		FieldBusinessName:   "What's the name of your business?",
		FieldBusinessType:   "What industry is your business in?",
		FieldTimeInBusiness: "How long have you been in business?",
		FieldRevenue:        "What's your approximate monthly revenue?",
		FieldLoanAmount:     "How much funding are you looking for?",
		FieldLoanPurpose:    "What would you use the funds for?",
		FieldEmail:          "What's the best email to reach you at?",
		FieldPhone:          "What's a good phone number for you?",
	}
}

const defaultCallToAction = "You look like a strong candidate. Ready to start your full application?"

func defaultHighInterest() []string {
	return []string{
		"asap", "urgent", "immediately", "right away", "apply now",
		"ready to apply", "as soon as possible", "today",
	}
}

func defaultMediumInterest() []string {
	return []string{
		"interested", "considering", "looking into", "thinking about",
		"curious", "exploring",
	}
}
