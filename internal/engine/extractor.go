package engine

import (
	"regexp"
	"strings"
)

// ---------- package-level compiled regexes ----------

var (
	emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRE = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`)

	employeesRE      = regexp.MustCompile(`(?i)(\d+)\s*(?:employees|team members|people on (?:the|my) team|team)`)
	creditScoreCtxRE = regexp.MustCompile(`(?i)(?:credit score|credit|fico|score)\D{0,12}(\d{3})\b`)
	creditScoreRevRE = regexp.MustCompile(`(?i)\b(\d{3})\s*(?:credit score|credit|fico|score)`)
)

const nameTokenPattern = `[A-Z][a-zA-Z'\-]+(?:\s+[A-Z][a-zA-Z'\-]+)?`

// Name extraction: lead phrase followed by capitalized token(s). The name
// part stays case-sensitive so filler words don't get promoted to names.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?i:my name is)\s+(` + nameTokenPattern + `)`),
	regexp.MustCompile(`\b(?i:i'?m)\s+(` + nameTokenPattern + `)`),
	regexp.MustCompile(`\b(?i:i am)\s+(` + nameTokenPattern + `)`),
	regexp.MustCompile(`\b(?i:call me)\s+(` + nameTokenPattern + `)`),
}

const businessTokenPattern = `[A-Z][\w&'\-.]*(?:\s+[A-Z][\w&'\-.]*){0,3}`

// Business name extraction: requires an explicit business/company phrase
// plus a linking verb, so ordinary mentions of "my business" don't match.
var businessNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?i:(?:business|company) name is)\s+(` + businessTokenPattern + `)`),
	regexp.MustCompile(`\b(?i:(?:business|company) is called)\s+(` + businessTokenPattern + `)`),
	regexp.MustCompile(`\b(?i:(?:business|company) called)\s+(` + businessTokenPattern + `)`),
	regexp.MustCompile(`\b(?i:(?:business|company) is)\s+(` + businessTokenPattern + `)`),
}

var revenuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\$[\d,]+(?:\.\d+)?k?)\s*(?:/|a|per)?\s*(?:month|mo\b)`),
	regexp.MustCompile(`(?i)(?:revenue|sales)\s*(?:is|of|are|about|around|:)?\s*(\$?[\d,]+(?:\.\d+)?k?)`),
	regexp.MustCompile(`(?i)(\$?[\d,]+(?:\.\d+)?k?)\s*(?:in|a|per)?\s*(?:monthly\s+)?(?:revenue|sales)`),
}

var timeInBusinessPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:in business|operating|established|open)\s*(?:for|since)?\s*(\d+\+?\s*(?:years?|yrs?|months?))`),
	regexp.MustCompile(`(?i)(\d+\+?\s*(?:years?|yrs?|months?))\s*(?:in business|of operation|in operation|operating)`),
}

// timeInBusinessLooseRE matches a bare duration once the utterance carries
// a business-age qualifier anywhere.
var (
	timeInBusinessLooseRE   = regexp.MustCompile(`(?i)(\d+\+?\s*(?:years?|yrs?|months?))`)
	timeInBusinessContextRE = regexp.MustCompile(`(?i)in business|operating|established|been open`)
)

var (
	loanAmountNeedRE    = regexp.MustCompile(`(?i)(?:need|looking for|want|seeking)\s*(?:about|around|at least)?\s*\$?([\d,]+(?:\.\d+)?)\s*(?:k|thousand|million|m\b)?`)
	loanAmountContextRE = regexp.MustCompile(`(?i)(?:loan|financing|capital|funding)\s*(?:of|for|amount|about|around|:)?\s*\$?([\d,]+(?:\.\d+)?)\s*(?:k|thousand|million|m\b)?`)
	loanAmountBareRE    = regexp.MustCompile(`(?i)\$([\d,]+(?:\.\d+)?)\s*(?:k|thousand|million|m\b)?`)
	loanContextRE       = regexp.MustCompile(`(?i)loan|financing|capital|funding`)
	revenueContextRE    = regexp.MustCompile(`(?i)month|revenue|sales`)
)

// ---------- fixed vocabularies ----------

// businessTypeVocab is checked in declared order; the first substring hit
// wins, so more specific entries come before generic catch-alls.
var businessTypeVocab = []string{
	"restaurant",
	"retail",
	"construction",
	"manufacturing",
	"trucking",
	"landscaping",
	"salon",
	"auto repair",
	"real estate",
	"consulting",
	"medical",
	"dental",
	"technology",
	"professional",
	"service",
}

var loanPurposeVocab = []string{
	"equipment",
	"inventory",
	"expansion",
	"working capital",
	"payroll",
	"marketing",
}

// nameStopWords filters capitalized tokens that are clearly not names,
// e.g. "I'm Looking for a loan".
var nameStopWords = map[string]bool{
	"looking": true, "interested": true, "trying": true, "hoping": true,
	"wondering": true, "thinking": true, "just": true, "not": true,
	"also": true, "still": true, "currently": true, "ready": true,
	"new": true, "here": true, "good": true, "sure": true, "sorry": true,
	"the": true, "a": true, "an": true, "in": true, "so": true,
	"going": true, "getting": true, "calling": true, "asking": true,
}

// ExtractEntities parses a free-text utterance into structured fields.
// The session is consulted only for extraction guards: once a name or
// business name is captured it is never re-derived. At most one value is
// produced per field; within a field the first matching pattern wins.
// Degenerate input yields the zero value, never an error.
func ExtractEntities(message string, session *Session) ExtractedEntities {
	var out ExtractedEntities

	message = strings.TrimSpace(message)
	if message == "" {
		return out
	}
	lower := strings.ToLower(message)

	out.Email = emailRE.FindString(message)
	out.Phone = extractPhone(message)

	if session == nil || session.Contact.Name == "" {
		out.Name = extractName(message)
	}
	if session == nil || session.Contact.BusinessName == "" {
		out.BusinessName = extractBusinessName(message)
	}

	// Business type is re-detectable every turn; no guard.
	for _, vocab := range businessTypeVocab {
		if strings.Contains(lower, vocab) {
			out.BusinessType = vocab
			break
		}
	}

	for _, re := range revenuePatterns {
		if m := re.FindStringSubmatch(message); len(m) >= 2 {
			out.Revenue = strings.TrimSpace(m[1])
			break
		}
	}

	if m := employeesRE.FindStringSubmatch(message); len(m) >= 2 {
		out.Employees = m[1]
	}

	out.TimeInBusiness = extractTimeInBusiness(message, lower)
	out.LoanAmount = extractLoanAmount(message, lower)

	for _, vocab := range loanPurposeVocab {
		if strings.Contains(lower, vocab) {
			out.LoanPurpose = vocab
			break
		}
	}

	out.CreditScore = extractCreditScore(message)

	return out
}

// extractPhone finds the first NANP-style number and normalizes it to its
// ten digits.
func extractPhone(message string) string {
	raw := phoneRE.FindString(message)
	if raw == "" {
		return ""
	}
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return ""
	}
	return d
}

func extractName(message string) string {
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(message)
		if len(m) < 2 {
			continue
		}
		words := strings.Fields(m[1])
		kept := make([]string, 0, 2)
		for _, w := range words {
			if nameStopWords[strings.ToLower(w)] {
				break
			}
			kept = append(kept, w)
		}
		if len(kept) > 0 {
			return strings.Join(kept, " ")
		}
	}
	return ""
}

func extractBusinessName(message string) string {
	for _, re := range businessNamePatterns {
		if m := re.FindStringSubmatch(message); len(m) >= 2 {
			return strings.TrimSpace(strings.Trim(m[1], ".,!?"))
		}
	}
	return ""
}

func extractTimeInBusiness(message, lower string) string {
	for _, re := range timeInBusinessPatterns {
		if m := re.FindStringSubmatch(message); len(m) >= 2 {
			return strings.TrimSpace(m[1])
		}
	}
	if timeInBusinessContextRE.MatchString(lower) {
		if m := timeInBusinessLooseRE.FindStringSubmatch(message); len(m) >= 2 {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractLoanAmount keeps the literal numeric token; k/thousand/million
// suffixes are not converted to a magnitude.
func extractLoanAmount(message, lower string) string {
	if m := loanAmountNeedRE.FindStringSubmatch(message); len(m) >= 2 {
		return m[1]
	}
	if loanContextRE.MatchString(lower) {
		if m := loanAmountContextRE.FindStringSubmatch(message); len(m) >= 2 {
			return m[1]
		}
	}
	// Bare currency token, unless it reads as a revenue figure.
	if m := loanAmountBareRE.FindStringSubmatchIndex(message); m != nil {
		trailing := strings.ToLower(message[m[1]:])
		if !revenueContextRE.MatchString(firstWords(trailing, 3)) {
			return message[m[2]:m[3]]
		}
	}
	return ""
}

func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

func extractCreditScore(message string) string {
	if m := creditScoreCtxRE.FindStringSubmatch(message); len(m) >= 2 {
		return m[1]
	}
	if m := creditScoreRevRE.FindStringSubmatch(message); len(m) >= 2 {
		return m[1]
	}
	return ""
}
