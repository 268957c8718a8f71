package services

import "strings"

// concerningPhrases flags self-harm and disordered-eating language.
// Matching any of these returns the fixed support message and never
// forwards the text to the LLM or the keyword engine.
var concerningPhrases = []string{
	"not eating",
	"starving",
	"purge",
	"binge",
	"hate my body",
	"too fat",
	"disgusting",
	"fast for days",
	"laxative",
	"make myself throw up",
	"eating disorder",
}

const supportMessage = `I hear that you might be going through a difficult time with food and your body.

Your wellbeing matters more than any nutrition goal.

**UGA has free, confidential support available:**
- UGA Counseling & Psychiatric Services (CAPS): (706) 542-2273
- UGA Health Center Nutrition Services: (706) 542-8690

Would you like me to help you find more resources, or is there something else I can support you with today?`

// checkConcerningContent returns the support message when the input
// contains a denylisted phrase, empty string otherwise.
func checkConcerningContent(userMessage string) string {
	lower := strings.ToLower(userMessage)
	for _, phrase := range concerningPhrases {
		if strings.Contains(lower, phrase) {
			return supportMessage
		}
	}
	return ""
}
