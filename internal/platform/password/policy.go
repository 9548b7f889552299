package password

import (
	zxcvbn "github.com/nbutton23/zxcvbn-go"
	"github.com/nbutton23/zxcvbn-go/match"
)

// MinScore is the lowest zxcvbn score (0-4 scale) an acceptable password may have.
const MinScore = 3

// Result is the outcome of a strength evaluation: the zxcvbn score plus any
// advisory feedback. A candidate is acceptable only when the score reaches
// MinScore and the feedback is completely empty; any warning or suggestion
// disqualifies the password regardless of score.
type Result struct {
	Score       int
	Warning     string
	Suggestions []string
}

// Acceptable reports whether the candidate passed the policy.
func (r Result) Acceptable() bool {
	return r.Score >= MinScore && r.Warning == "" && len(r.Suggestions) == 0
}

// Policy evaluates candidate passwords against zxcvbn's dictionary and
// pattern heuristics.
type Policy struct{}

// NewPolicy creates a Policy.
func NewPolicy() *Policy {
	return &Policy{}
}

// Evaluate scores the candidate. userInputs carries context the attacker may
// know (at minimum the username), which zxcvbn penalizes as a dictionary.
func (p *Policy) Evaluate(candidate string, userInputs ...string) Result {
	strength := zxcvbn.PasswordStrength(candidate, userInputs)
	res := Result{Score: strength.Score}
	if strength.Score >= MinScore {
		return res
	}
	res.Warning, res.Suggestions = feedback(strength.MatchSequence)
	return res
}

// feedback mirrors the advice zxcvbn attaches to weak passwords: find the
// longest match in the sequence and explain why it drags the score down.
func feedback(sequence []match.Match) (string, []string) {
	suggestions := []string{"Add another word or two. Uncommon words are better."}
	if len(sequence) == 0 {
		return "", suggestions
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if len(m.Token) > len(longest.Token) {
			longest = m
		}
	}

	var warning string
	switch longest.Pattern {
	case "dictionary":
		switch longest.DictionaryName {
		case "passwords":
			warning = "This is similar to a commonly used password."
		case "english":
			warning = "A word by itself is easy to guess."
		case "surnames", "male_names", "female_names":
			warning = "Names and surnames by themselves are easy to guess."
		case "user_inputs":
			warning = "Avoid personal information such as your username."
		}
	case "spatial":
		warning = "Short keyboard patterns are easy to guess."
		suggestions = append(suggestions, "Use a longer keyboard pattern with more turns.")
	case "repeat":
		warning = `Repeats like "aaa" are easy to guess.`
		suggestions = append(suggestions, "Avoid repeated words and characters.")
	case "sequence":
		warning = "Sequences like abc or 6543 are easy to guess."
		suggestions = append(suggestions, "Avoid sequences.")
	case "date", "year":
		warning = "Dates are often easy to guess."
		suggestions = append(suggestions, "Avoid dates and years that are associated with you.")
	}

	return warning, suggestions
}
