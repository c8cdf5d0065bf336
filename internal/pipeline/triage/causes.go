package triage

// causeEntry pairs a symptom keyword with its candidate causes. The slice
// order is the table order and drives the order of PossibleCauses.
type causeEntry struct {
	keyword string
	causes  []string
}

// causeTable maps benign symptom keywords to up to a few plausible,
// non-diagnostic causes. Red-flag keywords are deliberately absent.
var causeTable = []causeEntry{
	{"headache", []string{"tension headache", "migraine", "dehydration"}},
	{"fever", []string{"viral infection", "influenza", "common cold"}},
	{"cough", []string{"common cold", "bronchitis", "seasonal allergies"}},
	{"sore throat", []string{"viral pharyngitis", "strep throat"}},
	{"nausea", []string{"gastroenteritis", "food poisoning"}},
	{"vomiting", []string{"gastroenteritis", "food poisoning"}},
	{"diarrhea", []string{"gastroenteritis", "food intolerance"}},
	{"dizziness", []string{"dehydration", "low blood pressure", "inner ear disturbance"}},
	{"dizzy", []string{"dehydration", "low blood pressure", "inner ear disturbance"}},
	{"fatigue", []string{"poor sleep", "anemia", "viral infection"}},
	{"rash", []string{"contact dermatitis", "allergic reaction"}},
	{"abdominal pain", []string{"indigestion", "gastritis", "constipation"}},
	{"stomach ache", []string{"indigestion", "gastritis", "constipation"}},
	{"back pain", []string{"muscle strain", "poor posture"}},
	{"joint pain", []string{"overuse strain", "early arthritis"}},
	{"swelling", []string{"minor injury", "fluid retention"}},
}

const maxPossibleCauses = 3

// causesFor collects causes for the matched keywords in table order,
// deduplicated and capped at maxPossibleCauses. Nil when nothing matches.
func causesFor(keywords []string) []string {
	matched := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		matched[kw] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{})
	for _, entry := range causeTable {
		if _, ok := matched[entry.keyword]; !ok {
			continue
		}
		for _, c := range entry.causes {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
			if len(out) == maxPossibleCauses {
				return out
			}
		}
	}
	return out
}
