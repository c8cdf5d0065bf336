package rx

// drugCodes is the fixed name-to-code table, RxNorm ingredient codes.
// Lookup is exact and case-insensitive; brand names alias to the same code
// as their ingredient.
var drugCodes = map[string]NormalizedDrug{
	"warfarin":       {CanonicalName: "warfarin", Code: "11289"},
	"aspirin":        {CanonicalName: "aspirin", Code: "1191"},
	"disprin":        {CanonicalName: "aspirin", Code: "1191"},
	"ibuprofen":      {CanonicalName: "ibuprofen", Code: "5640"},
	"advil":          {CanonicalName: "ibuprofen", Code: "5640"},
	"brufen":         {CanonicalName: "ibuprofen", Code: "5640"},
	"naproxen":       {CanonicalName: "naproxen", Code: "7258"},
	"paracetamol":    {CanonicalName: "paracetamol", Code: "161"},
	"acetaminophen":  {CanonicalName: "paracetamol", Code: "161"},
	"panadol":        {CanonicalName: "paracetamol", Code: "161"},
	"metformin":      {CanonicalName: "metformin", Code: "6809"},
	"lisinopril":     {CanonicalName: "lisinopril", Code: "29046"},
	"losartan":       {CanonicalName: "losartan", Code: "52175"},
	"amoxicillin":    {CanonicalName: "amoxicillin", Code: "723"},
	"clarithromycin": {CanonicalName: "clarithromycin", Code: "21212"},
	"ciprofloxacin":  {CanonicalName: "ciprofloxacin", Code: "2551"},
	"atorvastatin":   {CanonicalName: "atorvastatin", Code: "83367"},
	"simvastatin":    {CanonicalName: "simvastatin", Code: "36567"},
	"omeprazole":     {CanonicalName: "omeprazole", Code: "7646"},
	"clopidogrel":    {CanonicalName: "clopidogrel", Code: "32968"},
	"sertraline":     {CanonicalName: "sertraline", Code: "36437"},
	"tramadol":       {CanonicalName: "tramadol", Code: "10689"},
	"methotrexate":   {CanonicalName: "methotrexate", Code: "6851"},
	"isotretinoin":   {CanonicalName: "isotretinoin", Code: "6064"},
	"insulin":        {CanonicalName: "insulin", Code: "5856"},
}

// interactionRule is one known pairwise interaction, keyed by codes.
type interactionRule struct {
	codeA, codeB   string
	severity       Severity
	mechanism      string
	management     string
	evidenceSource string
}

var interactionRules = []interactionRule{
	{
		codeA: "11289", codeB: "1191", // warfarin + aspirin
		severity:       SeverityCritical,
		mechanism:      "Additive anticoagulant and antiplatelet effect markedly increases bleeding risk.",
		management:     "Avoid the combination. Contact the prescriber before taking another dose.",
		evidenceSource: "FDA label: warfarin sodium",
	},
	{
		codeA: "11289", codeB: "5640", // warfarin + ibuprofen
		severity:       SeveritySerious,
		mechanism:      "NSAIDs impair platelet function and injure gastric mucosa, raising bleeding risk on warfarin.",
		management:     "Prefer paracetamol for pain relief; discuss any NSAID use with the prescriber.",
		evidenceSource: "FDA label: warfarin sodium",
	},
	{
		codeA: "11289", codeB: "7258", // warfarin + naproxen
		severity:       SeveritySerious,
		mechanism:      "NSAIDs impair platelet function and injure gastric mucosa, raising bleeding risk on warfarin.",
		management:     "Prefer paracetamol for pain relief; discuss any NSAID use with the prescriber.",
		evidenceSource: "FDA label: warfarin sodium",
	},
	{
		codeA: "21212", codeB: "36567", // clarithromycin + simvastatin
		severity:       SeveritySerious,
		mechanism:      "CYP3A4 inhibition by clarithromycin raises statin exposure and rhabdomyolysis risk.",
		management:     "Pause the statin during the antibiotic course or switch antibiotics; ask the prescriber.",
		evidenceSource: "FDA label: clarithromycin",
	},
	{
		codeA: "29046", codeB: "5640", // lisinopril + ibuprofen
		severity:       SeverityCaution,
		mechanism:      "NSAIDs blunt the antihypertensive effect of ACE inhibitors and can reduce renal perfusion.",
		management:     "Monitor blood pressure; keep NSAID use short and mention it at the next review.",
		evidenceSource: "FDA label: lisinopril",
	},
	{
		codeA: "6851", codeB: "5640", // methotrexate + ibuprofen
		severity:       SeveritySerious,
		mechanism:      "NSAIDs reduce renal clearance of methotrexate, risking toxic accumulation.",
		management:     "Do not combine without prescriber supervision and level monitoring.",
		evidenceSource: "FDA label: methotrexate",
	},
	{
		codeA: "32968", codeB: "7646", // clopidogrel + omeprazole
		severity:       SeverityCaution,
		mechanism:      "Omeprazole inhibits CYP2C19 activation of clopidogrel, weakening its antiplatelet effect.",
		management:     "Ask the prescriber about an alternative acid reducer such as pantoprazole.",
		evidenceSource: "FDA drug safety communication: clopidogrel",
	},
	{
		codeA: "10689", codeB: "36437", // tramadol + sertraline
		severity:       SeveritySerious,
		mechanism:      "Combined serotonergic activity raises the risk of serotonin syndrome.",
		management:     "Watch for agitation, tremor or fever; seek medical advice before continuing both.",
		evidenceSource: "FDA label: tramadol hydrochloride",
	},
	{
		codeA: "1191", codeB: "5640", // aspirin + ibuprofen
		severity:       SeverityCaution,
		mechanism:      "Ibuprofen competes at the platelet COX-1 site and can blunt aspirin's cardioprotective effect.",
		management:     "Separate the doses; take ibuprofen at least 8 hours before or 30 minutes after aspirin.",
		evidenceSource: "FDA science paper: concomitant ibuprofen and aspirin",
	},
}

// conditionRule flags an ingredient code contraindicated for callers who
// report a matching condition. Condition matching is substring-based over
// the lowercased condition text, so "chronic kidney disease" hits "kidney".
type conditionRule struct {
	code           string
	condition      string
	severity       Severity
	mechanism      string
	management     string
	evidenceSource string
}

var conditionRules = []conditionRule{
	{
		code: "5640", condition: "kidney",
		severity:       SeveritySerious,
		mechanism:      "NSAIDs reduce renal perfusion and can worsen chronic kidney disease.",
		management:     "Avoid NSAIDs; ask the prescriber about a renally safer analgesic.",
		evidenceSource: "FDA label: ibuprofen",
	},
	{
		code: "7258", condition: "kidney",
		severity:       SeveritySerious,
		mechanism:      "NSAIDs reduce renal perfusion and can worsen chronic kidney disease.",
		management:     "Avoid NSAIDs; ask the prescriber about a renally safer analgesic.",
		evidenceSource: "FDA label: naproxen",
	},
	{
		code: "5640", condition: "ulcer",
		severity:       SeveritySerious,
		mechanism:      "NSAIDs injure gastric mucosa and can reactivate peptic ulcer bleeding.",
		management:     "Avoid NSAIDs with an ulcer history unless the prescriber adds gastric protection.",
		evidenceSource: "FDA label: ibuprofen",
	},
	{
		code: "1191", condition: "ulcer",
		severity:       SeveritySerious,
		mechanism:      "Aspirin injures gastric mucosa and can reactivate peptic ulcer bleeding.",
		management:     "Discuss aspirin use with the prescriber before continuing.",
		evidenceSource: "FDA label: aspirin",
	},
	{
		code: "1191", condition: "asthma",
		severity:       SeverityCaution,
		mechanism:      "Aspirin can trigger bronchospasm in aspirin-sensitive asthma.",
		management:     "Watch for wheeze after dosing; stop and seek advice if breathing worsens.",
		evidenceSource: "FDA label: aspirin",
	},
	{
		code: "161", condition: "liver",
		severity:       SeverityCaution,
		mechanism:      "Paracetamol is hepatically cleared and toxic doses are lower in liver disease.",
		management:     "Keep within the reduced daily limit the prescriber set; avoid alcohol.",
		evidenceSource: "FDA label: acetaminophen",
	},
	{
		code: "6809", condition: "kidney",
		severity:       SeveritySerious,
		mechanism:      "Metformin accumulates in renal impairment, raising lactic acidosis risk.",
		management:     "Confirm the dose against current kidney function with the prescriber.",
		evidenceSource: "FDA label: metformin hydrochloride",
	},
}

// pregnancyContraindicated lists ingredient codes unsafe in pregnancy.
var pregnancyContraindicated = map[string]string{
	"11289": "Warfarin crosses the placenta and is teratogenic.",
	"6064":  "Isotretinoin causes severe birth defects.",
	"6851":  "Methotrexate is an abortifacient and teratogen.",
	"29046": "ACE inhibitors cause fetal renal injury in the second and third trimesters.",
	"52175": "Angiotensin receptor blockers cause fetal renal injury in the second and third trimesters.",
	"83367": "Statins are contraindicated in pregnancy.",
	"36567": "Statins are contraindicated in pregnancy.",
	"5640":  "NSAIDs risk premature ductus arteriosus closure in the third trimester.",
	"7258":  "NSAIDs risk premature ductus arteriosus closure in the third trimester.",
}
