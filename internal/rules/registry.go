package rules

// Registry returns the default rule set. Order is deliberate: rules are
// grouped by theme so the aggregated reasons read naturally.
func Registry() []Rule {
	return defaultRegistry
}

var defaultRegistry = []Rule{
	// Urgency / psychological manipulation
	{Name: "urgent-language", Theme: "urgency", Check: urgentLanguage},
	{Name: "urgency-density", Theme: "urgency", Check: urgencyDensity},

	// Compensation integrity
	{Name: "unrealistic-salary", Theme: "compensation", Check: unrealisticSalary},
	{Name: "role-salary-mismatch", Theme: "compensation", Check: roleSalaryMismatch},

	// Identity / legitimacy
	{Name: "missing-company-identity", Theme: "identity", Check: missingCompanyIdentity},
	{Name: "contact-trust", Theme: "identity", Check: contactTrust},

	// Content credibility
	{Name: "generic-job-title", Theme: "content", Check: genericJobTitle},
	{Name: "hiring-process-absence", Theme: "content", Check: hiringProcessAbsence},
	{Name: "over-promising", Theme: "content", Check: overPromising},
	{Name: "language-inconsistency", Theme: "content", Check: languageInconsistency},

	// Behavioural / suspicious funnel
	{Name: "suspicious-application-flow", Theme: "behavioural", Check: suspiciousApplicationFlow},

	// Structural / duplication patterns
	{Name: "copy-paste-posting", Theme: "structural", Check: copyPastePosting},
}
