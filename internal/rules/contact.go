package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/jobshield/jobshield/internal/types"
)

// freeEmailDomains are consumer mail providers a legitimate employer
// would not normally use as a hiring contact.
var freeEmailDomains = []string{
	"gmail.com",
	"yahoo.com",
	"yahoo.in",
	"hotmail.com",
	"outlook.com",
	"rediffmail.com",
	"protonmail.com",
	"aol.com",
}

var messengerOnlyMarkers = []string{
	"whatsapp",
	"telegram",
	"dm us",
	"direct message",
}

// minDomainMatchNameLen keeps the domain-mismatch check away from very
// short company names, where substring matching is meaningless.
const minDomainMatchNameLen = 4

// contactTrust evaluates how trustworthy the posting's contact channels
// look. Tiers are mutually exclusive and checked in descending
// severity: multiple free-provider addresses, one free-provider
// address, messenger-only contact, phone-only contact, a corporate
// domain unrelated to the stated company, and no contact channel at
// all.
func contactTrust(jd *types.Context) types.RuleResult {
	lower := strings.ToLower(jd.RawText)

	genericHits := 0
	for _, email := range jd.Emails {
		if isFreeProviderEmail(email) {
			genericHits++
		}
	}

	switch {
	case genericHits >= 2:
		return types.RuleResult{
			Score:  0.8,
			Reason: "Multiple generic email contacts used instead of company domain",
		}
	case genericHits == 1:
		return types.RuleResult{
			Score:  0.6,
			Reason: "Generic email contact used instead of company domain",
		}
	}

	if len(jd.Emails) == 0 {
		for _, marker := range messengerOnlyMarkers {
			if strings.Contains(lower, marker) {
				return types.RuleResult{
					Score:  0.7,
					Reason: "Contact offered only through informal messaging channels",
				}
			}
		}
		if len(jd.PhoneNumbers) > 0 {
			return types.RuleResult{
				Score:  0.5,
				Reason: "Phone number is the only contact channel, no email provided",
			}
		}
	}

	if mismatch := domainMismatch(jd); mismatch {
		return types.RuleResult{
			Score:  0.45,
			Reason: "Contact email domain does not match the stated company name",
		}
	}

	if len(jd.Emails) == 0 && len(jd.PhoneNumbers) == 0 {
		return types.RuleResult{
			Score:  0.3,
			Reason: "Job post provides no contact channel at all",
		}
	}

	return types.RuleResult{}
}

func isFreeProviderEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, free := range freeEmailDomains {
		if domain == free {
			return true
		}
	}
	return false
}

// domainMismatch reports a corporate email domain that shares no token
// with the parsed company name. Short names are exempt: the substring
// heuristic produces noise below a few characters.
func domainMismatch(jd *types.Context) bool {
	name := strings.ToLower(strings.TrimSpace(jd.Company.Name))
	if utf8.RuneCountInString(name) < minDomainMatchNameLen {
		return false
	}

	nameTokens := []string{}
	for _, tok := range strings.Fields(name) {
		tok = strings.Trim(tok, ".,()")
		if utf8.RuneCountInString(tok) >= minDomainMatchNameLen {
			nameTokens = append(nameTokens, tok)
		}
	}
	if len(nameTokens) == 0 {
		return false
	}

	for _, email := range jd.Emails {
		if isFreeProviderEmail(email) {
			continue
		}
		at := strings.LastIndex(email, "@")
		if at < 0 {
			continue
		}
		domain := strings.ToLower(email[at+1:])
		matched := false
		for _, tok := range nameTokens {
			if strings.Contains(domain, tok) {
				matched = true
				break
			}
		}
		if !matched {
			return true
		}
	}
	return false
}
