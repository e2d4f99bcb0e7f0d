package prompt

import "fmt"

// CompanyFactsVars holds variables for the company research prompt template
type CompanyFactsVars struct {
	Company string
	Speaker string
	Role    string
}

// BuildCompanyFactsPrompt builds the enrichment prompt. The model must
// answer with a JSON object carrying exactly the five company-fact keys.
func BuildCompanyFactsPrompt(vars CompanyFactsVars) string {
	return fmt.Sprintf(`You are a business research assistant. Research the company below and report what you know about it.

## Company:
"%s"

## Context:
This company employs "%s" (%s), a speaker at World Retail Congress, a global retail industry conference.

## Response Format (JSON ONLY):

{
  "company_type": "Industry/sector, e.g. 'Retailer - Fashion', 'Technology Vendor', 'Consultancy'",
  "company_size": "Employee count or bracket, e.g. '10,000+', '50-200'",
  "company_hq_address": "Headquarters address, as specific as known",
  "company_hq_country": "Headquarters country",
  "company_international": "'Yes' or 'No', whether the company operates in more than one country"
}

**Rules**:
- Respond with the JSON object only, no surrounding text
- Use exactly the five keys above, all values as strings
- If a fact is unknown, use "Not available" for that key
- Never invent specifics; prefer "Not available" over guesses`,
		vars.Company, vars.Speaker, vars.Role)
}
