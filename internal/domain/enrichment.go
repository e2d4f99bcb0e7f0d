package domain

import "github.com/borjaregueral/wrc-speakers-go/internal/constants"

// CompanyFacts is the payload the enrichment model must return. Keys the
// model omits default to the "Not available" sentinel when applied.
type CompanyFacts struct {
	CompanyType          string `json:"company_type"`
	CompanySize          string `json:"company_size"`
	CompanyHQAddress     string `json:"company_hq_address"`
	CompanyHQCountry     string `json:"company_hq_country"`
	CompanyInternational string `json:"company_international"`
}

func (f *CompanyFacts) ApplyTo(speaker *Speaker) {
	speaker.CompanyType = orNotAvailable(f.CompanyType)
	speaker.CompanySize = orNotAvailable(f.CompanySize)
	speaker.CompanyHQAddress = orNotAvailable(f.CompanyHQAddress)
	speaker.CompanyHQCountry = orNotAvailable(f.CompanyHQCountry)
	speaker.CompanyInternational = orNotAvailable(f.CompanyInternational)
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.SentinelNotAvailable
	}
	return value
}
