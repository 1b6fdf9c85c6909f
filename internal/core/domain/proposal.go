package domain

import "math"

// Fixed population split. It is applied to every country alike and is a
// known approximation.
const (
	MaleShare   = 0.51
	FemaleShare = 0.49
)

// Proposal is the market overview of an industry in a country. Every
// derived field is computed or marked unknown on its own.
type Proposal struct {
	Industry                       string            `json:"industry"`
	Country                        string            `json:"country"`
	CountryCode                    Optional[string]  `json:"country_code"`
	TotalPopulation                Optional[int64]   `json:"total_population"`
	MaleCount                      Optional[int64]   `json:"male_count"`
	FemaleCount                    Optional[int64]   `json:"female_count"`
	ActiveSocialMediaUsersMillions Optional[float64] `json:"active_social_media_users_millions"`
	NonSocialMediaUsers            Optional[float64] `json:"non_social_media_users"`
	AverageSpend                   Optional[float64] `json:"average_spend"`
	IndustryAverageSpend           Optional[float64] `json:"industry_average_spend"`
	SpendDelta                     Optional[float64] `json:"spend_delta"`
}

// BuildProposal assembles a proposal from independently sourced facts.
// A country missing from catalog is a terminal outcome: every derived field
// is unknown. It never fails.
func BuildProposal(industry, country string, catalog CountryCatalog, facts CountryFacts, bench Optional[IndustryBenchmark]) Proposal {
	p := Proposal{Industry: industry, Country: country}

	code, ok := catalog.Resolve(country)
	if !ok {
		return p
	}
	p.CountryCode = Known(code)

	p.TotalPopulation = facts.TotalPopulation
	p.MaleCount = Map(facts.TotalPopulation, func(total int64) int64 {
		return int64(math.Round(float64(total) * MaleShare))
	})
	p.FemaleCount = Map(facts.TotalPopulation, func(total int64) int64 {
		return int64(math.Round(float64(total) * FemaleShare))
	})

	p.ActiveSocialMediaUsersMillions = facts.SocialMediaUsersMillions
	p.NonSocialMediaUsers = Map2(facts.TotalPopulation, facts.SocialMediaUsersMillions, func(total int64, users float64) float64 {
		return float64(total) - users*1e6
	})

	p.AverageSpend = flatMap(bench, func(b IndustryBenchmark) Optional[float64] {
		return b.AverageSpend(country)
	})
	p.IndustryAverageSpend = flatMap(bench, func(b IndustryBenchmark) Optional[float64] {
		return b.IndustryAverageSpend()
	})
	p.SpendDelta = Map2(p.AverageSpend, p.IndustryAverageSpend, func(avg, industryAvg float64) float64 {
		return avg - industryAvg
	})
	return p
}

func flatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	v, ok := o.Get()
	if !ok {
		return Unknown[U]()
	}
	return fn(v)
}
