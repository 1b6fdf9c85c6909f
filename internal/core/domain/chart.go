package domain

import "fmt"

// Series is one chart worth of labelled values, ready for a front-end.
type Series struct {
	Title  string    `json:"title"`
	Kind   string    `json:"kind"` // pie or bar
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Charts groups the proposal visualisations. A chart is nil when any of
// its values is unknown.
type Charts struct {
	Population  *Series `json:"population,omitempty"`
	SocialMedia *Series `json:"social_media,omitempty"`
	Spend       *Series `json:"spend,omitempty"`
}

// Charts derives chart series from the known fields of p.
func (p Proposal) Charts() Charts {
	var c Charts
	if male, ok := p.MaleCount.Get(); ok {
		if female, ok := p.FemaleCount.Get(); ok {
			c.Population = &Series{
				Title:  fmt.Sprintf("Male:Female Ratio in %s", p.Country),
				Kind:   "pie",
				Labels: []string{"Male", "Female"},
				Values: []float64{float64(male), float64(female)},
			}
		}
	}
	if users, ok := p.ActiveSocialMediaUsersMillions.Get(); ok {
		if nonUsers, ok := p.NonSocialMediaUsers.Get(); ok {
			c.SocialMedia = &Series{
				Title:  fmt.Sprintf("Social Media vs Non-Social Media Users in %s", p.Country),
				Kind:   "pie",
				Labels: []string{"Social Media Users", "Non-Social Media Users"},
				Values: []float64{users * 1e6, nonUsers},
			}
		}
	}
	if spend, ok := p.AverageSpend.Get(); ok {
		if avg, ok := p.IndustryAverageSpend.Get(); ok {
			c.Spend = &Series{
				Title:  fmt.Sprintf("Average Customer Spend in %s vs Industry Average (USD)", p.Country),
				Kind:   "bar",
				Labels: []string{"Country Spend", "Industry Average"},
				Values: []float64{spend, avg},
			}
		}
	}
	return c
}

// AdCopy is the generated ad text for both networks.
type AdCopy struct {
	Google string `json:"google"`
	Meta   string `json:"meta"`
}
