package port

import (
	"context"

	"mediaplan/internal/core/domain"
)

// PlannerUseCase defines the operations exposed to the presentation layer.
// This interface is the primary port into the application domain.
type PlannerUseCase interface {
	// Industries returns the industries that have benchmarks.
	Industries(ctx context.Context) []string

	// Countries returns the country display names accepted by Proposal.
	Countries(ctx context.Context) ([]string, error)

	// MediaPlan estimates impressions, clicks and conversions for a budget.
	// It fails with domain.ErrInvalidInput on a non-positive budget or CPC
	// and with domain.ErrUnknownIndustry when no benchmark exists.
	MediaPlan(ctx context.Context, req MediaPlanReq) (*MediaPlanResp, error)

	// Proposal assembles the market overview of an industry in a country.
	// Collaborator failures degrade to unknown fields; it does not fail on
	// missing data.
	Proposal(ctx context.Context, req ProposalReq) (*ProposalResp, error)

	// Content scrapes and summarizes a page, then renders ad copy and a
	// blog post around the summary.
	Content(ctx context.Context, req ContentReq) (*ContentResp, error)

	// RenderContent renders ad copy and a blog post around a given summary.
	RenderContent(ctx context.Context, summary, country string) (*ContentResp, error)
}

type MediaPlanReq struct {
	Industry string  `json:"industry"`
	Country  string  `json:"country"`
	Budget   float64 `json:"budget"`
}

// MediaPlanResp echoes the request next to the computed plan.
type MediaPlanResp struct {
	Industry string           `json:"industry"`
	Country  string           `json:"country"`
	Plan     domain.MediaPlan `json:"plan"`
}

type ProposalReq struct {
	Industry string
	Country  string
}

// ProposalResp carries the proposal and the chart series derived from it.
type ProposalResp struct {
	Proposal domain.Proposal `json:"proposal"`
	Charts   domain.Charts   `json:"charts"`
}

type ContentReq struct {
	URL     string `json:"url"`
	Country string `json:"country"`
}

type ContentResp struct {
	Summary string        `json:"summary"`
	Ads     domain.AdCopy `json:"ads"`
	Blog    string        `json:"blog"`
}
