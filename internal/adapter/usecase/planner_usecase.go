package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"mediaplan/internal/core/content"
	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
)

// PlannerUseCase wires the pure calculators in domain and content to the
// outside collaborators. Failures of country and social media lookups are
// logged and surface as unknown proposal fields.
type PlannerUseCase struct {
	benchmarks domain.BenchmarkTable
	countries  port.CountryDirectory
	social     port.SocialMediaSource
	scraper    port.PageScraper
	summarizer port.Summarizer
	logger     *slog.Logger
}

var _ port.PlannerUseCase = (*PlannerUseCase)(nil)

// Deps lists the collaborators of PlannerUseCase.
type Deps struct {
	Countries  port.CountryDirectory
	Social     port.SocialMediaSource
	Scraper    port.PageScraper
	Summarizer port.Summarizer
}

func NewPlannerUseCase(benchmarks domain.BenchmarkTable, deps Deps, logger *slog.Logger) *PlannerUseCase {
	return &PlannerUseCase{
		benchmarks: benchmarks,
		countries:  deps.Countries,
		social:     deps.Social,
		scraper:    deps.Scraper,
		summarizer: deps.Summarizer,
		logger:     logger,
	}
}

func (u *PlannerUseCase) Industries(_ context.Context) []string {
	return u.benchmarks.Industries()
}

func (u *PlannerUseCase) Countries(ctx context.Context) ([]string, error) {
	catalog, err := u.countries.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: country catalog: %v", domain.ErrUnresolvedLookup, err)
	}
	return catalog.Names(), nil
}

func (u *PlannerUseCase) MediaPlan(_ context.Context, req port.MediaPlanReq) (*port.MediaPlanResp, error) {
	bench, ok := u.benchmarks.Lookup(req.Industry)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownIndustry, req.Industry)
	}
	plan, err := domain.PlanFor(req.Budget, bench)
	if err != nil {
		return nil, err
	}
	return &port.MediaPlanResp{Industry: bench.Industry, Country: req.Country, Plan: plan}, nil
}

func (u *PlannerUseCase) Proposal(ctx context.Context, req port.ProposalReq) (*port.ProposalResp, error) {
	catalog, err := u.countries.Countries(ctx)
	if err != nil {
		u.logger.WarnContext(ctx, "country catalog unavailable", "err", err)
		catalog = domain.NewCountryCatalog(nil)
	}

	var facts domain.CountryFacts
	if _, ok := catalog.Resolve(req.Country); ok {
		facts = u.countryFacts(ctx, req.Country)
	}

	p := domain.BuildProposal(req.Industry, req.Country, catalog, facts, u.benchmarks.Find(req.Industry))
	return &port.ProposalResp{Proposal: p, Charts: p.Charts()}, nil
}

// countryFacts runs both lookups concurrently. Each failure only blanks its
// own field.
func (u *PlannerUseCase) countryFacts(ctx context.Context, country string) domain.CountryFacts {
	var (
		facts domain.CountryFacts
		wg    sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		pop, err := u.countries.Population(ctx, country)
		if err != nil {
			u.logger.WarnContext(ctx, "population lookup failed", "country", country, "err", err)
			return
		}
		facts.TotalPopulation = pop
	}()
	go func() {
		defer wg.Done()
		users, err := u.social.SocialMediaUsers(ctx, country)
		if err != nil {
			u.logger.WarnContext(ctx, "social media lookup failed", "country", country, "err", err)
			return
		}
		facts.SocialMediaUsersMillions = users
	}()
	wg.Wait()
	return facts
}

func (u *PlannerUseCase) Content(ctx context.Context, req port.ContentReq) (*port.ContentResp, error) {
	pageURL := strings.TrimSpace(req.URL)
	if err := validatePageURL(pageURL); err != nil {
		return nil, err
	}

	text, err := u.scraper.ScrapeText(ctx, pageURL)
	if errors.Is(err, domain.ErrInvalidInput) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scrape %s: %v", domain.ErrUnresolvedLookup, pageURL, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no text on %s", domain.ErrUnresolvedLookup, pageURL)
	}

	summary, err := u.summarizer.Summarize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: summarize: %v", domain.ErrUnresolvedLookup, err)
	}
	return u.RenderContent(ctx, summary, req.Country)
}

func (u *PlannerUseCase) RenderContent(_ context.Context, summary, country string) (*port.ContentResp, error) {
	if strings.TrimSpace(summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", domain.ErrInvalidInput)
	}
	ads, err := content.GenerateAds(summary, country)
	if err != nil {
		return nil, err
	}
	blog, err := content.GenerateBlog(summary, country)
	if err != nil {
		return nil, err
	}
	return &port.ContentResp{Summary: summary, Ads: ads, Blog: blog}, nil
}

var errBadURL = errors.New("url must be absolute http or https")

func validatePageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, errBadURL)
	}
	return nil
}
