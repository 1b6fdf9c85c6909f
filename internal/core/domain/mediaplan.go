package domain

import (
	"fmt"
	"math"
)

const (
	// DefaultCTRPercent applies when no CTR benchmark exists; it yields zero
	// clicks.
	DefaultCTRPercent = 0.0
	// DefaultConversionRate applies when no conversion benchmark exists.
	DefaultConversionRate = 0.01
)

// MediaPlan is the estimate for one budget. CostPerConversion is the
// market benchmark, not budget / conversions.
type MediaPlan struct {
	Budget            float64 `json:"budget"`
	AvgCPC            float64 `json:"avg_cpc"`
	CTRPercent        float64 `json:"ctr_percent"`
	ConversionRate    float64 `json:"conversion_rate"`
	Impressions       float64 `json:"impressions"`
	Clicks            float64 `json:"clicks"`
	Conversions       float64 `json:"conversions"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

// ComputeMediaPlan estimates impressions, clicks and conversions:
//
//	impressions = budget / avgCPC
//	clicks      = impressions * ctrPercent / 100
//	conversions = clicks * conversionRate
//
// Unknown rates fall back to DefaultCTRPercent and DefaultConversionRate.
// Inputs that would make the arithmetic meaningless fail with
// ErrInvalidInput.
func ComputeMediaPlan(budget, avgCPC float64, ctrPercent, conversionRate Optional[float64]) (MediaPlan, error) {
	ctr := ctrPercent.OrElse(DefaultCTRPercent)
	cvr := conversionRate.OrElse(DefaultConversionRate)

	switch {
	case !finite(budget) || budget <= 0:
		return MediaPlan{}, fmt.Errorf("%w: budget must be positive, got %v", ErrInvalidInput, budget)
	case !finite(avgCPC) || avgCPC <= 0:
		return MediaPlan{}, fmt.Errorf("%w: average cpc must be positive, got %v", ErrInvalidInput, avgCPC)
	case !finite(ctr) || ctr < 0 || ctr > 100:
		return MediaPlan{}, fmt.Errorf("%w: ctr must be within [0,100] percent, got %v", ErrInvalidInput, ctr)
	case !finite(cvr) || cvr < 0 || cvr > 1:
		return MediaPlan{}, fmt.Errorf("%w: conversion rate must be within [0,1], got %v", ErrInvalidInput, cvr)
	}

	impressions := budget / avgCPC
	clicks := impressions * (ctr / 100)
	return MediaPlan{
		Budget:         budget,
		AvgCPC:         avgCPC,
		CTRPercent:     ctr,
		ConversionRate: cvr,
		Impressions:    impressions,
		Clicks:         clicks,
		Conversions:    clicks * cvr,
	}, nil
}

// PlanFor runs ComputeMediaPlan with the figures of b and attaches its
// cost-per-conversion benchmark.
func PlanFor(budget float64, b IndustryBenchmark) (MediaPlan, error) {
	plan, err := ComputeMediaPlan(budget, b.AvgCPC, b.CTRPercent, b.ConversionRate)
	if err != nil {
		return MediaPlan{}, fmt.Errorf("%s: %w", b.Industry, err)
	}
	plan.CostPerConversion = b.CostPerConversion
	return plan, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
