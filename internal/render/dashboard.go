package render

import (
	"github.com/tickerlens/tickerlens/internal/models"
)

// Element identifiers of the five dashboard mount points. These are the
// renderer's whole contract with the host page.
const (
	ContainerDecision           = "decision-pricing"
	ContainerOptionsStrategy    = "options-strategy"
	ContainerAgentReasoning     = "agent-reasoning"
	ContainerMomentum           = "momentum-analysis"
	ContainerShortTermReasoning = "short-term-reasoning"
)

// PayloadStatus is the outcome of validating a successful engine envelope.
type PayloadStatus string

const (
	PayloadOK                    PayloadStatus = "ok"
	PayloadMissingAnalysis       PayloadStatus = "missing_analysis"
	PayloadMissingAnalysisDetail PayloadStatus = "missing_analysis_detail"
)

// The two missing-field outcomes carry distinct messages so that "no analysis
// object at all" can be told apart from "analysis object lacking its detail".
const (
	MsgMissingAnalysis       = "No analysis data available. Please try again."
	MsgMissingAnalysisDetail = "Analysis data is incomplete. Please try again."
)

// Message returns the human-readable error for a non-ok status.
func (s PayloadStatus) Message() string {
	switch s {
	case PayloadMissingAnalysis:
		return MsgMissingAnalysis
	case PayloadMissingAnalysisDetail:
		return MsgMissingAnalysisDetail
	}
	return ""
}

// ValidatePayload checks that the mandatory nested fields of a successful
// envelope are present before any renderer touches it.
func ValidatePayload(resp *models.AnalysisResponse) (*models.Analysis, PayloadStatus) {
	if resp == nil || resp.CurrentAnalysis == nil {
		return nil, PayloadMissingAnalysis
	}
	if resp.CurrentAnalysis.Analysis == nil {
		return nil, PayloadMissingAnalysisDetail
	}
	return resp.CurrentAnalysis.Analysis, PayloadOK
}

// Dashboard renders all five dashboard sections for a validated analysis.
// Each section renderer is pure and order-insensitive; this is the single
// composition step that pairs every fragment with its mount point.
func Dashboard(a *models.Analysis, reg *AssetRegistry) map[string]string {
	return map[string]string{
		ContainerDecision:           DecisionSection(a, reg),
		ContainerOptionsStrategy:    OptionsSection(a.OptionsStrategy, reg),
		ContainerAgentReasoning:     SignalsSection(a, reg),
		ContainerMomentum:           MomentumSection(a.Momentum, reg),
		ContainerShortTermReasoning: MomentumReasoningSection(a.Momentum),
	}
}
