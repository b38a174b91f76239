// Package models defines the data contracts for TickerLens
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Signal is the closed polarity enumeration for agent signals. Raw payload
// values are resolved to one of these at the ingestion boundary; anything
// unrecognized collapses to neutral.
type Signal string

const (
	SignalBullish Signal = "bullish"
	SignalBearish Signal = "bearish"
	SignalNeutral Signal = "neutral"
)

// UnmarshalJSON normalizes the signal value case-insensitively.
func (s *Signal) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = SignalNeutral
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bullish":
		*s = SignalBullish
	case "bearish":
		*s = SignalBearish
	default:
		*s = SignalNeutral
	}
	return nil
}

// FlexFloat handles numeric payload fields that may arrive as a number, a
// formatted string ("$95.00", "27%", "N/A", "Unknown"), or some other shape
// entirely. Display fields must tolerate absence by substituting zero rather
// than failing the render, so unparseable values decode to 0.
type FlexFloat float64

// UnmarshalJSON decodes a number-or-string value.
// Percent-suffixed strings are treated as percentages and scaled to the 0-1
// fraction the renderers expect ("27%" -> 0.27).
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "N/A") || strings.EqualFold(s, "Unknown") {
			*f = 0
			return nil
		}
		percent := strings.HasSuffix(s, "%")
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		if percent {
			num /= 100
		}
		*f = FlexFloat(num)
		return nil
	}

	// Object or array in a numeric slot; render as zero rather than abort.
	*f = 0
	return nil
}

// Float64 returns the value as a plain float64.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// AnalysisResponse is the envelope returned by the upstream analysis engine.
// Success is the discriminator: false implies Error carries the reason, and no
// nested field may be trusted before Success is checked.
type AnalysisResponse struct {
	Success         bool             `json:"success"`
	Error           string           `json:"error,omitempty"`
	CurrentAnalysis *CurrentAnalysis `json:"current_analysis,omitempty"`
}

// CurrentAnalysis wraps the analysis detail. The wrapper and the detail can
// each be independently missing, and the two absences surface as distinct
// validation outcomes.
type CurrentAnalysis struct {
	Analysis *Analysis `json:"analysis,omitempty"`
}

// Analysis is the trading decision produced by the upstream agent pipeline.
type Analysis struct {
	Action          string           `json:"action"`
	Quantity        FlexFloat        `json:"quantity"`
	Confidence      FlexFloat        `json:"confidence"` // 0-1 fraction, scaled at render time only
	PriceTargets    PriceTargets     `json:"price_targets"`
	OptionsStrategy *OptionsStrategy `json:"options_strategy,omitempty"`
	AgentSignals    []AgentSignal    `json:"agent_signals,omitempty"`
	Reasoning       *Reasoning       `json:"reasoning,omitempty"`
	Momentum        *Momentum        `json:"momentum_analysis,omitempty"`
}

// Signals returns the per-agent signal list, falling back to the reasoning
// block when the top-level list is absent.
func (a *Analysis) Signals() []AgentSignal {
	if len(a.AgentSignals) > 0 {
		return a.AgentSignals
	}
	if a.Reasoning != nil {
		return a.Reasoning.AgentSignals
	}
	return nil
}

// PriceTargets carries the four price levels of the decision panel.
type PriceTargets struct {
	CurrentPrice FlexFloat `json:"current_price"`
	FairValue    FlexFloat `json:"fair_value"`
	BuyTarget    FlexFloat `json:"buy_target"`
	SellTarget   FlexFloat `json:"sell_target"`
}

// AgentSignal is one agent's vote with its confidence.
type AgentSignal struct {
	Agent      string    `json:"agent"`
	Signal     Signal    `json:"signal"`
	Confidence FlexFloat `json:"confidence"`
}

// Reasoning carries the free-text explanation blocks of the decision.
type Reasoning struct {
	Summary          string        `json:"summary,omitempty"`
	PriceAnalysis    string        `json:"price_analysis,omitempty"`
	TechnicalContext string        `json:"technical_context,omitempty"`
	RiskFactors      string        `json:"risk_factors,omitempty"`
	OptionsContext   string        `json:"options_context,omitempty"`
	AgentSignals     []AgentSignal `json:"agent_signals,omitempty"`
}

// MomentumIndicator is the engine's per-indicator reading for price and
// volume momentum: a polarity signal plus a value already expressed in
// percent units ("4.25" means 4.25%, never a 0-1 fraction). The engine emits
// {"signal": ..., "value": "<number string>"}; the value may also arrive as a
// cleaned float, and older payloads carry a bare number with no signal.
type MomentumIndicator struct {
	Signal Signal
	Value  float64
}

// UnmarshalJSON accepts the object form or a bare numeric value.
func (mi *MomentumIndicator) UnmarshalJSON(data []byte) error {
	var obj struct {
		Signal *Signal         `json:"signal"`
		Value  json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.Signal != nil {
			mi.Signal = *obj.Signal
		}
		mi.Value = indicatorValue(obj.Value)
		return nil
	}
	mi.Signal = ""
	mi.Value = indicatorValue(data)
	return nil
}

// indicatorValue decodes an indicator value without rescaling: these are
// quoted in percent units already, so "4.25" and "4.25%" both mean 4.25%.
func indicatorValue(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		return num
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" || strings.EqualFold(s, "N/A") || strings.EqualFold(s, "Unknown") {
		return 0
	}
	num, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return num
}

// Momentum is the short-term momentum block. A nil *Momentum means the section
// was absent from the payload; a present-but-empty object ({}) is a distinct
// state reported by Empty(). Individual numeric fields are not guarded once the
// object is non-empty — that matches the upstream contract.
type Momentum struct {
	PriceMomentum   MomentumIndicator `json:"price_momentum"`
	VolumeMomentum  MomentumIndicator `json:"volume_momentum"`
	RSI             FlexFloat         `json:"rsi"`
	CurrentPrice    FlexFloat         `json:"current_price"`
	TargetPrice     FlexFloat         `json:"target_price"`
	SupportLevel    FlexFloat         `json:"support_level"`
	ResistanceLevel FlexFloat         `json:"resistance_level"`
	StopLoss        FlexFloat         `json:"stop_loss"`
	Signal          Signal            `json:"signal"`
	Timeframe       string            `json:"timeframe"`
	Confidence      FlexFloat         `json:"confidence"`
	Reasoning       []string          `json:"reasoning"`

	fieldCount int
}

// UnmarshalJSON records how many keys the object carried so that "present but
// empty" can be told apart from "present with data".
func (m *Momentum) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("momentum_analysis is not an object: %w", err)
	}

	type alias Momentum
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.fieldCount = len(keys)
	*m = Momentum(a)
	return nil
}

// Empty reports whether the momentum object was present but carried no fields.
func (m *Momentum) Empty() bool {
	return m.fieldCount == 0
}

// StrategySentinels are the upstream literals meaning "no strategy to show".
// The engine emits both spellings depending on which path produced the result.
var StrategySentinels = []string{
	"No strategy recommended",
	"No options strategy recommended",
}

// OptionsStrategy is the options advisor's recommendation.
type OptionsStrategy struct {
	Strategy       string          `json:"strategy"`
	Rationale      string          `json:"rationale"`
	RiskProfile    string          `json:"risk_profile"`
	Implementation *Implementation `json:"implementation,omitempty"`
}

// Recommended reports whether the strategy carries renderable details.
// The sentinel strategy values mean "do not render strategy details" and are
// treated identically to an absent options_strategy object.
func (o *OptionsStrategy) Recommended() bool {
	if o == nil {
		return false
	}
	for _, sentinel := range StrategySentinels {
		if o.Strategy == sentinel {
			return false
		}
	}
	return o.Strategy != ""
}

// Implementation holds the strike/expiration/premium detail of a strategy.
// Single-value fields coerce to numbers defaulting to zero; tiered fields
// default to the literal "N/A". The asymmetry is intentional upstream behavior.
type Implementation struct {
	Strikes               TierValues `json:"strikes"`
	Expirations           TierValues `json:"expirations"`
	Premium               Premium    `json:"premium"`
	RecommendedStrike     FlexFloat  `json:"recommended_strike"`
	RecommendedExpiration FlexFloat  `json:"recommended_expiration"`
	MaxProfit             FlexFloat  `json:"max_profit"`
	MaxLoss               FlexFloat  `json:"max_loss"`
}

// Premium holds the premium guidance for a strategy.
type Premium struct {
	TargetPremium FlexFloat `json:"target_premium"`
	MaxPremium    FlexFloat `json:"max_premium"`
}

// TierValues is a conservative/moderate/aggressive breakdown.
type TierValues struct {
	Conservative TierValue `json:"conservative"`
	Moderate     TierValue `json:"moderate"`
	Aggressive   TierValue `json:"aggressive"`
}

// TierValue keeps the raw display value of one tier. Strikes arrive as numbers
// and expirations as free-text timeframes, so the value is held verbatim.
type TierValue string

// UnmarshalJSON accepts either a string or a number.
func (t *TierValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TierValue(s)
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*t = TierValue(strconv.FormatFloat(num, 'f', -1, 64))
		return nil
	}
	*t = ""
	return nil
}

// Display returns the tier value, or "N/A" when absent.
func (t TierValue) Display() string {
	if t == "" {
		return "N/A"
	}
	return string(t)
}
