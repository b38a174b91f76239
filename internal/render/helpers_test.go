package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tickerlens/tickerlens/internal/models"
)

// analysisFromJSON builds an Analysis the same way production code does:
// through JSON decoding, so custom unmarshalers run.
func analysisFromJSON(t *testing.T, raw string) *models.Analysis {
	t.Helper()
	var a models.Analysis
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	return &a
}

func momentumFromJSON(t *testing.T, raw string) *models.Momentum {
	t.Helper()
	a := analysisFromJSON(t, `{"momentum_analysis":`+raw+`}`)
	require.NotNil(t, a.Momentum)
	return a.Momentum
}
