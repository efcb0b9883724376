package analysis_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimguard/internal/analysis"
)

func result(id string, specialties []analysis.Specialty, f *analysis.Findings) analysis.ProviderResult {
	return analysis.ProviderResult{
		Descriptor: analysis.ProviderDescriptor{ID: id, Specialties: specialties},
		Findings:   f,
	}
}

func failedResult(id string, err error) analysis.ProviderResult {
	return analysis.ProviderResult{
		Descriptor: analysis.ProviderDescriptor{ID: id},
		Err:        &analysis.InvocationError{Provider: id, Err: err},
	}
}

func TestMerge_NoSuccessfulProvider(t *testing.T) {
	results := []analysis.ProviderResult{
		failedResult("openai", errors.New("boom")),
		failedResult("claude", errors.New("bust")),
	}

	consensus, err := analysis.Merge(results)
	assert.Nil(t, consensus)

	var nsp *analysis.NoSuccessfulProviderError
	require.ErrorAs(t, err, &nsp)
	assert.Equal(t, 2, nsp.Attempted)
}

func TestMerge_SingleProviderUsesOwnConfidence(t *testing.T) {
	results := []analysis.ProviderResult{
		result("claude", nil, &analysis.Findings{
			DocumentType: "estimate",
			Confidence:   0.91,
		}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Equal(t, 0.91, consensus.Confidence)
	assert.Equal(t, []string{"claude"}, consensus.Providers)
	assert.Empty(t, consensus.Divergences)
}

func TestMerge_SingleProviderWithoutConfidenceGetsDefault(t *testing.T) {
	results := []analysis.ProviderResult{
		result("openai", nil, &analysis.Findings{DocumentType: "receipt"}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultSoloConfidence, consensus.Confidence)
}

func TestMerge_MajorityVoteOnDocumentType(t *testing.T) {
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{DocumentType: "estimate"}),
		result("b", nil, &analysis.Findings{DocumentType: "invoice"}),
		result("c", nil, &analysis.Findings{DocumentType: "estimate"}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Equal(t, "estimate", consensus.Findings.DocumentType)
}

func TestMerge_MajorityTieGoesToFirstSeen(t *testing.T) {
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{Category: "structural"}),
		result("b", nil, &analysis.Findings{Category: "water"}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Equal(t, "structural", consensus.Findings.Category)
}

func TestMerge_DatesUnionSortedAndDeduped(t *testing.T) {
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{Dates: []string{"2025-09-14", "2025-09-12"}}),
		result("b", nil, &analysis.Findings{Dates: []string{"2025-09-12", "2025-09-20"}}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-09-12", "2025-09-14", "2025-09-20"}, consensus.Findings.Dates)
}

func TestMerge_AmountsDedupedByValueAndType(t *testing.T) {
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{Amounts: []analysis.MonetaryAmount{
			{Value: 12500, Type: "claimed"},
			{Value: 1000, Type: "deductible"},
		}}),
		result("b", nil, &analysis.Findings{Amounts: []analysis.MonetaryAmount{
			{Value: 12500, Type: "claimed"},
			{Value: 12500, Type: "estimate"},
		}}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Equal(t, []analysis.MonetaryAmount{
		{Value: 12500, Type: "claimed"},
		{Value: 1000, Type: "deductible"},
		{Value: 12500, Type: "estimate"},
	}, consensus.Findings.Amounts)
}

func TestMerge_EntitiesLastWriteWins(t *testing.T) {
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{Entities: map[string]string{
			"insured": "J. Alvarez", "carrier": "Gulfstream Mutual",
		}}),
		result("b", nil, &analysis.Findings{Entities: map[string]string{
			"insured": "Jorge Alvarez",
		}}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Equal(t, "Jorge Alvarez", consensus.Findings.Entities["insured"])
	assert.Equal(t, "Gulfstream Mutual", consensus.Findings.Entities["carrier"])
}

func TestMerge_SpecialistDamageOverridesVote(t *testing.T) {
	cost := 48000.0
	specialistSpecs := []analysis.Specialty{analysis.SpecialtyAnomalyDetection}

	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{Damage: &analysis.DamageAssessment{Severity: "minor"}}),
		result("grok", specialistSpecs, &analysis.Findings{
			Damage:    &analysis.DamageAssessment{Severity: "severe", EstimatedCost: &cost},
			Anomalies: []string{"date mismatch on estimate"},
		}),
		result("c", nil, &analysis.Findings{
			Damage:    &analysis.DamageAssessment{Severity: "minor"},
			Anomalies: []string{"inflated labor rate"},
		}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)

	require.NotNil(t, consensus.Findings.Damage)
	assert.Equal(t, "severe", consensus.Findings.Damage.Severity)
	require.NotNil(t, consensus.Findings.Damage.EstimatedCost)
	assert.Equal(t, 48000.0, *consensus.Findings.Damage.EstimatedCost)

	// Anomalies come from the specialist verbatim, not the union.
	assert.Equal(t, []string{"date mismatch on estimate"}, consensus.Findings.Anomalies)
}

func TestMerge_NoSpecialistAveragesCostAndVotesSeverity(t *testing.T) {
	costA, costB := 10000.0, 20000.0
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{Damage: &analysis.DamageAssessment{Severity: "moderate", EstimatedCost: &costA}}),
		result("b", nil, &analysis.Findings{Damage: &analysis.DamageAssessment{Severity: "moderate", EstimatedCost: &costB}}),
		result("c", nil, &analysis.Findings{Damage: &analysis.DamageAssessment{Severity: "severe"}}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)

	require.NotNil(t, consensus.Findings.Damage)
	assert.Equal(t, "moderate", consensus.Findings.Damage.Severity)
	require.NotNil(t, consensus.Findings.Damage.EstimatedCost)
	assert.Equal(t, 15000.0, *consensus.Findings.Damage.EstimatedCost)
}

func TestMerge_LongestSuggestedNameWins(t *testing.T) {
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{SuggestedName: "estimate.pdf"}),
		result("b", nil, &analysis.Findings{SuggestedName: "roof-damage-estimate-2025-09.pdf"}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Equal(t, "roof-damage-estimate-2025-09.pdf", consensus.Findings.SuggestedName)
}

func TestMerge_FullAgreementWithSpecialistCapsConfidence(t *testing.T) {
	specs := []analysis.Specialty{analysis.SpecialtyRealTime}
	same := func() *analysis.Findings {
		return &analysis.Findings{
			DocumentType: "damage_report",
			Category:     "structural",
			Dates:        []string{"2025-09-12"},
			Amounts:      []analysis.MonetaryAmount{{Value: 500, Type: "claimed"}},
		}
	}

	results := []analysis.ProviderResult{
		result("grok", specs, same()),
		result("openai", nil, same()),
		result("claude", nil, same()),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)

	// Perfect agreement scores 1.0, specialist bonus pushes past the cap.
	assert.Equal(t, analysis.MaxConfidence, consensus.Confidence)
}

func TestMerge_DisagreementLowersConfidence(t *testing.T) {
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{DocumentType: "estimate", Category: "structural"}),
		result("b", nil, &analysis.Findings{DocumentType: "invoice", Category: "water"}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	assert.Less(t, consensus.Confidence, 0.97)
	assert.Greater(t, consensus.Confidence, 0.0)
}

func TestMerge_RecordsDivergences(t *testing.T) {
	results := []analysis.ProviderResult{
		result("a", nil, &analysis.Findings{DocumentType: "estimate"}),
		result("b", nil, &analysis.Findings{DocumentType: "estimate"}),
		result("c", nil, &analysis.Findings{DocumentType: "invoice"}),
	}

	consensus, err := analysis.Merge(results)
	require.NoError(t, err)
	require.Len(t, consensus.Divergences, 1)

	d := consensus.Divergences[0]
	assert.Equal(t, "c", d.Provider)
	assert.Equal(t, "document_type", d.Field)
	assert.Equal(t, "invoice", d.Reported)
	assert.Equal(t, "estimate", d.Merged)
}

func TestMerge_DeterministicAcrossRuns(t *testing.T) {
	mk := func() []analysis.ProviderResult {
		return []analysis.ProviderResult{
			result("a", nil, &analysis.Findings{
				DocumentType: "estimate",
				Dates:        []string{"2025-09-14", "2025-09-12"},
				Entities:     map[string]string{"insured": "A"},
			}),
			result("b", nil, &analysis.Findings{
				DocumentType: "invoice",
				Dates:        []string{"2025-09-13"},
				Entities:     map[string]string{"insured": "B", "carrier": "C"},
			}),
		}
	}

	first, err := analysis.Merge(mk())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := analysis.Merge(mk())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
