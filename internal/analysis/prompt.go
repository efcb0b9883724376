package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// BuildClaimDocumentPrompt returns the extraction instruction sent to every
// provider. Context flags are embedded in sorted key order so the prompt for
// a given request is deterministic.
func BuildClaimDocumentPrompt(documentType string, contextFlags map[string]string) string {
	if documentType == "" {
		documentType = "insurance claim"
	}

	var b strings.Builder
	b.WriteString(`You are an insurance-claim document analysis assistant. Analyze the provided ` + documentType + ` document and extract ALL findings into the following JSON structure.

IMPORTANT INSTRUCTIONS:
- Normalize all dates to ISO format (YYYY-MM-DD). Strip timestamps and annotations.
- Report every monetary amount you find, each labeled with its type (e.g. "claimed", "deductible", "estimate", "paid").
- Report named entities (policyholder, insurer, adjuster, contractor, property address) as a flat map.
- If the document shows property damage, assess its severity as one of: minor, moderate, severe, total_loss.
- List anything inconsistent, altered, or unusual about the document under "anomalies".

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation.

The JSON object must follow this schema:
{
  "document_type": "",
  "category": "",
  "dates": [""],
  "amounts": [{"value": 0, "type": ""}],
  "entities": {"": ""},
  "damage_assessment": {"severity": "", "description": "", "estimated_cost": 0},
  "anomalies": [""],
  "contextual": {"": ""},
  "suggested_name": "",
  "confidence": 0.0
}

"confidence" is your overall confidence in the extraction, between 0.0 and 1.0.
If a field is not present in the document, use an empty string for text, 0 for numbers, and omit optional objects.`)

	if len(contextFlags) > 0 {
		keys := make([]string, 0, len(contextFlags))
		for k := range contextFlags {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\n\nCLAIM CONTEXT:")
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\n- %s: %s", k, contextFlags[k]))
		}
	}

	return b.String()
}
