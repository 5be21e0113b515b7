package gaps

// Severity buckets a knowledge gap by how urgently it needs remediation.
type Severity string

const (
	SeverityCritical  Severity = "critical"
	SeverityImportant Severity = "important"
	SeverityMinor     Severity = "minor"
)

// Analysis decomposes one answer into gaps and strengths. All entries are
// free-text descriptions; list order is detection/priority order.
type Analysis struct {
	CriticalGaps  []string
	ImportantGaps []string
	MinorGaps     []string
	StrengthAreas []string
}

// AllGaps flattens the analysis into severity-tagged gaps, critical first.
func (a *Analysis) AllGaps() []Gap {
	var out []Gap
	for _, g := range a.CriticalGaps {
		out = append(out, Gap{Description: g, Severity: SeverityCritical})
	}
	for _, g := range a.ImportantGaps {
		out = append(out, Gap{Description: g, Severity: SeverityImportant})
	}
	for _, g := range a.MinorGaps {
		out = append(out, Gap{Description: g, Severity: SeverityMinor})
	}
	return out
}

// Gap is one knowledge gap with its severity, the prioritizer's unit of
// work.
type Gap struct {
	Description string
	Severity    Severity
}
