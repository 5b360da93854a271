package risk

import (
	"fmt"
	"io"
	"strings"
)

// RenderText 把报告渲染为纯文本
func RenderText(w io.Writer, a *Assessment) error {
	var b strings.Builder

	b.WriteString("Today's Health Report\n")
	b.WriteString("=====================\n")
	fmt.Fprintf(&b, "Overall Health Score: %d/100\n\n", a.OverallScore)

	b.WriteString("Risks\n")
	for _, r := range a.Risks {
		fmt.Fprintf(&b, "  %-24s %3d%%  %s\n", r.Label, r.Percent, r.Tier)
	}

	if a.Escalation {
		fmt.Fprintf(&b, "\n!! %s\n", EscalationMessage)
	}

	b.WriteString("\nExercise\n")
	fmt.Fprintf(&b, "  %s\n", a.ExerciseFeedback)

	if len(a.Insights) > 0 {
		b.WriteString("\nInsights\n")
		for _, s := range a.Insights {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	if len(a.Advisories) > 0 {
		b.WriteString("\nRecommendations\n")
		for _, adv := range a.Advisories {
			fmt.Fprintf(&b, "  - %s: %d%% risk. %s\n", adv.Label, adv.Percent, adv.Text)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", a.Disclaimer)

	_, err := io.WriteString(w, b.String())
	return err
}
