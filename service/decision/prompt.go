package decision

import (
	"fmt"
	"strings"

	"github.com/carelane/medreview/model/review"
)

// Prompt renders the confirmation text shown to the responder. The treatment
// name, the risk level and the mandatory-confirmation statement are
// contractual content; exact wording is presentation.
func Prompt(treatment *review.Treatment, patient *review.Patient, responder string) string {
	risk := strings.ToUpper(string(treatment.RiskLevel))
	var b strings.Builder
	b.WriteString("MEDICAL TREATMENT CONFIRMATION REQUIRED\n\n")
	if patient != nil && patient.Name != "" {
		fmt.Fprintf(&b, "Patient: %s\n\n", patient.Name)
	}
	b.WriteString("RECOMMENDED TREATMENT:\n")
	fmt.Fprintf(&b, "- Name: %s\n", treatment.Name)
	fmt.Fprintf(&b, "- Risk Level: %s\n\n", risk)
	fmt.Fprintf(&b, "THIS TREATMENT REQUIRES EXPLICIT CONFIRMATION DUE TO ITS %s RISK LEVEL.\n\n", risk)
	fmt.Fprintf(&b, "%s, do you confirm this treatment? (yes/no):", responder)
	return b.String()
}
