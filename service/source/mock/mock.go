// Package mock provides a canned treatment plan for demos and tests.
package mock

import (
	"context"

	"github.com/carelane/medreview/model/review"
	"github.com/carelane/medreview/service/source"
)

type service struct{}

// New returns a source with a fixed two-treatment plan: one low-risk
// medication and one high-risk procedure.
func New() source.Service {
	return &service{}
}

func (s *service) Plan(_ context.Context) (*review.Patient, []*review.Treatment, error) {
	patient := &review.Patient{
		ID:          "P12345",
		Name:        "John Doe",
		Age:         67,
		Conditions:  []string{"Type 2 Diabetes", "Coronary Artery Disease", "Hypertension"},
		Allergies:   []string{"Penicillin", "Sulfa drugs"},
		Medications: []string{"Lisinopril", "Atorvastatin", "Aspirin"},
		History:     "History of myocardial infarction 5 years ago. Appendectomy in 2010.",
	}
	treatments := []*review.Treatment{
		{
			ID:          "TRT-001",
			Category:    review.CategoryMedication,
			Name:        "Metformin 500mg",
			Description: "Oral medication taken twice daily",
			Rationale:   "First-line treatment for Type 2 Diabetes with good efficacy and safety profile",
			RiskLevel:   review.RiskLow,
			Alternatives: []string{
				"Lifestyle modifications",
				"Sulfonylureas",
			},
			Interactions: []string{
				"May interact with certain contrast dyes used in medical tests",
			},
		},
		{
			ID:          "TRT-002",
			Category:    review.CategoryProcedure,
			Name:        "Coronary Angioplasty",
			Description: "Minimally invasive procedure to widen narrowed coronary arteries",
			Rationale:   "Patient has significant coronary artery blockage causing angina symptoms",
			RiskLevel:   review.RiskHigh,
			Alternatives: []string{
				"Medical management with anti-anginal medications",
				"Coronary artery bypass graft",
			},
			Interactions: []string{
				"Risk increases with current anticoagulant therapy",
			},
		},
	}
	return patient, treatments, nil
}
