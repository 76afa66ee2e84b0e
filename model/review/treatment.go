package review

// Category groups treatments by the kind of intervention they represent.
type Category string

const (
	CategoryMedication Category = "medication"
	CategoryProcedure  Category = "procedure"
	CategoryTherapy    Category = "therapy"
	CategorySurgery    Category = "surgery"
	CategoryLifestyle  Category = "lifestyle"
)

// Treatment represents a single proposed intervention under review.
type Treatment struct {
	ID           string    `json:"id" yaml:"id"`
	Category     Category  `json:"category" yaml:"category"`
	Name         string    `json:"name" yaml:"name"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	Rationale    string    `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	RiskLevel    RiskLevel `json:"riskLevel" yaml:"riskLevel"`
	Alternatives []string  `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Interactions []string  `json:"interactions,omitempty" yaml:"interactions,omitempty"`

	Approval ApprovalRecord `json:"approval" yaml:"approval"`
}

// Patient captures the subject of the treatment plan. The review core never
// interprets these fields; they feed the confirmation prompt and audit trail.
type Patient struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Age         int      `json:"age,omitempty" yaml:"age,omitempty"`
	Conditions  []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Allergies   []string `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	Medications []string `json:"medications,omitempty" yaml:"medications,omitempty"`
	History     string   `json:"history,omitempty" yaml:"history,omitempty"`
}
