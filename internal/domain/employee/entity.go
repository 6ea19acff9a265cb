package employee

import "time"

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	PhotoURL   *string   `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SuggestedDepartments is the fixed suggestion list offered by the UI.
// Department itself stays free text.
var SuggestedDepartments = []string{
	"Comercial",
	"Administrativo",
	"Financeiro",
	"Operacional",
	"RH",
	"TI",
}
