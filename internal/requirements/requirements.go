// Package requirements holds the static table of equipment categories every
// event must have allocated, and the pure evaluation over an event's
// allocations used both by the API report and the lifecycle gate.
package requirements

import "github.com/fhelderls/eventflow-kanban/internal/models"

type Rule struct {
	Category    string `json:"category"`
	Label       string `json:"label"`
	MinQuantity int    `json:"min_quantity"`
}

// Required is the fixed category checklist for a draft-beer setup.
var Required = []Rule{
	{Category: "chopeira", Label: "Chopeira", MinQuantity: 1},
	{Category: "cilindro_co2", Label: "Cilindro de CO2", MinQuantity: 1},
	{Category: "manometro", Label: "Manômetro", MinQuantity: 1},
	{Category: "pingadeira", Label: "Pingadeira", MinQuantity: 1},
	{Category: "extratora", Label: "Extratora", MinQuantity: 1},
}

type CategoryStatus struct {
	Category  string `json:"category"`
	Label     string `json:"label"`
	Required  int    `json:"required"`
	Allocated int    `json:"allocated"`
	Satisfied bool   `json:"satisfied"`
	Shortfall int    `json:"shortfall,omitempty"`
}

type Report struct {
	Categories   []CategoryStatus `json:"categories"`
	AllSatisfied bool             `json:"all_satisfied"`
	Missing      []CategoryStatus `json:"missing,omitempty"`
}

// Evaluate computes the requirement report for one event's allocations. Each
// allocation must carry its preloaded Equipment so the category is known.
// Returned allocations no longer count toward a category.
func Evaluate(rules []Rule, allocations []models.EventAllocation) Report {
	counts := make(map[string]int, len(rules))
	for _, a := range allocations {
		if a.Status == models.AllocationReturned || a.Equipment == nil {
			continue
		}
		counts[a.Equipment.Category] += a.Quantity
	}

	report := Report{AllSatisfied: true}
	for _, rule := range rules {
		status := CategoryStatus{
			Category:  rule.Category,
			Label:     rule.Label,
			Required:  rule.MinQuantity,
			Allocated: counts[rule.Category],
		}
		status.Satisfied = status.Allocated >= status.Required
		if !status.Satisfied {
			status.Shortfall = status.Required - status.Allocated
			report.AllSatisfied = false
			report.Missing = append(report.Missing, status)
		}
		report.Categories = append(report.Categories, status)
	}
	return report
}
