package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fhelderls/eventflow-kanban/internal/models"
)

func allocation(category string, quantity int, status models.AllocationStatus) models.EventAllocation {
	return models.EventAllocation{
		Quantity:  quantity,
		Status:    status,
		Equipment: &models.Equipment{Category: category},
	}
}

func TestEvaluate_EmptyLedger(t *testing.T) {
	report := Evaluate(Required, nil)

	assert.False(t, report.AllSatisfied)
	assert.Len(t, report.Categories, 5)
	assert.Len(t, report.Missing, 5)

	for _, missing := range report.Missing {
		assert.Equal(t, 0, missing.Allocated)
		assert.Equal(t, 1, missing.Shortfall)
	}
}

func TestEvaluate_SingleCategorySatisfied(t *testing.T) {
	allocations := []models.EventAllocation{
		allocation("chopeira", 1, models.AllocationAllocated),
	}

	report := Evaluate(Required, allocations)

	assert.False(t, report.AllSatisfied)
	assert.Len(t, report.Missing, 4)

	chopeira := report.Categories[0]
	assert.Equal(t, "chopeira", chopeira.Category)
	assert.Equal(t, 1, chopeira.Allocated)
	assert.Equal(t, 1, chopeira.Required)
	assert.True(t, chopeira.Satisfied)
}

func TestEvaluate_AllSatisfied(t *testing.T) {
	var allocations []models.EventAllocation
	for _, rule := range Required {
		allocations = append(allocations, allocation(rule.Category, rule.MinQuantity, models.AllocationAllocated))
	}

	report := Evaluate(Required, allocations)

	assert.True(t, report.AllSatisfied)
	assert.Empty(t, report.Missing)
}

func TestEvaluate_ReturnedAllocationsDoNotCount(t *testing.T) {
	allocations := []models.EventAllocation{
		allocation("chopeira", 1, models.AllocationReturned),
	}

	report := Evaluate(Required, allocations)

	assert.False(t, report.AllSatisfied)
	assert.Equal(t, 0, report.Categories[0].Allocated)
	assert.False(t, report.Categories[0].Satisfied)
}

func TestEvaluate_RemovingSoleSatisfierFlipsAggregate(t *testing.T) {
	var allocations []models.EventAllocation
	for _, rule := range Required {
		allocations = append(allocations, allocation(rule.Category, rule.MinQuantity, models.AllocationInUse))
	}
	assert.True(t, Evaluate(Required, allocations).AllSatisfied)

	// Drop the extratora allocation; the aggregate must flip.
	report := Evaluate(Required, allocations[:len(allocations)-1])
	assert.False(t, report.AllSatisfied)
	assert.Len(t, report.Missing, 1)
	assert.Equal(t, "extratora", report.Missing[0].Category)
	assert.Equal(t, 1, report.Missing[0].Shortfall)
}

func TestEvaluate_QuantityWeighted(t *testing.T) {
	rules := []Rule{{Category: "cilindro_co2", Label: "Cilindro de CO2", MinQuantity: 3}}
	allocations := []models.EventAllocation{
		allocation("cilindro_co2", 2, models.AllocationAllocated),
	}

	report := Evaluate(rules, allocations)
	assert.False(t, report.AllSatisfied)
	assert.Equal(t, 2, report.Categories[0].Allocated)
	assert.Equal(t, 1, report.Categories[0].Shortfall)

	allocations = append(allocations, allocation("cilindro_co2", 1, models.AllocationInUse))
	assert.True(t, Evaluate(rules, allocations).AllSatisfied)
}

func TestEvaluate_UnknownCategoryIgnored(t *testing.T) {
	allocations := []models.EventAllocation{
		allocation("mesa", 10, models.AllocationAllocated),
	}

	report := Evaluate(Required, allocations)
	assert.False(t, report.AllSatisfied)
	assert.Len(t, report.Missing, 5)
}
