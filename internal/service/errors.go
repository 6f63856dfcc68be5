package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fhelderls/eventflow-kanban/internal/models"
	"github.com/fhelderls/eventflow-kanban/internal/requirements"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrAllocationNotFound = errors.New("allocation not found")
	ErrTaskNotFound       = errors.New("task not found")
)

// ValidationError is a missing or malformed field on create/update. The
// caller corrects and resubmits; nothing is retried automatically.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports an equipment double-booking: the unit is already held
// by another committed event on the same date.
type ConflictError struct {
	EquipmentName string
	Events        []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"equipment %q is already allocated to another active event on this date: %s",
		e.EquipmentName, strings.Join(e.Events, ", "),
	)
}

// PreconditionsError blocks a lifecycle transition until every listed reason
// is resolved.
type PreconditionsError struct {
	MissingFields     []string
	MissingCategories []requirements.CategoryStatus
	IncompleteTasks   int64
}

func (e *PreconditionsError) Error() string {
	var reasons []string
	if len(e.MissingFields) > 0 {
		reasons = append(reasons, "missing fields: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.MissingCategories) > 0 {
		cats := make([]string, len(e.MissingCategories))
		for i, c := range e.MissingCategories {
			cats[i] = fmt.Sprintf("%s (%d/%d)", c.Category, c.Allocated, c.Required)
		}
		reasons = append(reasons, "missing required equipment: "+strings.Join(cats, ", "))
	}
	if e.IncompleteTasks > 0 {
		reasons = append(reasons, fmt.Sprintf("%d incomplete task(s)", e.IncompleteTasks))
	}
	if len(reasons) == 0 {
		return "transition preconditions not met"
	}
	return "transition blocked: " + strings.Join(reasons, "; ")
}

// InvalidTransitionError is an edge the lifecycle state machine does not have.
type InvalidTransitionError struct {
	From models.EventStatus
	To   models.EventStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid lifecycle transition from %q to %q", e.From, e.To)
}

// ReferentialError blocks deleting an entity still referenced elsewhere.
// Policy: deletes across aggregate boundaries are blocked, never cascaded.
type ReferentialError struct {
	Entity     string
	References int64
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s is still referenced by %d record(s) and cannot be deleted", e.Entity, e.References)
}
