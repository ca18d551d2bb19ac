package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"vitrine-backend/internal/domains/employee/model"
)

func TestEmployeeService_ActiveRoster(t *testing.T) {
	roster := NewEmployeeService(model.DefaultEmployees()).ActiveRoster(context.Background())

	assert.Equal(t, 2, roster.ActiveCount)
	assert.Equal(t, "2 employé(s) actif(s)", roster.Label)
	assert.Equal(t, "Marie Dupont", roster.Employees[0].Name)
	assert.Equal(t, "Jean Martin", roster.Employees[1].Name)
}

func TestEmployeeService_NoActiveEmployee(t *testing.T) {
	roster := NewEmployeeService([]model.Employee{{ID: 1, Name: "Absent", Active: false}}).ActiveRoster(context.Background())

	assert.Zero(t, roster.ActiveCount)
	assert.Empty(t, roster.Employees)
	assert.Equal(t, "Aucun employé actif", roster.Label)
}
