package service

import (
	"context"
	"fmt"
	"slices"

	"vitrine-backend/internal/domains/employee/model"
)

type ServiceInterface interface {
	ActiveRoster(ctx context.Context) model.Roster
}

type employeeService struct {
	employees []model.Employee
}

func NewEmployeeService(employees []model.Employee) ServiceInterface {
	return &employeeService{employees: slices.Clone(employees)}
}

// ActiveRoster keeps active employees only, in roster order
func (s *employeeService) ActiveRoster(_ context.Context) model.Roster {
	active := make([]model.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if e.Active {
			active = append(active, e)
		}
	}

	label := "Aucun employé actif"
	if len(active) > 0 {
		label = fmt.Sprintf("%d employé(s) actif(s)", len(active))
	}

	return model.Roster{
		Employees:   active,
		ActiveCount: len(active),
		Label:       label,
	}
}
