package model

type Employee struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Roster is the active part of the team
type Roster struct {
	Employees   []Employee `json:"employees"`
	ActiveCount int        `json:"active_count"`
	Label       string     `json:"label"`
}

// DefaultEmployees is the team shown until an HR source exists.
func DefaultEmployees() []Employee {
	return []Employee{
		{ID: 1, Name: "Marie Dupont", Role: "Manager", Active: true},
		{ID: 2, Name: "Jean Martin", Role: "Développeur", Active: true},
		{ID: 3, Name: "Sophie Bernard", Role: "Designer", Active: false},
	}
}
