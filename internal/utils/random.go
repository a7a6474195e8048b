package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/emsys-dev/employee-manager/backend/internal/domain"
)

var commonFirstNames = []string{
	"Ada", "Alan", "Grace", "Linus", "Margaret", "Dennis", "Barbara", "Ken",
	"Donald", "Radia", "Edsger", "Frances", "John", "Katherine", "Niklaus",
}

var commonLastNames = []string{
	"Lovelace", "Turing", "Hopper", "Torvalds", "Hamilton", "Ritchie",
	"Liskov", "Thompson", "Knuth", "Perlman", "Dijkstra", "Allen", "Backus",
}

var departments = []string{
	"Engineering", "R&D", "Sales", "Marketing", "Finance", "HR", "Support",
}

var positions = []string{
	"Engineer", "Senior Engineer", "Analyst", "Manager", "Designer",
	"Accountant", "Consultant",
}

// GenerateRandomEmployee builds an employee with a random plausible profile.
// The numeric email suffix keeps the unique constraint from tripping when the
// same name comes up twice.
func GenerateRandomEmployee() *domain.Employee {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]

	email := fmt.Sprintf("%s.%s.%04d@example.com",
		strings.ToLower(firstName), strings.ToLower(lastName), rand.Intn(10000))

	return &domain.Employee{
		Name:       firstName + " " + lastName,
		Email:      email,
		Position:   positions[rand.Intn(len(positions))],
		Department: departments[rand.Intn(len(departments))],
		Salary:     float64(rand.Intn(90000) + 30000),
	}
}
