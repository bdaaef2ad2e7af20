package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternship(t *testing.T) {
	details := InternshipDetails{Company: "TechCorp", Position: "Intern"}

	completed := NewInternship(InternshipStatusCompleted, details)
	assert.True(t, completed.Completed())
	assert.Equal(t, "TechCorp", completed.Details.Company)

	// Any other status drops the details entirely.
	for _, status := range []string{"not_completed", "in_progress", "", "Completed", "COMPLETED"} {
		i := NewInternship(status, details)
		assert.False(t, i.Completed(), status)
		assert.Nil(t, i.Details, status)
		assert.Equal(t, status, i.Status)
	}
}

func TestNewCareer(t *testing.T) {
	details := CareerDetails{Company: "DataWorks", Position: "Engineer"}

	employed := NewCareer(CareerStatusEmployed, details)
	assert.True(t, employed.Employed())
	assert.Equal(t, "DataWorks", employed.Details.Company)

	for _, status := range []string{"unemployed", "studying", "", "Employed"} {
		c := NewCareer(status, details)
		assert.False(t, c.Employed(), status)
		assert.Nil(t, c.Details, status)
	}
}

func TestRoleAssignable(t *testing.T) {
	assert.True(t, RoleStudent.Assignable())
	assert.True(t, RoleGraduate.Assignable())
	assert.False(t, RoleUnassigned.Assignable())
	assert.False(t, RoleAdmin.Assignable())
	assert.False(t, Role("instructor").Assignable())
	assert.False(t, Role("Student").Assignable())
}
