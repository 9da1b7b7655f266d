package jobinfra

import (
	"testing"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/stretchr/testify/assert"
)

func TestFromEntity_NullableColumns(t *testing.T) {
	m := fromEntity(&job.Job{ID: "job-1", EmployerID: "emp-1"})

	assert.False(t, m.SalaryMin.Valid)
	assert.False(t, m.SalaryMax.Valid)
	assert.False(t, m.CompanyID.Valid)
	assert.NotNil(t, m.Skills, "text[] columns are NOT NULL")
	assert.NotNil(t, m.Requirements)
}

func TestToEntity_RestoresOptionalValues(t *testing.T) {
	salary := 90000
	company := kernel.CompanyID("co-9")
	original := &job.Job{
		ID:         "job-1",
		Skills:     []string{"go"},
		SalaryMin:  &salary,
		CompanyID:  &company,
		EmployerID: "emp-1",
	}

	restored := fromEntity(original).toEntity()

	assert.Equal(t, 90000, *restored.SalaryMin)
	assert.Nil(t, restored.SalaryMax)
	assert.Equal(t, company, *restored.CompanyID)
	assert.Equal(t, []string{"go"}, restored.Skills)
}
