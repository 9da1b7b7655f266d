package jobinfra

import (
	"testing"
	"time"

	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileConditions_EmptyFilter(t *testing.T) {
	where, args, err := compileConditions(job.BuildConditions(job.Filter{}, time.Now()))
	require.NoError(t, err)

	assert.Equal(t, "j.is_active = $1", where)
	assert.Equal(t, []any{true}, args)
}

func TestCompileConditions_SearchAndSkills(t *testing.T) {
	conds := job.BuildConditions(job.Filter{
		Search: "go dev",
		Skills: []string{"go", "sql"},
	}, time.Now())

	where, args, err := compileConditions(conds)
	require.NoError(t, err)

	assert.Equal(t,
		"j.is_active = $1 AND "+
			"(j.title ILIKE $2 OR j.description ILIKE $3 OR j.location ILIKE $4 OR j.skills && $5::text[]) AND "+
			"j.skills @> $6::text[]",
		where)
	require.Len(t, args, 6)
	assert.Equal(t, "%go dev%", args[1])
	assert.Equal(t, pq.Array([]string{"go", "dev"}), args[4])
	assert.Equal(t, pq.Array([]string{"go", "sql"}), args[5])
}

func TestCompileConditions_EveryDimension(t *testing.T) {
	now := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	minSalary, maxSalary, days := 70000, 150000, 7
	featured := true

	conds := job.BuildConditions(job.Filter{
		Location:         "pune",
		JobTypes:         []job.JobType{job.JobTypeFullTime, job.JobTypeContract},
		WorkModes:        []job.WorkMode{job.WorkModeRemote},
		ExperienceLevels: []job.ExperienceLevel{job.ExperienceMid},
		SalaryMin:        &minSalary,
		SalaryMax:        &maxSalary,
		PostedWithinDays: &days,
		IsFeatured:       &featured,
	}, now)

	where, args, err := compileConditions(conds)
	require.NoError(t, err)

	assert.Equal(t,
		"j.is_active = $1 AND j.location ILIKE $2 AND "+
			"j.job_type = ANY($3::text[]) AND j.work_mode = ANY($4::text[]) AND j.experience_level = ANY($5::text[]) AND "+
			"j.salary_min >= $6 AND j.salary_max <= $7 AND j.created_at >= $8 AND j.is_featured = $9",
		where)
	assert.Equal(t, pq.Array([]string{"full-time", "contract"}), args[2])
	assert.Equal(t, 70000, args[5])
	assert.Equal(t, 150000, args[6])
	assert.Equal(t, now.AddDate(0, 0, -7), args[7])
	assert.Equal(t, true, args[8])
}

func TestCompileConditions_EscapesLikeMetacharacters(t *testing.T) {
	_, args, err := compileConditions([]job.Condition{
		job.Where(job.FieldLocation, job.OpContains, `100%_remote\`),
	})
	require.NoError(t, err)
	assert.Equal(t, `%100\%\_remote\\%`, args[0])
}

func TestCompileConditions_Errors(t *testing.T) {
	_, _, err := compileConditions([]job.Condition{job.Where("salary_currency", job.OpEq, "INR")})
	assert.Error(t, err)

	_, _, err = compileConditions([]job.Condition{job.Where(job.FieldSkills, job.OpContainsAll, "go")})
	assert.Error(t, err)

	_, _, err = compileConditions([]job.Condition{job.Where(job.FieldTitle, "regex", "go")})
	assert.Error(t, err)
}
