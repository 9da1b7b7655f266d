package jobinfra

import (
	"fmt"
	"strings"

	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/lib/pq"
)

// columns maps filterable fields to their qualified column in the jobs table (alias j)
var columns = map[job.Field]string{
	job.FieldTitle:           "j.title",
	job.FieldDescription:     "j.description",
	job.FieldLocation:        "j.location",
	job.FieldJobType:         "j.job_type",
	job.FieldWorkMode:        "j.work_mode",
	job.FieldExperienceLevel: "j.experience_level",
	job.FieldSalaryMin:       "j.salary_min",
	job.FieldSalaryMax:       "j.salary_max",
	job.FieldSkills:          "j.skills",
	job.FieldCreatedAt:       "j.created_at",
	job.FieldIsActive:        "j.is_active",
	job.FieldIsFeatured:      "j.is_featured",
}

// whereBuilder folds conditions into a WHERE clause with positional arguments
type whereBuilder struct {
	args []any
}

func (b *whereBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// compileConditions renders the conjunction of conds and its arguments
func compileConditions(conds []job.Condition) (string, []any, error) {
	b := &whereBuilder{}

	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		clause, err := b.compile(c)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, clause)
	}

	if len(parts) == 0 {
		return "TRUE", nil, nil
	}
	return strings.Join(parts, " AND "), b.args, nil
}

func (b *whereBuilder) compile(c job.Condition) (string, error) {
	if c.IsDisjunction() {
		parts := make([]string, 0, len(c.AnyOf))
		for _, sub := range c.AnyOf {
			clause, err := b.compile(sub)
			if err != nil {
				return "", err
			}
			parts = append(parts, clause)
		}
		return "(" + strings.Join(parts, " OR ") + ")", nil
	}

	col, ok := columns[c.Field]
	if !ok {
		return "", fmt.Errorf("unknown filter field %q", c.Field)
	}

	switch c.Op {
	case job.OpEq:
		return col + " = " + b.bind(c.Value), nil
	case job.OpGTE:
		return col + " >= " + b.bind(c.Value), nil
	case job.OpLTE:
		return col + " <= " + b.bind(c.Value), nil
	case job.OpContains:
		s, ok := c.Value.(string)
		if !ok {
			return "", fmt.Errorf("%s on %s needs a string, got %T", c.Op, c.Field, c.Value)
		}
		return col + " ILIKE " + b.bind("%"+escapeLike(s)+"%"), nil
	case job.OpIn, job.OpContainsAll, job.OpOverlaps:
		values, ok := c.Value.([]string)
		if !ok {
			return "", fmt.Errorf("%s on %s needs []string, got %T", c.Op, c.Field, c.Value)
		}
		arr := b.bind(pq.Array(values)) + "::text[]"
		switch c.Op {
		case job.OpIn:
			return col + " = ANY(" + arr + ")", nil
		case job.OpContainsAll:
			return col + " @> " + arr, nil
		default:
			return col + " && " + arr, nil
		}
	}

	return "", fmt.Errorf("unsupported operator %q", c.Op)
}

// escapeLike neutralizes LIKE metacharacters; backslash is the default escape in PostgreSQL
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
