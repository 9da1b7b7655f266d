package job

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Filter is the search request over active jobs. Zero values mean "no constraint",
// including a salary bound or posted_within_days of 0.
type Filter struct {
	Search           string            `json:"search,omitempty"`
	Location         string            `json:"location,omitempty"`
	JobTypes         []JobType         `json:"job_type,omitempty"`
	WorkModes        []WorkMode        `json:"work_mode,omitempty"`
	ExperienceLevels []ExperienceLevel `json:"experience_level,omitempty"`
	SalaryMin        *int              `json:"salary_min,omitempty"`
	SalaryMax        *int              `json:"salary_max,omitempty"`
	Skills           []string          `json:"skills,omitempty"`
	PostedWithinDays *int              `json:"posted_within_days,omitempty"`
	IsFeatured       *bool             `json:"is_featured,omitempty"`
}

// Validate rejects unknown enum values, impossible ranges and text the store cannot hold
func (f Filter) Validate() error {
	if !IsStorableText(f.Search) {
		return ErrInvalidFilter().WithDetail("search", "must be valid UTF-8 without NUL bytes")
	}
	if !IsStorableText(f.Location) {
		return ErrInvalidFilter().WithDetail("location", "must be valid UTF-8 without NUL bytes")
	}
	for _, skill := range f.Skills {
		if !IsStorableText(skill) {
			return ErrInvalidFilter().WithDetail("skills", "must be valid UTF-8 without NUL bytes")
		}
	}
	for _, t := range f.JobTypes {
		if !t.IsValid() {
			return ErrInvalidFilter().WithDetail("job_type", string(t))
		}
	}
	for _, m := range f.WorkModes {
		if !m.IsValid() {
			return ErrInvalidFilter().WithDetail("work_mode", string(m))
		}
	}
	for _, l := range f.ExperienceLevels {
		if !l.IsValid() {
			return ErrInvalidFilter().WithDetail("experience_level", string(l))
		}
	}
	if err := checkBound("salary_min", f.SalaryMin, MaxSalary); err != nil {
		return err
	}
	if err := checkBound("salary_max", f.SalaryMax, MaxSalary); err != nil {
		return err
	}
	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMax > 0 && *f.SalaryMin > *f.SalaryMax {
		return ErrInvalidFilter().WithDetail("salary_min", "must not exceed salary_max")
	}
	if err := checkBound("posted_within_days", f.PostedWithinDays, MaxPostedWithinDays); err != nil {
		return err
	}
	return nil
}

func checkBound(name string, v *int, limit int) error {
	switch {
	case v == nil:
		return nil
	case *v < 0:
		return ErrInvalidFilter().WithDetail(name, "must not be negative")
	case *v > limit:
		return ErrInvalidFilter().WithDetail(name, fmt.Sprintf("must be at most %d", limit))
	}
	return nil
}

// IsStorableText reports whether s is valid UTF-8 free of NUL bytes, which PostgreSQL text rejects
func IsStorableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// ============================================================================
// Conditions
// ============================================================================

// Field names a filterable job attribute
type Field string

const (
	FieldTitle           Field = "title"
	FieldDescription     Field = "description"
	FieldLocation        Field = "location"
	FieldJobType         Field = "job_type"
	FieldWorkMode        Field = "work_mode"
	FieldExperienceLevel Field = "experience_level"
	FieldSalaryMin       Field = "salary_min"
	FieldSalaryMax       Field = "salary_max"
	FieldSkills          Field = "skills"
	FieldCreatedAt       Field = "created_at"
	FieldIsActive        Field = "is_active"
	FieldIsFeatured      Field = "is_featured"
)

// Operator is how a field is compared against the condition value
type Operator string

const (
	OpEq          Operator = "eq"           // equality
	OpIn          Operator = "in"           // value is one of []string
	OpContains    Operator = "contains"     // case-insensitive substring
	OpGTE         Operator = "gte"          // NULL never matches
	OpLTE         Operator = "lte"          // NULL never matches
	OpContainsAll Operator = "contains_all" // list holds every element of []string
	OpOverlaps    Operator = "overlaps"     // list holds at least one element of []string
)

// Condition is a single predicate on a job field, or a disjunction when AnyOf is set.
// A list of conditions is a conjunction.
type Condition struct {
	Field Field
	Op    Operator
	Value any
	AnyOf []Condition
}

// Where builds a field predicate
func Where(field Field, op Operator, value any) Condition {
	return Condition{Field: field, Op: op, Value: value}
}

// AnyOf builds a disjunction
func AnyOf(conds ...Condition) Condition {
	return Condition{AnyOf: conds}
}

// IsDisjunction reports whether the condition is an OR group
func (c Condition) IsDisjunction() bool {
	return len(c.AnyOf) > 0
}

// BuildConditions turns a filter into the predicates a search runs with.
// The first condition is always is_active = true.
func BuildConditions(f Filter, now time.Time) []Condition {
	conds := []Condition{Where(FieldIsActive, OpEq, true)}

	// search is broad: any text field, or any single token naming a skill
	if search := strings.TrimSpace(f.Search); search != "" {
		conds = append(conds, AnyOf(
			Where(FieldTitle, OpContains, search),
			Where(FieldDescription, OpContains, search),
			Where(FieldLocation, OpContains, search),
			Where(FieldSkills, OpOverlaps, strings.Fields(search)),
		))
	}

	if location := strings.TrimSpace(f.Location); location != "" {
		conds = append(conds, Where(FieldLocation, OpContains, location))
	}

	if len(f.JobTypes) > 0 {
		conds = append(conds, Where(FieldJobType, OpIn, toStrings(f.JobTypes)))
	}
	if len(f.WorkModes) > 0 {
		conds = append(conds, Where(FieldWorkMode, OpIn, toStrings(f.WorkModes)))
	}
	if len(f.ExperienceLevels) > 0 {
		conds = append(conds, Where(FieldExperienceLevel, OpIn, toStrings(f.ExperienceLevels)))
	}

	if f.SalaryMin != nil && *f.SalaryMin > 0 {
		conds = append(conds, Where(FieldSalaryMin, OpGTE, *f.SalaryMin))
	}
	if f.SalaryMax != nil && *f.SalaryMax > 0 {
		conds = append(conds, Where(FieldSalaryMax, OpLTE, *f.SalaryMax))
	}

	// skills is strict: every requested skill must be listed
	if skills := cleanList(f.Skills); len(skills) > 0 {
		conds = append(conds, Where(FieldSkills, OpContainsAll, skills))
	}

	if f.PostedWithinDays != nil && *f.PostedWithinDays > 0 {
		conds = append(conds, Where(FieldCreatedAt, OpGTE, now.AddDate(0, 0, -*f.PostedWithinDays)))
	}

	if f.IsFeatured != nil {
		conds = append(conds, Where(FieldIsFeatured, OpEq, *f.IsFeatured))
	}

	return conds
}

// ============================================================================
// In-memory evaluation
// ============================================================================

// MatchAll reports whether j satisfies every condition
func MatchAll(conds []Condition, j *Job) bool {
	for _, c := range conds {
		if !c.Match(j) {
			return false
		}
	}
	return true
}

// Match evaluates the condition against j with the same semantics the SQL adapter uses
func (c Condition) Match(j *Job) bool {
	if c.IsDisjunction() {
		for _, sub := range c.AnyOf {
			if sub.Match(j) {
				return true
			}
		}
		return false
	}

	v := fieldValue(j, c.Field)
	if v == nil {
		return false
	}

	switch c.Op {
	case OpEq:
		if _, isList := v.([]string); isList {
			return false
		}
		return v == c.Value
	case OpIn:
		s, ok := v.(string)
		values, _ := c.Value.([]string)
		return ok && slices.Contains(values, s)
	case OpContains:
		s, ok := v.(string)
		sub, _ := c.Value.(string)
		return ok && strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	case OpGTE:
		n, ok := compare(v, c.Value)
		return ok && n >= 0
	case OpLTE:
		n, ok := compare(v, c.Value)
		return ok && n <= 0
	case OpContainsAll:
		have, _ := v.([]string)
		want, _ := c.Value.([]string)
		for _, w := range want {
			if !slices.Contains(have, w) {
				return false
			}
		}
		return true
	case OpOverlaps:
		have, _ := v.([]string)
		want, _ := c.Value.([]string)
		for _, w := range want {
			if slices.Contains(have, w) {
				return true
			}
		}
		return false
	}
	return false
}

func fieldValue(j *Job, f Field) any {
	switch f {
	case FieldTitle:
		return j.Title
	case FieldDescription:
		return j.Description
	case FieldLocation:
		return j.Location
	case FieldJobType:
		return string(j.JobType)
	case FieldWorkMode:
		return string(j.WorkMode)
	case FieldExperienceLevel:
		return string(j.ExperienceLevel)
	case FieldSalaryMin:
		if j.SalaryMin == nil {
			return nil
		}
		return *j.SalaryMin
	case FieldSalaryMax:
		if j.SalaryMax == nil {
			return nil
		}
		return *j.SalaryMax
	case FieldSkills:
		return j.Skills
	case FieldCreatedAt:
		return j.CreatedAt
	case FieldIsActive:
		return j.IsActive
	case FieldIsFeatured:
		return j.IsFeatured
	}
	return nil
}

func compare(v, operand any) (int, bool) {
	switch a := v.(type) {
	case int:
		b, ok := operand.(int)
		return cmp.Compare(a, b), ok
	case time.Time:
		b, ok := operand.(time.Time)
		return a.Compare(b), ok
	}
	return 0, false
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// cleanList trims entries and drops blanks and duplicates, keeping order
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
