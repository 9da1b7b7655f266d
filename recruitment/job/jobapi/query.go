package jobapi

import (
	"strconv"
	"strings"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/gofiber/fiber/v2"
)

// parseListJobsRequest reads the filter and window from the query string.
// Multi-valued filters accept repeated keys and comma separated lists.
func parseListJobsRequest(c *fiber.Ctx) (job.ListJobsRequest, error) {
	f := job.Filter{
		Search:           strings.TrimSpace(c.Query("search")),
		Location:         strings.TrimSpace(c.Query("location")),
		JobTypes:         toEnums[job.JobType](multiQuery(c, "job_type")),
		WorkModes:        toEnums[job.WorkMode](multiQuery(c, "work_mode")),
		ExperienceLevels: toEnums[job.ExperienceLevel](multiQuery(c, "experience_level")),
		Skills:           multiQuery(c, "skills"),
	}

	var err error
	if f.SalaryMin, err = optionalInt(c, "salary_min"); err != nil {
		return job.ListJobsRequest{}, err
	}
	if f.SalaryMax, err = optionalInt(c, "salary_max"); err != nil {
		return job.ListJobsRequest{}, err
	}
	if f.PostedWithinDays, err = optionalInt(c, "posted_within_days"); err != nil {
		return job.ListJobsRequest{}, err
	}
	if f.IsFeatured, err = optionalBool(c, "is_featured"); err != nil {
		return job.ListJobsRequest{}, err
	}

	limit, err := windowInt(c, "limit", kernel.DefaultLimit)
	if err != nil {
		return job.ListJobsRequest{}, err
	}
	offset, err := windowInt(c, "offset", 0)
	if err != nil {
		return job.ListJobsRequest{}, err
	}

	return job.ListJobsRequest{
		Filter:     f,
		Pagination: kernel.OffsetPagination{Limit: limit, Offset: offset},
	}, nil
}

func multiQuery(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func toEnums[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, 0, len(values))
	for _, v := range values {
		out = append(out, T(v))
	}
	return out
}

func optionalInt(c *fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, job.ErrInvalidFilter().WithDetail(key, "must be an integer")
	}
	return &n, nil
}

func optionalBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, job.ErrInvalidFilter().WithDetail(key, "must be true or false")
	}
	return &b, nil
}

func windowInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, job.ErrInvalidPagination().WithDetail(key, "must be an integer")
	}
	return n, nil
}
