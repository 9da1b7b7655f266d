package applicationsrv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/Abraxas-365/jobboard/pkg/validatex"
	"github.com/Abraxas-365/jobboard/recruitment/application"
	"github.com/Abraxas-365/jobboard/recruitment/job"
	"github.com/Abraxas-365/jobboard/recruitment/recruitmenttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	clock    = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	employer = recruitmenttest.Employer("emp-1")
	seeker   = recruitmenttest.Jobseeker("seeker-1")
)

type fixture struct {
	svc       *ApplicationService
	store     *recruitmenttest.Store
	publisher *recruitmenttest.Publisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := recruitmenttest.NewStore()
	publisher := &recruitmenttest.Publisher{}
	svc := NewApplicationService(store.Applications(), store.Jobs(), publisher)
	svc.now = func() time.Time { return clock }

	store.SeedJob(recruitmenttest.ActiveJob("job-1", employer.UserID, clock.Add(-24*time.Hour)))
	return fixture{svc: svc, store: store, publisher: publisher}
}

func assertCode(t *testing.T, err error, code errx.Code) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, string(code)), "want %s, got %v", code, err)
}

func strPtr(s string) *string { return &s }

// ============================================================================
// Apply
// ============================================================================

func TestApply(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Apply(context.Background(), "job-1", application.ApplyRequest{
		CoverLetter: strPtr("  I build Go services  "),
		ResumeURL:   strPtr("https://cdn.example.com/cv.pdf"),
	}, seeker)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, application.ApplicationStatusPending, resp.Status)
	assert.Equal(t, seeker.UserID, resp.UserID)
	assert.Equal(t, "I build Go services", *resp.CoverLetter)
	assert.Nil(t, resp.VideoResumeURL)
	assert.Equal(t, clock, resp.CreatedAt)

	events := f.publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, application.EventSubmitted, events[0].Type)
	assert.Equal(t, resp.ID, events[0].ApplicationID)
	assert.Equal(t, employer.UserID, events[0].EmployerID)
	assert.Equal(t, "Backend Engineer", events[0].JobTitle)
}

func TestApply_OnlyJobseekers(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Apply(context.Background(), "job-1", application.ApplyRequest{}, employer)
	assertCode(t, err, application.CodeOnlyJobseekersCanApply)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))
}

func TestApply_JobNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Apply(context.Background(), "missing", application.ApplyRequest{}, seeker)
	assertCode(t, err, job.CodeJobNotFound)
}

func TestApply_InactiveJobIsInvalidState(t *testing.T) {
	f := newFixture(t)
	closed := recruitmenttest.ActiveJob("closed", employer.UserID, clock)
	closed.IsActive = false
	f.store.SeedJob(closed)

	_, err := f.svc.Apply(context.Background(), "closed", application.ApplyRequest{}, seeker)
	assertCode(t, err, application.CodeJobInactive)
	assert.True(t, errx.IsType(err, errx.TypeBusiness))
	assert.Zero(t, f.store.ApplicationCount())
}

func TestApply_DeadlinePassed(t *testing.T) {
	f := newFixture(t)
	expired := recruitmenttest.ActiveJob("expired", employer.UserID, clock.Add(-72*time.Hour))
	deadline := clock.Add(-time.Hour)
	expired.ApplicationDeadline = &deadline
	f.store.SeedJob(expired)

	_, err := f.svc.Apply(context.Background(), "expired", application.ApplyRequest{}, seeker)
	assertCode(t, err, application.CodeDeadlinePassed)
}

func TestApply_InvalidPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Apply(context.Background(), "job-1", application.ApplyRequest{ResumeURL: strPtr("not a url")}, seeker)
	assertCode(t, err, validatex.CodeValidationFailed)
}

func TestApply_Duplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Apply(ctx, "job-1", application.ApplyRequest{}, seeker)
	require.NoError(t, err)

	_, err = f.svc.Apply(ctx, "job-1", application.ApplyRequest{}, seeker)
	assertCode(t, err, application.CodeApplicationAlreadyExists)
	assert.True(t, errx.IsType(err, errx.TypeConflict))
	assert.Equal(t, 1, f.store.ApplicationCount())
}

func TestApply_ConcurrentDuplicatesOneWins(t *testing.T) {
	f := newFixture(t)

	const attempts = 8
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, attempts)
	)
	for i := 0; i < attempts; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = f.svc.Apply(context.Background(), "job-1", application.ApplyRequest{}, seeker)
		}()
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errx.IsCode(err, string(application.CodeApplicationAlreadyExists)), "unexpected error %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, f.store.ApplicationCount())
}

func TestApply_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture(t)
	f.publisher.Err = errors.New("redis down")

	resp, err := f.svc.Apply(context.Background(), "job-1", application.ApplyRequest{}, seeker)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 1, f.store.ApplicationCount())
}

func TestApply_NilPublisher(t *testing.T) {
	store := recruitmenttest.NewStore()
	store.SeedJob(recruitmenttest.ActiveJob("job-1", employer.UserID, clock))
	svc := NewApplicationService(store.Applications(), store.Jobs(), nil)

	_, err := svc.Apply(context.Background(), "job-1", application.ApplyRequest{}, seeker)
	assert.NoError(t, err)
}

func TestApply_PersistenceFault(t *testing.T) {
	f := newFixture(t)
	f.store.Fault = errors.New("disk full")

	_, err := f.svc.Apply(context.Background(), "job-1", application.ApplyRequest{}, seeker)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeInternal))
	assert.Empty(t, f.publisher.Events())
}

// ============================================================================
// Listing
// ============================================================================

func TestListMine_NewestFirst(t *testing.T) {
	f := newFixture(t)
	f.store.SeedJob(recruitmenttest.ActiveJob("job-2", employer.UserID, clock))
	f.store.SeedApplication(application.Application{ID: "old", UserID: seeker.UserID, JobID: "job-1", CreatedAt: clock.Add(-time.Hour)})
	f.store.SeedApplication(application.Application{ID: "new", UserID: seeker.UserID, JobID: "job-2", CreatedAt: clock})
	f.store.SeedApplication(application.Application{ID: "other", UserID: "seeker-2", JobID: "job-1", CreatedAt: clock})

	resp, err := f.svc.ListMine(context.Background(), seeker)
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "new", resp.Applications[0].ID.String())
	assert.Equal(t, "old", resp.Applications[1].ID.String())
}

func TestListMine_Empty(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.ListMine(context.Background(), employer)
	require.NoError(t, err)
	assert.NotNil(t, resp.Applications)
	assert.Zero(t, resp.Total)
}

func TestListForJob(t *testing.T) {
	f := newFixture(t)
	f.store.SeedApplication(application.Application{ID: "a1", UserID: "s1", JobID: "job-1", CreatedAt: clock.Add(-time.Minute)})
	f.store.SeedApplication(application.Application{ID: "a2", UserID: "s2", JobID: "job-1", CreatedAt: clock})
	ctx := context.Background()

	resp, err := f.svc.ListForJob(ctx, "job-1", employer)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "a2", resp.Applications[0].ID.String())

	_, err = f.svc.ListForJob(ctx, "job-1", recruitmenttest.Employer("emp-2"))
	assertCode(t, err, job.CodeNotOwner)

	_, err = f.svc.ListForJob(ctx, "job-1", seeker)
	assertCode(t, err, job.CodeInsufficientPermissions)

	_, err = f.svc.ListForJob(ctx, "missing", employer)
	assertCode(t, err, job.CodeJobNotFound)
}
