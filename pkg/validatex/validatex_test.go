package validatex

import (
	"testing"

	"github.com/Abraxas-365/jobboard/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string   `json:"name" validate:"required"`
	Mode   string   `json:"mode" validate:"required,oneof=remote onsite hybrid"`
	Salary *int     `json:"salary,omitempty" validate:"omitempty,min=0"`
	Tags   []string `json:"tags" validate:"omitempty,dive,required"`
	Link   *string  `json:"link" validate:"omitempty,url"`
}

func TestStruct_Valid(t *testing.T) {
	salary := 10
	assert.NoError(t, Struct(sample{Name: "a", Mode: "remote", Salary: &salary, Tags: []string{"go"}}))
}

func TestStruct_FieldErrors(t *testing.T) {
	salary := -1
	link := "not a url"
	err := Struct(sample{Mode: "moon", Salary: &salary, Tags: []string{""}, Link: &link})
	require.Error(t, err)

	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, string(CodeValidationFailed), appErr.Code)
	assert.Equal(t, "is required", appErr.Details["name"])
	assert.Equal(t, "must be one of: remote onsite hybrid", appErr.Details["mode"])
	assert.Equal(t, "must be at least 0", appErr.Details["salary"])
	assert.Equal(t, "is required", appErr.Details["tags[0]"])
	assert.Equal(t, "must be a valid URL", appErr.Details["link"])
}

func TestStruct_PgText(t *testing.T) {
	type note struct {
		Body  string   `json:"body" validate:"required,pgtext"`
		Lines []string `json:"lines" validate:"omitempty,dive,pgtext"`
	}

	assert.NoError(t, Struct(note{Body: "naïve café", Lines: []string{"ok"}}))

	err := Struct(note{Body: "bad\xff", Lines: []string{"fine", "nul\x00"}})
	var appErr *errx.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "must be valid UTF-8 without NUL bytes", appErr.Details["body"])
	assert.Equal(t, "must be valid UTF-8 without NUL bytes", appErr.Details["lines[1]"])
}
