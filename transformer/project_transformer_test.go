package transformer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/trackforge/database/models"
	"github.com/l3montree-dev/trackforge/dtos"
	"github.com/l3montree-dev/trackforge/shared"
	"github.com/stretchr/testify/assert"
)

func TestFilterValidAPIKeySubmissions(t *testing.T) {
	projectID := uuid.New()

	t.Run("should trim names and keys", func(t *testing.T) {
		keys := FilterValidAPIKeySubmissions([]dtos.APIKeySubmission{
			{Name: "  ci  ", Key: "  secret-1  "},
		}, projectID)

		assert.Len(t, keys, 1)
		assert.Equal(t, "ci", keys[0].Name)
		assert.Equal(t, "secret-1", keys[0].Key.Reveal())
		assert.Equal(t, projectID, keys[0].ProjectID)
	})

	t.Run("should drop entries without a name or without a key", func(t *testing.T) {
		keys := FilterValidAPIKeySubmissions([]dtos.APIKeySubmission{
			{Name: "", Key: "secret-1"},
			{Name: "ci", Key: "   "},
			{Name: "  ", Key: ""},
			{Name: "deploy", Key: "secret-2"},
		}, projectID)

		assert.Len(t, keys, 1)
		assert.Equal(t, "deploy", keys[0].Name)
	})

	t.Run("should return an empty slice for no submissions", func(t *testing.T) {
		keys := FilterValidAPIKeySubmissions(nil, projectID)
		assert.Empty(t, keys)
	})
}

func TestApplyProjectUpdateRequestToModel(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	project := models.Project{
		Name:   "old",
		Leader: "alice",
		UserID: "user-1",
	}

	ApplyProjectUpdateRequestToModel(dtos.ProjectUpdateRequest{
		Name:        "new",
		Description: shared.Ptr("rewritten"),
		StartDate:   &start,
		GithubLink:  "https://github.com/example/new",
		Leader:      "bob",
	}, &project)

	assert.Equal(t, "new", project.Name)
	assert.Equal(t, "rewritten", *project.Description)
	assert.Equal(t, start, *project.StartDate)
	assert.Equal(t, "bob", project.Leader)
	// ownership is never transferred by an update
	assert.Equal(t, "user-1", project.UserID)
}

func TestProjectCreateRequestToModel(t *testing.T) {
	project := ProjectCreateRequestToModel(dtos.ProjectCreateRequest{
		Name:       "tooling",
		GithubLink: "https://github.com/example/tooling",
		Leader:     "alice",
	}, "user-1")

	assert.Equal(t, "user-1", project.UserID)
	assert.Equal(t, "tooling", project.Name)
	assert.Nil(t, project.Description)
}
