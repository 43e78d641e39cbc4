package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COC_API_KEY", "key")
	t.Setenv("COC_API_BASE", "")
	t.Setenv("COC_HTTP_TIMEOUT", "")
	t.Setenv("COC_REQUESTS_PER_SECOND", "")
	t.Setenv("COC_CONCURRENCY", "")
	load()

	require.NoError(t, Validate())
	assert.Equal(t, "key", CocAPIKey)
	assert.Equal(t, DefaultCocURLBase, CocURLBase)
	assert.Equal(t, DefaultHTTPTimeout, CocHTTPTimeout)
	assert.Equal(t, 0.0, CocRequestsPerSecond)
	assert.Equal(t, 1, CocConcurrency)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COC_API_KEY", "key")
	t.Setenv("COC_API_BASE", "http://localhost:8080/v1/")
	t.Setenv("COC_HTTP_TIMEOUT", "2s")
	t.Setenv("COC_REQUESTS_PER_SECOND", "7.5")
	t.Setenv("COC_CONCURRENCY", "4")
	load()

	require.NoError(t, Validate())
	assert.Equal(t, "http://localhost:8080/v1", CocURLBase)
	assert.Equal(t, 2*time.Second, CocHTTPTimeout)
	assert.Equal(t, 7.5, CocRequestsPerSecond)
	assert.Equal(t, 4, CocConcurrency)
}

func TestValidate_ReportsIssues(t *testing.T) {
	t.Setenv("COC_API_KEY", "")
	t.Setenv("COC_HTTP_TIMEOUT", "soon")
	t.Setenv("COC_CONCURRENCY", "0")
	load()

	err := Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COC_API_KEY")
	assert.Contains(t, err.Error(), "COC_HTTP_TIMEOUT")
	assert.Contains(t, err.Error(), "COC_CONCURRENCY")
	assert.Equal(t, DefaultHTTPTimeout, CocHTTPTimeout)
	assert.Equal(t, 1, CocConcurrency)
}
