package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPage = `<html><head><title>Job</title></head><body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
<h1>Backend Engineer</h1>
<p>We need experience with   Docker and Kubernetes.</p>
</div>
<footer>Copyright</footer>
</body></html>`

func TestExtractText_UsesJobDescriptionContainer(t *testing.T) {
	text, err := ExtractText(jobPage)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Docker and Kubernetes")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "   ", "whitespace runs collapsed")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	text, err := ExtractText("<html><body><p>Plain posting text.</p></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestJobDescription_FetchesAndExtracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPage))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, Options{})
	require.NoError(t, err)
	assert.Contains(t, text, "Docker and Kubernetes")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not a url", Options{})
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
}

func TestJobDescription_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
