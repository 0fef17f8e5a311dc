package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genericPage = `<html>
<head>
<title>Software Engineer - Acme Corp</title>
<meta name="description" content="Build backend services in Go at Acme Corp.">
</head>
<body>
<nav>Home Jobs About Contact</nav>
<div class="cookie-banner">We value your privacy, accept all tracking</div>
<div id="posting">
<h2>About the role</h2>
<p>Acme Corp is hiring a software engineer to build and operate the services behind our hiring platform. You will work with a small product team and own features end to end, from design through deployment and monitoring in production.</p>
<p>We expect strong fundamentals in Go, SQL, and distributed systems, and a habit of writing tests before shipping.</p>
<ul><li>Design APIs</li><li>Review code</li></ul>
</div>
</body>
</html>`

func TestJobTextGenericPage(t *testing.T) {
	got, err := JobText(genericPage)
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "[TITLE] Software Engineer - Acme Corp", lines[0])
	assert.Contains(t, got, "[META] Build backend services in Go at Acme Corp.")
	assert.Contains(t, got, "About the role")
	assert.Contains(t, got, "- Design APIs", "list items keep a dash bullet")
	assert.NotContains(t, got, "accept all tracking", "noise-classed elements are removed")
	assert.NotContains(t, got, "Home Jobs About Contact", "nav chrome is removed")
}

func TestJobTextPortalSelector(t *testing.T) {
	description := strings.Repeat("Responsibilities include building data pipelines and reviewing designs. ", 5)
	markup := `<html><body>
<div id="sidebar">unrelated links</div>
<div id="jobDescriptionText"><p>` + description + `</p></div>
</body></html>`

	got, err := JobText(markup)
	require.NoError(t, err)
	assert.Contains(t, got, "Responsibilities include building data pipelines")
	assert.NotContains(t, got, "unrelated links")
}

func TestJobTextNoContent(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"empty markup", ""},
		{"whitespace only", "   \n\t"},
		{"too little text", "<html><body><p>Short posting.</p></body></html>"},
		{"script only", "<html><body><script>var x = 1;</script></body></html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JobText(tt.markup)
			assert.ErrorIs(t, err, ErrNoContent)
		})
	}
}

func TestJobTextDedupesRepeatedLines(t *testing.T) {
	intro := "<p>Acme Corp is hiring a backend engineer to design, build, and operate the distributed services that power our hiring platform, working closely with product and data teams to ship features end to end and keep them healthy in production.</p>"
	para := "<p>The same promotional line repeated across page sections for emphasis and reach.</p>"
	markup := `<html><body><div>` + intro + strings.Repeat(para, 6) + `</div></body></html>`

	got, err := JobText(markup)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(got, "The same promotional line"), "repeated lines collapse to one")
}

func TestJobTextDropsHiddenElements(t *testing.T) {
	markup := `<html><body><div>
<p>Acme Corp is hiring a backend engineer to design, build, and operate the distributed services that power our hiring platform, working closely with product and data teams to ship features end to end. We offer mentorship and a clear growth path for every engineer.</p>
<p hidden>hidden template text that must not leak</p>
<p aria-hidden="true">decorative screen-reader-hidden text</p>
<p style="display: none">collapsed leftover markup</p>
</div></body></html>`

	got, err := JobText(markup)
	require.NoError(t, err)
	assert.Contains(t, got, "Acme Corp is hiring a backend engineer")
	assert.NotContains(t, got, "hidden template text")
	assert.NotContains(t, got, "decorative screen-reader-hidden text")
	assert.NotContains(t, got, "collapsed leftover markup")
}

func TestDetectPortal(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected Portal
	}{
		{"linkedin marker", `<div class="jobs-details">x</div>`, PortalLinkedIn},
		{"indeed marker", `<div id="jobDescriptionText">x</div>`, PortalIndeed},
		{"naukri marker", `<script src="https://static.naukri.com/app.js"></script>`, PortalNaukri},
		{"wellfound marker", `<a href="https://angel.co/company/x">x</a>`, PortalWellfound},
		{"unknown markup", `<div class="content">x</div>`, PortalGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPortal(tt.markup))
		})
	}
}
