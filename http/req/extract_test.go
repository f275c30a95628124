package req_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/qparams"
	"github.com/xy-planning-network/qparams/http/req"
)

func newRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func requireInvalidParams(t *testing.T, err error, reason error, param string) {
	t.Helper()

	var ipe *req.InvalidParamsError
	require.ErrorIs(t, err, reason)
	require.ErrorIs(t, err, qparams.ErrNotValid)
	require.ErrorAs(t, err, &ipe)
	require.Equal(t, param, ipe.Param)
}

func TestExtract(t *testing.T) {
	for _, tc := range []struct {
		name     string
		target   string
		specs    []string
		expected req.Values
	}{
		{"No-Specifiers", "/", nil, req.Values{}},
		{"String", "/?name=value", []string{"name"}, req.Values{"name": "value"}},
		{"Optional-Absent", "/", []string{"x?"}, req.Values{"x": nil}},
		{"Optional-Present", "/?x=1", []string{"x?"}, req.Values{"x": "1"}},
		{"Empty-String", "/?x=", []string{"x"}, req.Values{"x": ""}},
		{"Number", "/?count=42", []string{"n:count"}, req.Values{"count": float64(42)}},
		{"Number-Empty", "/?count=", []string{"n:count"}, req.Values{"count": float64(0)}},
		{"Number-Optional-Absent", "/", []string{"n:count?"}, req.Values{"count": nil}},
		{"Bool-Flag", "/?verbose", []string{"b:verbose"}, req.Values{"verbose": true}},
		{"Bool-Flag-Equals", "/?verbose=", []string{"b:verbose"}, req.Values{"verbose": true}},
		{"Bool-Absent", "/", []string{"b:verbose"}, req.Values{"verbose": false}},
		{"Bool-Optional-Absent", "/", []string{"b:verbose?"}, req.Values{"verbose": false}},
		{"First-Occurrence", "/?a=1&a=2", []string{"a"}, req.Values{"a": "1"}},
		{"Decoded", "/?q=hello%20world+%26more", []string{"q"}, req.Values{"q": "hello world &more"}},
		{"Untrimmed", "/?q=%20padded%20", []string{"q"}, req.Values{"q": " padded "}},
		{"Unknown-Params-Ignored", "/?a=1&b=2", []string{"a"}, req.Values{"a": "1"}},
		{"Bad-Escape-Kept", "/?q=100%&b=1", []string{"q", "b"}, req.Values{"q": "100%", "b": "1"}},
		{"Bad-Escape-Hex", "/?q=%zz", []string{"q"}, req.Values{"q": "%zz"}},
		{"Bad-Escape-Mixed", "/?q=50%25+off%", []string{"q"}, req.Values{"q": "50% off%"}},
		{"Semicolon", "/?q=a;b", []string{"q"}, req.Values{"q": "a;b"}},
		{"Bad-Escape-Number", "/?n=7&bad=%", []string{"n:n"}, req.Values{"n": float64(7)}},
		{
			"Mixed",
			"/search?q=go&limit=10&verbose",
			[]string{"q", "n:limit", "b:verbose", "b:debug", "sort?"},
			req.Values{"q": "go", "limit": float64(10), "verbose": true, "debug": false, "sort": nil},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := req.Extract(newRequest(tc.target), tc.specs...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestExtractErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		target string
		specs  []string
		reason error
		param  string
	}{
		{"Missing", "/", []string{"x"}, req.ErrMissingParam, "x"},
		{"Missing-Number", "/", []string{"n:count"}, req.ErrMissingParam, "count"},
		{"Not-A-Number", "/?count=abc", []string{"n:count"}, req.ErrInvalidNumber, "count"},
		{"Not-A-Finite-Number", "/?count=Infinity", []string{"n:count?"}, req.ErrInvalidNumber, "count"},
		{"Not-A-Boolean", "/?verbose=yes", []string{"b:verbose"}, req.ErrInvalidBoolean, "verbose"},
		{"Not-A-Boolean-True", "/?verbose=true", []string{"b:verbose?"}, req.ErrInvalidBoolean, "verbose"},
		{"Empty-Specifier", "/", []string{""}, req.ErrInvalidSpecifier, ""},
		{"Newline-Specifier", "/", []string{"a\nb"}, req.ErrInvalidSpecifier, "a\nb"},
		{"Specifier-Before-Lookup", "/", []string{"x", ""}, req.ErrInvalidSpecifier, ""},
		{"First-Failure-Wins", "/?count=abc", []string{"q", "n:count"}, req.ErrMissingParam, "q"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := req.Extract(newRequest(tc.target), tc.specs...)

			// Assert
			require.Nil(t, actual)
			requireInvalidParams(t, err, tc.reason, tc.param)
		})
	}
}

func TestExtractPartial(t *testing.T) {
	for _, tc := range []struct {
		name     string
		target   string
		specs    []string
		expected req.Values
	}{
		{"Optional-Absent", "/", []string{"x?"}, req.Values{}},
		{"Required-Absent", "/", []string{"x"}, req.Values{}},
		{"Number-Absent", "/", []string{"n:count"}, req.Values{}},
		{"Bool-Absent", "/", []string{"b:verbose"}, req.Values{}},
		{"Bool-Flag", "/?verbose", []string{"b:verbose"}, req.Values{"verbose": true}},
		{"Bad-Escape-Kept", "/?x=100%", []string{"x", "y"}, req.Values{"x": "100%"}},
		{"Semicolon", "/?x=a;b", []string{"x"}, req.Values{"x": "a;b"}},
		{"Present", "/?x=1&count=2", []string{"x", "n:count"}, req.Values{"x": "1", "count": float64(2)}},
		{
			"Mixed",
			"/?q=go",
			[]string{"q", "n:limit", "b:verbose", "sort?"},
			req.Values{"q": "go"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := req.ExtractPartial(newRequest(tc.target), tc.specs...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}

	// Arrange
	r := newRequest("/?count=abc&verbose=no")

	// Act
	_, err := req.ExtractPartial(r, "n:count")

	// Assert
	requireInvalidParams(t, err, req.ErrInvalidNumber, "count")

	// Act
	_, err = req.ExtractPartial(r, "b:verbose")

	// Assert
	requireInvalidParams(t, err, req.ErrInvalidBoolean, "verbose")

	// Act
	_, err = req.ExtractPartial(r, "")

	// Assert
	requireInvalidParams(t, err, req.ErrInvalidSpecifier, "")
}

func TestExtractNilRequest(t *testing.T) {
	// Act
	_, err := req.Extract(nil, "x")

	// Assert
	require.ErrorIs(t, err, qparams.ErrBadAny)

	// Act
	_, err = req.ExtractPartial(&http.Request{}, "x")

	// Assert
	require.ErrorIs(t, err, qparams.ErrBadAny)
}

func TestExtractIdempotent(t *testing.T) {
	// Arrange
	r := newRequest("/?q=go&limit=10&verbose")
	specs := []string{"q", "n:limit", "b:verbose", "sort?"}

	// Act
	first, err := req.Extract(r, specs...)
	require.Nil(t, err)

	first["q"] = "mutated"

	second, err := req.Extract(r, specs...)
	require.Nil(t, err)

	// Assert
	require.Equal(t, "go", second["q"])
	require.Equal(t, "q=go&limit=10&verbose", r.URL.RawQuery)
}

func TestExtractOrderIndependent(t *testing.T) {
	// Arrange
	r := newRequest("/?q=go&limit=10&verbose")

	// Act
	forward, err := req.Extract(r, "q", "n:limit", "b:verbose", "sort?")
	require.Nil(t, err)

	backward, err := req.Extract(r, "sort?", "b:verbose", "n:limit", "q")
	require.Nil(t, err)

	// Assert
	require.Equal(t, forward, backward)
}

func TestExtractURL(t *testing.T) {
	// Act
	actual, err := req.ExtractURL("https://example.com/search?q=go&verbose", req.Options{}, "q", "b:verbose", "n:page?")

	// Assert
	require.Nil(t, err)
	require.Equal(t, req.Values{"q": "go", "verbose": true, "page": nil}, actual)

	// Act
	actual, err = req.ExtractURL("https://example.com/search?q=go", req.Options{Partial: true}, "q", "b:verbose", "n:page?")

	// Assert
	require.Nil(t, err)
	require.Equal(t, req.Values{"q": "go"}, actual)

	// Act
	actual, err = req.ExtractURL("http://example.com/?q=100%", req.Options{}, "q")

	// Assert
	require.Nil(t, err)
	require.Equal(t, req.Values{"q": "100%"}, actual)

	// Act
	_, err = req.ExtractURL("http://[::1", req.Options{}, "q")

	// Assert
	require.ErrorIs(t, err, qparams.ErrBadFormat)
	require.False(t, errors.Is(err, qparams.ErrNotValid))

	// Act
	_, err = req.ExtractURL("/search", req.Options{}, "q")

	// Assert
	requireInvalidParams(t, err, req.ErrMissingParam, "q")
}
