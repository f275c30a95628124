package logger_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/qparams"
	"github.com/xy-planning-network/qparams/http/req"
	"github.com/xy-planning-network/qparams/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}, Caller: "ignored.go:1"}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	_, extractErr := req.Extract(httptest.NewRequest(http.MethodGet, "/", nil), "q")
	lc = logger.LogContext{Error: extractErr}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"param \"q\" is missing","param":"q"}`, string(b))

	// Arrange
	expected := map[string]any{
		"request": map[string]any{
			"id":     "test-id",
			"method": http.MethodGet,
			"url":    "https://example.com/search?page=2&password=xxxxxx&token=xxxxxx",
		},
	}

	r := httptest.NewRequest(http.MethodGet, "https://example.com/search?token=abc&page=2&password=hunter2", nil)
	r = r.WithContext(context.WithValue(r.Context(), qparams.RequestIDKey, "test-id"))
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, "token=abc&page=2&password=hunter2", r.URL.RawQuery)
}

func TestLogContextString(t *testing.T) {
	// Arrange
	lc := logger.LogContext{Error: errors.New("test")}

	// Act
	actual := lc.String()

	// Assert
	require.Equal(t, `"{\"error\":\"test\"}"`, actual)
}
