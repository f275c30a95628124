package qparams_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/qparams"
)

func TestKeyString(t *testing.T) {
	require.Equal(t, "qparams context key: RequestIDKey", qparams.RequestIDKey.String())
	require.Equal(t, "qparams context key: QueryValuesKey", qparams.QueryValuesKey.String())
}
