package service

import (
	"KMate/pkg/response"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var he *response.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, status, he.Status)
}
