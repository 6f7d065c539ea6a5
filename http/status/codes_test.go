package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, Status("OK"), Text(OK))
	require.Equal(t, Status("Moved Permanently"), Text(MovedPermanently))
	require.Equal(t, Status("Not Found"), Text(NotFound))
	require.Equal(t, Status("Method Not Allowed"), Text(MethodNotAllowed))
	require.Equal(t, Status(""), Text(Code(418)))
}
