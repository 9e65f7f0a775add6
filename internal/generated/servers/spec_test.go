package servers_test

import (
	"context"
	"testing"

	"penguinadmin/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{
		"/api/v1/checkout",
		"/api/v1/products",
		"/api/v1/orders",
		"/api/v1/orders/{id}",
		"/api/v1/orders/{id}/status",
		"/api/v1/deliveries/summary",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}
