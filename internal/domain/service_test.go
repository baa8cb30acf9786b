package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindService(t *testing.T) {
	svc := FindService(DefaultServices, "Automation Build")

	require.NotNil(t, svc)
	assert.Equal(t, 100.0, svc.Price)
	assert.Equal(t, 45, svc.DurationMinutes)

	assert.Nil(t, FindService(DefaultServices, "Dog Walking"))
	assert.Nil(t, FindService(DefaultServices, "virtual assistant"), "lookup is case sensitive")
}

func TestService_IsFree(t *testing.T) {
	for _, svc := range DefaultServices {
		switch svc.Type {
		case ServicePaid:
			assert.False(t, svc.IsFree(), svc.Name)
		default:
			assert.True(t, svc.IsFree(), svc.Name)
		}
	}
}
