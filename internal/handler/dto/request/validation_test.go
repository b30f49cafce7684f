//go:build unit

package request_test

import (
	"testing"

	"workspace-booking/internal/handler/dto/request"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, request.RegisterValidators())
	// second call is a no-op
	require.NoError(t, request.RegisterValidators())

	tests := []struct {
		name  string
		q     request.QuoteQuery
		valid bool
	}{
		{name: "empty query", q: request.QuoteQuery{}, valid: true},
		{name: "HH:MM range", q: request.QuoteQuery{Start: "09:00", End: "17:30"}, valid: true},
		{name: "HH:MM:SS accepted", q: request.QuoteQuery{Start: "09:00:00", End: "17:30:59"}, valid: true},
		{name: "single digit hour", q: request.QuoteQuery{Start: "9:00"}, valid: false},
		{name: "24:00 rejected", q: request.QuoteQuery{End: "24:00"}, valid: false},
		{name: "known package", q: request.QuoteQuery{Package: "10am-7pm"}, valid: true},
		{name: "unknown but well-formed package", q: request.QuoteQuery{Package: "weekend"}, valid: true},
		{name: "package with spaces", q: request.QuoteQuery{Package: "full day"}, valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.q)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOfficeTypeValidator(t *testing.T) {
	require.NoError(t, request.RegisterValidators())

	valid := request.CreateOfficeRequest{
		Name: "Room", Type: "private-office", Location: "Indiranagar, Bangalore", Address: "100 Feet Rd",
		BasePricePerHour: 300, Capacity: 4,
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	invalid := valid
	invalid.Type = "all"
	assert.Error(t, binding.Validator.ValidateStruct(&invalid))
}
