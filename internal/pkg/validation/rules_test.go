package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" validate:"required,username"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestRegister_ReportsJSONFieldNames(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(sampleRequest{})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "username", verrs[0].Field())
}

func TestUsernameRule(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(sampleRequest{Username: "alma.mater+1@uiuc"}))
	assert.Error(t, v.Struct(sampleRequest{Username: "alma mater"}))
	assert.Error(t, v.Struct(sampleRequest{Username: "alma!"}))
}

func TestRegisterGinValidators_Idempotent(t *testing.T) {
	require.NoError(t, RegisterGinValidators())
	require.NoError(t, RegisterGinValidators())
}
