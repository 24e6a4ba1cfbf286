package pkg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	UserID int    `json:"userId" validate:"required,gt=0"`
	Days   int    `json:"days" validate:"required,min=1,max=7"`
	Note   string `json:"note,omitempty" validate:"omitempty,max=5"`
}

func TestValidationMessage(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(testRequest{UserID: 1, Days: 3}))

	err := v.Struct(testRequest{Days: 3})
	require.Error(t, err)
	assert.Equal(t, "userId is required", ValidationMessage(err, "userId is required"))

	err = v.Struct(testRequest{UserID: 1, Days: 9, Note: "too long note"})
	require.Error(t, err)
	assert.Equal(t, "invalid fields: days, note", ValidationMessage(err, "required"))

	assert.Equal(t, "plain", ValidationMessage(errors.New("plain"), "required"))
}
