package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray_Basic(t *testing.T) {
	a := GenerateRandByteArray(24)
	b := GenerateRandByteArray(24)
	require.Len(t, a, 24)
	require.Len(t, b, 24)
	if string(a) == string(b) {
		t.Logf("warning: two GenerateRandByteArray(24) results are identical; extremely unlikely")
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf)
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrorUnauthorized,
		ErrValidation, ErrInvalidDate,
		ErrNotLoggedIn, ErrAlreadyLoggedIn, ErrWrongRole,
		ErrUnknownVaccine, ErrNoCaregiverAvailable, ErrAppointmentNotFound,
		ErrConflict, ErrUsernameTaken, ErrDuplicateSlot, ErrOutOfStock,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
}
