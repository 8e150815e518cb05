package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_Accessors(t *testing.T) {
	t.Run("should expose value when successful", func(t *testing.T) {
		req := require.New(t)
		r := Ok(42)

		req.True(r.IsSuccess())
		req.False(r.IsFailure())
		req.Equal(42, r.Value())
	})

	t.Run("should expose error when failed", func(t *testing.T) {
		req := require.New(t)
		r := Fail[int](ValueIsEmpty("id"))

		req.True(r.IsFailure())
		req.Equal(CodeValueEmpty, r.Err().Code)
	})

	t.Run("should panic when reading value of a failed result", func(t *testing.T) {
		r := Fail[string](StorageError("boom"))
		require.Panics(t, func() { _ = r.Value() })
	})

	t.Run("should panic when reading error of a successful result", func(t *testing.T) {
		r := Ok("fine")
		require.Panics(t, func() { _ = r.Err() })
	})

	t.Run("should panic when failing with nil error", func(t *testing.T) {
		require.Panics(t, func() { Fail[int](nil) })
	})
}

func TestUnitResult_Accessors(t *testing.T) {
	t.Run("should report success with no error", func(t *testing.T) {
		req := require.New(t)
		r := OkUnit()

		req.True(r.IsSuccess())
		require.Panics(t, func() { _ = r.Err() })
	})

	t.Run("should carry the failure error", func(t *testing.T) {
		req := require.New(t)
		r := FailUnit(NotFound("Message", "abc"))

		req.True(r.IsFailure())
		req.Equal(CodeNotFound, r.Err().Code)
	})

	t.Run("should panic when failing with nil error", func(t *testing.T) {
		require.Panics(t, func() { FailUnit(nil) })
	})
}

func TestError_Shape(t *testing.T) {
	t.Run("should format code and message", func(t *testing.T) {
		req := require.New(t)
		err := NotFound("Message", "550e8400")

		req.Equal("record.not.found", err.Code)
		req.Contains(err.Error(), "Message not found with ID '550e8400'")
	})

	t.Run("should match sentinels by code through errors.Is", func(t *testing.T) {
		req := require.New(t)
		err := ValueIsRequired("message")

		req.True(errors.Is(err, New(CodeValueRequired, "")))
		req.False(errors.Is(err, New(CodeStorage, "")))
	})

	t.Run("should attach field violations to validation errors", func(t *testing.T) {
		req := require.New(t)
		err := Validation(
			FieldError{Field: "from", Message: "required"},
			FieldError{Field: "type", Message: "required"},
		)

		req.Equal(CodeValidation, err.Code)
		req.Len(err.Fields, 2)
		req.Contains(err.Error(), "from: required")
	})
}
