package errs

// Result carries either a value or a non-nil *Error, never both and
// never neither. Accessing the wrong side is a programming error and
// panics instead of returning a zero value that would hide the bug.
type Result[T any] struct {
	value T
	err   *Error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](err *Error) Result[T] {
	if err == nil {
		panic("errs: Fail called with nil error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool { return r.err == nil }
func (r Result[T]) IsFailure() bool { return r.err != nil }

// Value returns the carried value and panics on a failed result.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("errs: Value called on a failed result: " + r.err.Error())
	}
	return r.value
}

// Err returns the carried error and panics on a successful result.
func (r Result[T]) Err() *Error {
	if r.err == nil {
		panic("errs: Err called on a successful result")
	}
	return r.err
}

// UnitResult is the no-value variant for operations whose only
// interesting outcome is success or failure (save, delete).
type UnitResult struct {
	err *Error
}

func OkUnit() UnitResult {
	return UnitResult{}
}

func FailUnit(err *Error) UnitResult {
	if err == nil {
		panic("errs: FailUnit called with nil error")
	}
	return UnitResult{err: err}
}

func (r UnitResult) IsSuccess() bool { return r.err == nil }
func (r UnitResult) IsFailure() bool { return r.err != nil }

func (r UnitResult) Err() *Error {
	if r.err == nil {
		panic("errs: Err called on a successful result")
	}
	return r.err
}
