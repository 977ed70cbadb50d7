// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the building blocks for error-aware
// pipelines fed by the either package.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error observer)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - FailOnError: late failure from a checking function
// - Finally: reduce to a concrete value via success/error handlers
package solo
