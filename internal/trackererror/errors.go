// Package trackererror defines the error taxonomy of the tracker core. Every
// error here is local and recoverable: the prior state is always left intact.
package trackererror

import "fmt"

// UnrecognizedInputError reports a chat message in which no monetary amount
// could be found. Nothing was mutated.
type UnrecognizedInputError struct {
	Text string
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("no amount recognized in input: %q", e.Text)
}

// InvalidGoalError reports a goal submission with a missing or non-positive
// amount.
type InvalidGoalError struct {
	Amount string
	Reason string
}

func (e *InvalidGoalError) Error() string {
	return fmt.Sprintf("invalid goal amount %q: %s", e.Amount, e.Reason)
}

// InvalidImportError reports an import document that failed validation. The
// in-memory state is unchanged.
type InvalidImportError struct {
	Reason string
	Err    error
}

func (e *InvalidImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid import document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid import document: %s", e.Reason)
}

func (e *InvalidImportError) Unwrap() error {
	return e.Err
}

// NoCorrectionMatchError reports a correction directive that matched zero
// stored transactions. Distinguished from a silent no-op so the user gets a
// specific "nothing found" reply.
type NoCorrectionMatchError struct {
	From string
}

func (e *NoCorrectionMatchError) Error() string {
	return fmt.Sprintf("no transactions with category matching %q", e.From)
}
