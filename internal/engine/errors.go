package engine

// Validation messages returned to API callers.
const (
	MsgInvalidFamilyStatus = "invalid family status"
	MsgIncomesNotPositive  = "incomes must be positive"
	MsgNegativeChildren    = "number of children cannot be negative"
)

// InvalidInputError reports a household input that breaks a domain
// invariant. It is the only error the calculator returns.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func invalidInput(msg string) error {
	return &InvalidInputError{Message: msg}
}
