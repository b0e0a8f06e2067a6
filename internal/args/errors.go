package args

import "errors"

// Kind identifies which argument failed validation.
type Kind string

const (
	KindInvalidTeamArgument        Kind = "InvalidTeamArgument"
	KindInvalidInstructionArgument Kind = "InvalidInstructionArgument"
)

var (
	ErrInvalidTeamArgument        = errors.New("invalid team argument")
	ErrInvalidInstructionArgument = errors.New("invalid instruction argument")
)

const (
	invalidTeamMessage        = "Please provide a valid team name, including their city, or `list` to list available team names."
	invalidInstructionMessage = "Please provide a valid instruction. If you're unsure, you can use the `list` option to display the available options (`+owl list`)."
)

// ValidationError carries a message suitable for showing to the user as-is.
type ValidationError struct {
	Kind    Kind
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match the kind's sentinel.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindInvalidTeamArgument:
		return ErrInvalidTeamArgument
	case KindInvalidInstructionArgument:
		return ErrInvalidInstructionArgument
	default:
		return nil
	}
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

func invalidTeam(value string) error {
	return &ValidationError{Kind: KindInvalidTeamArgument, Value: value, Message: invalidTeamMessage}
}

func invalidInstruction(value string) error {
	return &ValidationError{Kind: KindInvalidInstructionArgument, Value: value, Message: invalidInstructionMessage}
}
