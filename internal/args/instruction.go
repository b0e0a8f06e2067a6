package args

import "strings"

// Instruction is the canonical form of the command's second argument.
type Instruction string

const (
	InstructionList     Instruction = "list"
	InstructionSchedule Instruction = "schedule"
	InstructionReminder Instruction = "reminder"
	// InstructionUnrecognized is returned alongside false for unknown input.
	InstructionUnrecognized Instruction = ""
)

// instructionSpellings lists every accepted spelling in help order.
var instructionSpellings = []struct {
	spelling string
	inst     Instruction
}{
	{"list", InstructionList},
	{"ls", InstructionList},
	{"schedule", InstructionSchedule},
	{"sched", InstructionSchedule},
	{"reminder", InstructionReminder},
	{"remind", InstructionReminder},
}

var instructionAliases = func() map[string]Instruction {
	m := make(map[string]Instruction, len(instructionSpellings))
	for _, s := range instructionSpellings {
		m[s.spelling] = s.inst
	}
	return m
}()

// ValidInstructionArgs lists every accepted instruction spelling.
func ValidInstructionArgs() []string {
	out := make([]string, len(instructionSpellings))
	for i, s := range instructionSpellings {
		out[i] = s.spelling
	}
	return out
}

// ValidateInstructionArg accepts any alias in ValidInstructionArgs, ignoring case.
func ValidateInstructionArg(value string) error {
	if _, ok := ParseInstructionArg(value); !ok {
		return invalidInstruction(value)
	}
	return nil
}

// ParseInstructionArg collapses an alias onto its canonical instruction.
// Unknown input yields InstructionUnrecognized and false.
func ParseInstructionArg(value string) (Instruction, bool) {
	inst, ok := instructionAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return InstructionUnrecognized, false
	}
	return inst, true
}
