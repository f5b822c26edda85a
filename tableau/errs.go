package tableau

import "errors"

var (
	// ErrStepLimit and ErrBranchLimit mark a search cut off by a resource
	// ceiling. The caller sees outcome Unknown, never a wrong answer.
	ErrStepLimit   = errors.New("tableau: step limit reached")
	ErrBranchLimit = errors.New("tableau: branch limit reached")
)
