package service

import "fmt"

// ContractError marks an execute path reached without a passing availability
// check. It is a caller defect rather than a normal flow-control status, and
// handlers map it to an internal server error.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
