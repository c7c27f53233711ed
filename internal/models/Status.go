package models

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a travel request. A request is created
// pending and may move to exactly one of the two terminal states.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var ErrInvalidDecision = errors.New("decision must be approved or rejected")

// ParseDecision validates an approver-supplied decision value. Only the two
// terminal states are acceptable input; "pending" is not a decision.
func ParseDecision(s string) (Status, error) {
	switch Status(s) {
	case StatusApproved, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidDecision
	}
}

// CanTransition reports whether moving from s to next is a legal edge.
// The only legal edges are pending -> approved and pending -> rejected;
// terminal states never change again.
func (s Status) CanTransition(next Status) error {
	if s != StatusPending {
		return fmt.Errorf("request already %s", s)
	}
	if next != StatusApproved && next != StatusRejected {
		return ErrInvalidDecision
	}
	return nil
}

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}
