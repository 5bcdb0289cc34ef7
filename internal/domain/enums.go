package domain

// IdeaStatus represents where an idea is in its review lifecycle.
type IdeaStatus string

const (
	IdeaStatusSubmitted     IdeaStatus = "SUBMITTED"
	IdeaStatusUnderReview   IdeaStatus = "UNDER_REVIEW"
	IdeaStatusApproved      IdeaStatus = "APPROVED"
	IdeaStatusRejected      IdeaStatus = "REJECTED"
	IdeaStatusNeedsRevision IdeaStatus = "NEEDS_REVISION"
)

func (s IdeaStatus) String() string { return string(s) }

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusSubmitted, IdeaStatusUnderReview, IdeaStatusApproved,
		IdeaStatusRejected, IdeaStatusNeedsRevision:
		return true
	}
	return false
}

// IsOpen reports whether ideas in this status still appear in the
// evaluation queue. APPROVED and REJECTED are terminal for the engine.
func (s IdeaStatus) IsOpen() bool {
	switch s {
	case IdeaStatusSubmitted, IdeaStatusUnderReview, IdeaStatusNeedsRevision:
		return true
	}
	return false
}

// OpenStatuses returns the statuses that make up the evaluation queue.
func OpenStatuses() []IdeaStatus {
	return []IdeaStatus{IdeaStatusSubmitted, IdeaStatusUnderReview, IdeaStatusNeedsRevision}
}

// Decision represents an evaluator's verdict on an idea.
//
// DecisionAssigned is an internal marker written by bulk assignment; it is
// never accepted from evaluator input.
type Decision string

const (
	DecisionAccepted      Decision = "ACCEPTED"
	DecisionRejected      Decision = "REJECTED"
	DecisionNeedsRevision Decision = "NEEDS_REVISION"
	DecisionAssigned      Decision = "ASSIGNED"
)

func (d Decision) String() string { return string(d) }

// IsValid reports whether d is a decision an evaluator may submit.
func (d Decision) IsValid() bool {
	switch d {
	case DecisionAccepted, DecisionRejected, DecisionNeedsRevision:
		return true
	}
	return false
}

// IdeaStatus returns the idea status implied by the decision.
// The bool is false for values outside the known decision set.
func (d Decision) IdeaStatus() (IdeaStatus, bool) {
	switch d {
	case DecisionAccepted:
		return IdeaStatusApproved, true
	case DecisionRejected:
		return IdeaStatusRejected, true
	case DecisionNeedsRevision:
		return IdeaStatusNeedsRevision, true
	case DecisionAssigned:
		return IdeaStatusUnderReview, true
	}
	return "", false
}

// IdeaCategory is the submitter-chosen grouping of an idea.
type IdeaCategory string

const (
	IdeaCategoryProduct    IdeaCategory = "PRODUCT"
	IdeaCategoryProcess    IdeaCategory = "PROCESS"
	IdeaCategoryTechnology IdeaCategory = "TECHNOLOGY"
	IdeaCategoryWorkplace  IdeaCategory = "WORKPLACE"
	IdeaCategoryOther      IdeaCategory = "OTHER"
)

func (c IdeaCategory) String() string { return string(c) }

func (c IdeaCategory) IsValid() bool {
	switch c {
	case IdeaCategoryProduct, IdeaCategoryProcess, IdeaCategoryTechnology,
		IdeaCategoryWorkplace, IdeaCategoryOther:
		return true
	}
	return false
}
