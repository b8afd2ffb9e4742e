package settlement

// DefaultCommissionRate is the platform's fixed cut of every settled
// booking. The agent receives the remainder.
const DefaultCommissionRate = 0.10

// Reference prefixes. External tooling parses these, so the linkage
// between an original booking and its derived records is part of the
// contract: TXN-<ts>-<rand> original, COM-TXN-... commission,
// AGT-TXN-... agent share.
const (
	ReferencePrefix     = "TXN-"
	CommissionRefPrefix = "COM-"
	AgentShareRefPrefix = "AGT-"
)
