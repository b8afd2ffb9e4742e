package settlement

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReference generates a unique transaction reference of the form
// TXN-<unix millis>-<random>.
func NewReference() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s%d-%s", ReferencePrefix, time.Now().UnixMilli(), suffix)
}

// CommissionReference derives the platform-commission reference for an
// original booking reference.
func CommissionReference(reference string) string {
	return CommissionRefPrefix + reference
}

// AgentShareReference derives the agent-share reference for an original
// booking reference.
func AgentShareReference(reference string) string {
	return AgentShareRefPrefix + reference
}

// OriginalReference strips a derived prefix, returning the underlying
// booking reference unchanged when none is present.
func OriginalReference(reference string) string {
	reference = strings.TrimPrefix(reference, CommissionRefPrefix)
	return strings.TrimPrefix(reference, AgentShareRefPrefix)
}

// IsOriginal reports whether the reference names a booking payment
// rather than one of its derived records.
func IsOriginal(reference string) bool {
	return strings.HasPrefix(reference, ReferencePrefix)
}
