package generator

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Generator hands out session tokens and acknowledgement references.
// Tokens are time based and carry no secret; they only mark a session as present.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock is used by tests that need predictable tokens.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) SessionToken() string {
	return "demo-token-" + strconv.FormatInt(g.now().UnixMilli(), 10)
}

// Reference is shown to the visitor after a simulated submission.
func (g *Generator) Reference(prefix string) string {
	id := uuid.New().String()
	return prefix + "-" + id[:8]
}
