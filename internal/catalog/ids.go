package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// namespace scopes every content id. Ids are derived from an entity's
// position in the seed document, so they are the same on every run.
var namespace = uuid.MustParse("6f1c2d7e-3b8a-5c4d-9e0f-7a6b5c4d3e2f")

func newID(format string, args ...any) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf(format, args...)))
}
