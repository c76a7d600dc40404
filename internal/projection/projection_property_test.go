package projection

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProjectionProperties checks the algebraic guarantees of comment
// projection: projecting an already-projected record is the identity, and
// batch projection preserves length and order for arbitrary inputs.
func TestProjectionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("projection is idempotent on projected records", prop.ForAll(
		func(parentID, text string) bool {
			c := Comment{ParentID: parentID, Text: text}
			return ProjectComment(ProjectedComment(c)) == c
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("batch projection preserves length and order", prop.ForAll(
		func(ids []string) bool {
			srcs := make([]CommentSource, len(ids))
			for i, id := range ids {
				srcs[i] = ProjectedComment(Comment{ParentID: id})
			}
			out := ProjectComments(srcs)
			if len(out) != len(ids) {
				return false
			}
			for i, id := range ids {
				if out[i].ParentID != id {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("projection is total on malformed records", prop.ForAll(
		func(n int) bool {
			srcs := make([]CommentSource, n)
			for i := range srcs {
				srcs[i] = RawComment(nil)
			}
			return len(ProjectComments(srcs)) == n
		},
		gen.IntRange(0, 64),
	))

	properties.TestingRun(t)
}
