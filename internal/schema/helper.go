package schema

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/axisdefaults/internal/ctxlog"
)

// isExprDefined checks if an HCL expression was actually present in the
// manifest. gohcl fills omitted optional expression fields with zero-width
// placeholders, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if manifest field was explicitly defined.",
		"field", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}
