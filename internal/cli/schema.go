package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vk/axisdefaults/internal/schema"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

func newSchemaCommand(outW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [PREFIX]",
		Short: "List the axis attributes, their types and defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			reg := schema.Axis()
			if len(args) == 1 {
				reg = reg.Sub(args[0])
			}
			attrs := reg.Attributes()
			if len(attrs) == 0 {
				return usageError(fmt.Errorf("no attributes under %q", args[0]))
			}
			return writeSchema(outW, attrs)
		},
	}
}

func writeSchema(w io.Writer, attrs []*schema.Attribute) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tTYPE\tDEFAULT\tVALUES")
	for _, attr := range attrs {
		typ := attr.Type.FriendlyName()
		if attr.Format != schema.FormatNone {
			typ += " (" + string(attr.Format) + ")"
		}
		if attr.IsArray() {
			typ = "list of " + typ
		}

		dflt := "-"
		if attr.HasDefault() {
			dflt = render(attr.Default)
		}
		values := make([]string, 0, len(attr.Values))
		for _, v := range attr.Values {
			values = append(values, render(v))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", attr.Path, typ, dflt, strings.Join(values, " | "))
	}
	return tw.Flush()
}

func render(v cty.Value) string {
	out, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return v.GoString()
	}
	return string(out)
}
