package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/simspace/method"
	"github.com/viant/simspace/object"
	"github.com/viant/simspace/space"
)

func newMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List registered methods and spaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, elem := range []object.ElementType{object.Float32, object.Float64} {
				fmt.Fprintf(out, "%s: %s\n", elem, strings.Join(method.Default.Names(elem), ", "))
			}
			fmt.Fprintf(out, "spaces: %s\n", strings.Join(space.Names(), ", "))
			return nil
		},
	}
}
