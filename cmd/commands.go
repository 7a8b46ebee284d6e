package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kilianp07/patterns/app"
)

func newFurnitureCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "furniture <kind>",
		Short:   "Print the furniture selected for kind (unknown kinds print none)",
		Example: "  patterns furniture sofa",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.svc.Furniture(args[0])
		},
	}
}

func newGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "gui <platform>",
		Short:   "Build the widget family of a platform and interact with it",
		Example: "  patterns gui linux",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.svc.GUI(args[0])
		},
	}
}

func newProductCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "product <kind>",
		Short:   "Describe the product built by a creator",
		Example: "  patterns product table",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.svc.Product(args[0])
		},
	}
}

func newCalcCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <strategy> <a> <b>",
		Short: "Run a strategy on two operands",
		Example: `  patterns calc div 6 2
  patterns calc sum -- -6 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := app.ParseOperands(args[1:])
			if err != nil {
				return err
			}
			if err := opts.svc.Use(args[0]); err != nil {
				return err
			}
			_, err = opts.svc.Calc(a, b)
			return err
		},
	}
}

func newKeysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keys accepted by every selector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.svc.PrintKeys()
		},
	}
}
