package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tax-simulator/internal/engine"
	"tax-simulator/internal/model"
)

type computeOptions struct {
	status        string
	income        string
	partnerIncome string
	children      int
	breakdown     bool
}

func newComputeCmd() *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the annual tax of a household",
		Example: `  tax-simulator compute --status "Marié/Pacsé" --income 3000 --partner-income 3000 --children 3
  tax-simulator compute --status Single --income 2000 --breakdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompute(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.status, "status", "s", model.LabelSingle,
		fmt.Sprintf("family status (%q or %q)", model.LabelSingle, model.LabelMarried))
	cmd.Flags().StringVarP(&opts.income, "income", "i", "", "monthly income of the primary earner")
	cmd.Flags().StringVarP(&opts.partnerIncome, "partner-income", "p", "0", "monthly income of the partner")
	cmd.Flags().IntVarP(&opts.children, "children", "c", 0, "number of dependent children")
	cmd.Flags().BoolVarP(&opts.breakdown, "breakdown", "b", false, "print every intermediate value")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func runCompute(out io.Writer, opts *computeOptions) error {
	primary, err := model.ParseAmount(opts.income)
	if err != nil {
		return fmt.Errorf("invalid income %q: %w", opts.income, err)
	}
	partner, err := model.ParseAmount(opts.partnerIncome)
	if err != nil {
		return fmt.Errorf("invalid partner income %q: %w", opts.partnerIncome, err)
	}

	status, _ := model.ParseFamilyStatus(opts.status)
	b, err := engine.ComputeBreakdown(model.HouseholdInput{
		FamilyStatus:         status,
		MonthlyIncomePrimary: primary,
		MonthlyIncomePartner: partner,
		NumberOfChildren:     opts.children,
	})
	if err != nil {
		return err
	}

	if !opts.breakdown {
		_, err = fmt.Fprintln(out, b.Tax.StringFixed(2))
		return err
	}
	return printBreakdown(out, b)
}

func printBreakdown(out io.Writer, b engine.Breakdown) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "family status\t%s\n", b.Input.FamilyStatus)
	fmt.Fprintf(w, "annual income\t%s\n", b.AnnualIncome.StringFixed(2))
	fmt.Fprintf(w, "fiscal parts\t%s\n", b.FiscalParts.StringFixed(1))
	fmt.Fprintf(w, "income per part\t%s\n", b.PerPartIncome.StringFixed(2))
	fmt.Fprintln(w, "bracket\trate\ttaxable\ttax")
	for _, s := range b.Segments {
		upper := "+"
		if s.Bounded {
			upper = s.UpperBound.String()
		}
		fmt.Fprintf(w, "%s-%s\t%s%%\t%s\t%s\n",
			s.LowerBound, upper, s.Rate.Shift(2), s.Taxable.StringFixed(2), s.Tax.StringFixed(2))
	}
	fmt.Fprintf(w, "tax per part\t%s\n", b.PerPartTax.StringFixed(2))
	fmt.Fprintf(w, "annual tax\t%s\n", b.Tax.StringFixed(2))

	return w.Flush()
}
