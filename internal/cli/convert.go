package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/fermentation"
	"github.com/arthur-debert/wort/pkg/gravity"
	"github.com/arthur-debert/wort/pkg/report"
)

const gramsPerOunce = 28.349523125

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "convert <sg|plato|brix> <value>",
		Short:     MsgConvertShort,
		Example:   MsgConvertExample,
		GroupID:   "tools",
		ValidArgs: []string{"sg", "plato", "brix"},
		Args:      cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Newf(errors.ErrInvalidInput, "%q is not a number", args[1])
			}
			sg, err := toSG(args[0], value)
			if err != nil {
				return err
			}

			tbl := report.Table{
				Type:    "convert",
				Caption: "Gravity",
				Headers: []string{"Scale", "Value"},
				Rows: [][]string{
					{"SG", fmt.Sprintf("%.4f", sg)},
					{"Plato", fmt.Sprintf("%.2f", gravity.SGToPlato(sg))},
					{"Brix", fmt.Sprintf("%.2f", gravity.SGToBrix(sg))},
				},
			}
			return opts.render(cmd, tbl)
		},
	}
}

// toSG reads a Brix value on the Plato scale; the two agree to within
// hydrometer precision for wort.
func toSG(scale string, value float64) (float64, error) {
	switch scale {
	case "sg":
		return value, nil
	case "plato", "brix":
		return gravity.PlatoToSG(value), nil
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown gravity scale %q", scale).
		WithDetail("valid_keys", []string{"sg", "plato", "brix"})
}

func newPrimingCmd(opts *options) *cobra.Command {
	var (
		temp    float64
		volumes float64
		gallons float64
		sugar   string
	)

	cmd := &cobra.Command{
		Use:     "priming",
		Short:   MsgPrimingShort,
		Long:    MsgPrimingLong,
		GroupID: "tools",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sugars := fermentation.Sugars()
			if sugar != "" {
				s, err := fermentation.ParseSugar(sugar)
				if err != nil {
					return err
				}
				sugars = []fermentation.Sugar{s}
			}

			tbl := report.Table{
				Type:    "priming",
				Caption: fmt.Sprintf("Priming %.1f gal to %.1f volumes", gallons, volumes),
				Headers: []string{"Sugar", "Ounces", "Grams"},
				Footer:  []string{fmt.Sprintf("Warmest temperature: %.0f °F", temp)},
			}
			for _, s := range sugars {
				oz, err := fermentation.PrimingSugar(temp, volumes, gallons, s)
				if err != nil {
					return err
				}
				tbl.Rows = append(tbl.Rows, []string{
					string(s),
					fmt.Sprintf("%.2f", oz),
					fmt.Sprintf("%.0f", oz*gramsPerOunce),
				})
			}
			return opts.render(cmd, tbl)
		},
	}

	cmd.Flags().Float64VarP(&temp, "temp", "t", 68, MsgFlagTemp)
	cmd.Flags().Float64Var(&volumes, "volumes", 2.4, MsgFlagVolumes)
	cmd.Flags().Float64Var(&gallons, "gallons", 5, MsgFlagGallons)
	cmd.Flags().StringVar(&sugar, "sugar", "", MsgFlagSugar)
	return cmd
}
