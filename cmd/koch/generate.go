package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/esimov/koch"
	"github.com/esimov/koch/utils"
)

func newGenerateCmd() *cobra.Command {
	var (
		depth  int
		scale  float64
		half   string
		color  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Koch snowflake PNG",
		RunE: func(_ *cobra.Command, _ []string) error {
			h, err := koch.ParseHalf(half)
			if err != nil {
				return err
			}
			params := koch.Params{
				Depth: depth,
				Scale: scale,
				Half:  h,
				Color: color,
			}
			if err := params.Validate(); err != nil {
				return err
			}

			s := utils.NewSpinner()
			s.Start("Generating snowflake image...")
			start := time.Now()

			boundary := koch.ExtractHalf(koch.Generate(params.Depth, params.Scale), params.Half)
			err = koch.NewRenderer().SaveTo(output, boundary, params)
			s.Stop()
			if err != nil {
				return err
			}

			m := koch.Measure(boundary, params.Depth, params.Scale)
			fmt.Printf("\nGenerated in: %s%.2fs\n", utils.SuccessColor, time.Since(start).Seconds())
			fmt.Printf("%sTotal number of %s%d %spoints over %s%d %ssegments\n",
				utils.DefaultColor, utils.SuccessColor, m.PointCount,
				utils.DefaultColor, utils.SuccessColor, m.SegmentCount, utils.DefaultColor)
			fmt.Printf("Estimated curve length: %s%.4f%s\n",
				utils.SuccessColor, m.EstimatedLength, utils.DefaultColor)
			fmt.Printf("Saved as: %s %s✓%s\n\n", output, utils.SuccessColor, utils.DefaultColor)
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 4, "number of subdivision iterations (0-8)")
	cmd.Flags().Float64Var(&scale, "scale", 2.0, "linear size of the base triangle (0-10]")
	cmd.Flags().StringVar(&half, "half", "complete", "shape selector: complete, lower, upper, left, right")
	cmd.Flags().StringVar(&color, "color", "blue", "stroke color name")
	cmd.Flags().StringVar(&output, "out", "koch.png", "output PNG file")
	return cmd
}
