package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Amund211/notations/internal/app"
	"github.com/Amund211/notations/internal/bignum"
	"github.com/Amund211/notations/internal/domain"
	"github.com/Amund211/notations/internal/notation"
)

var defaultMilestoneThresholds = []int64{1, 2, 4, 8, 16, 32, 64, 128, 256}

type commandDependencies struct {
	registry        *notation.Registry
	formatValue     app.FormatValue
	toggleMilestone app.ToggleEternityMilestone
	defaultNotation notation.ID
	defaultPlaces   int
}

func newRootCmd(deps commandDependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "notation-preview",
		Short:         "Preview how values render in each notation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newFormatCmd(deps),
		newTableCmd(deps),
		newMilestonesCmd(deps),
	)

	return rootCmd
}

func parseValues(args []string) ([]bignum.Decimal, error) {
	values := make([]bignum.Decimal, 0, len(args))
	for _, arg := range args {
		value, err := bignum.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value: %w", err)
		}
		values = append(values, value)
	}
	return values, nil
}

func newFormatCmd(deps commandDependencies) *cobra.Command {
	var (
		notationID  string
		places      int
		underPlaces int
	)

	cmd := &cobra.Command{
		Use:   "format [values...]",
		Short: "Format values with one notation, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := notation.ParseID(notationID)
			if err != nil {
				return err
			}

			values, err := parseValues(args)
			if err != nil {
				return err
			}

			for _, value := range values {
				formatted, err := deps.formatValue(cmd.Context(), id, value, places, underPlaces)
				if err != nil {
					return fmt.Errorf("failed to format %s: %w", value, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}
			return nil
		},
	}

	ids := deps.registry.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	cmd.Flags().StringVar(&notationID, "notation", string(deps.defaultNotation), "notation id, one of "+strings.Join(names, ", "))
	cmd.Flags().IntVar(&places, "places", deps.defaultPlaces, "decimal places for values of 1000 and above")
	cmd.Flags().IntVar(&underPlaces, "under-places", 0, "decimal places for values below 1000")

	return cmd
}

func newTableCmd(deps commandDependencies) *cobra.Command {
	var (
		places      int
		underPlaces int
	)

	cmd := &cobra.Command{
		Use:   "table [values...]",
		Short: "Format values with every notation side by side",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			notations := deps.registry.All()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			header := make([]string, 0, len(notations)+1)
			header = append(header, "value")
			for _, n := range notations {
				header = append(header, string(n.ID()))
			}
			fmt.Fprintln(w, strings.Join(header, "\t"))

			for i, value := range values {
				row := make([]string, 0, len(notations)+1)
				row = append(row, args[i])
				for _, n := range notations {
					formatted, err := deps.formatValue(cmd.Context(), n.ID(), value, places, underPlaces)
					if err != nil {
						return fmt.Errorf("failed to format %s: %w", value, err)
					}
					row = append(row, formatted)
				}
				fmt.Fprintln(w, strings.Join(row, "\t"))
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&places, "places", deps.defaultPlaces, "decimal places for values of 1000 and above")
	cmd.Flags().IntVar(&underPlaces, "under-places", 0, "decimal places for values below 1000")

	return cmd
}

func newMilestonesCmd(deps commandDependencies) *cobra.Command {
	var (
		eternities int64
		disabled   []int64
		thresholds []int64
		toggle     []int64
	)

	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Show eternity milestone status for a player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			player := &domain.PlayerState{Eternities: eternities}
			for _, threshold := range disabled {
				if !domain.IsEternityMilestoneToggleable(threshold) {
					return fmt.Errorf("milestone %d cannot be disabled", threshold)
				}
				if !domain.IsEternityMilestoneDisabled(player, threshold) {
					domain.ToggleEternityMilestone(player, threshold)
				}
			}

			for _, threshold := range toggle {
				deps.toggleMilestone(cmd.Context(), player, threshold)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "threshold\tstatus\ttoggleable")
			for _, view := range app.DescribeEternityMilestones(player, thresholds) {
				fmt.Fprintf(w, "%d\t%s\t%s\n", view.Threshold, view.Status, strconv.FormatBool(view.Toggleable))
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&eternities, "eternities", 0, "number of eternities the player has")
	cmd.Flags().Int64SliceVar(&disabled, "disabled", nil, "milestones the player has switched off")
	cmd.Flags().Int64SliceVar(&thresholds, "thresholds", defaultMilestoneThresholds, "milestones to show")
	cmd.Flags().Int64SliceVar(&toggle, "toggle", nil, "milestones to toggle before showing")

	return cmd
}
