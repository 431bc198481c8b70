package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyberowl/owl-tts/internal/core/timewords"
)

var exampleTimes = []string{
	"00:00", "12:00", "01:00", "01:05", "01:15", "01:30",
	"01:45", "13:02", "17:40", "21:21", "23:55",
}

type options struct {
	style string
	plain bool
}

func newRootCmd(now func() time.Time) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "timewords [HH:MM[:SS]]",
		Short: "Print a clock time in Russian words",
		Long: `timewords reads a clock time aloud the way the speech service does.

Without an argument the current local time is used. Words carry Silero
stress marks (+) unless --plain is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := timewords.ParseStyle(opts.style)
			if err != nil {
				return err
			}
			var in any = now()
			if len(args) == 1 {
				in = args[0]
			}
			text, err := timewords.TimeToText(in, style)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.render(text))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.style, "style", "s", "formal", "formal or spoken")
	root.PersistentFlags().BoolVar(&opts.plain, "plain", false, "strip stress marks")
	root.AddCommand(newExamplesCmd(opts))
	return root
}

func newExamplesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print reference times in both styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tFORMAL\tSPOKEN")
			for _, t := range exampleTimes {
				formal, err := timewords.TimeToText(t, timewords.Formal)
				if err != nil {
					return err
				}
				spoken, err := timewords.TimeToText(t, timewords.Spoken)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", t, opts.render(formal), opts.render(spoken))
			}
			return w.Flush()
		},
	}
}

func (o *options) render(text string) string {
	if o.plain {
		return timewords.StripStress(text)
	}
	return text
}
