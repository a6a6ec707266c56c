package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/promptwire/promptwire"
	"github.com/promptwire/promptwire/limits"
)

// fitCmd truncates the prompt to the model budget and prints the report.
var fitCmd = &cobra.Command{
	Use:   "fit [prompt...]",
	Short: "Fit a prompt into the model context window",
	Long: `Fit truncates the prompt so that it leaves room for the answer inside
the model context window and prints the resulting report as JSON. The
window size comes from the model table unless --max-tokens is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := readPrompt(args)
		if err != nil {
			return err
		}
		tok, err := tokenizer()
		if err != nil {
			return err
		}

		modelMax := viper.GetInt("max-tokens")
		if modelMax == 0 {
			table, err := limitsTable()
			if err != nil {
				return err
			}
			model := viper.GetString("model")
			ml, ok := table.Lookup(model)
			if !ok {
				return fmt.Errorf("%w: %q (set --max-tokens to override)", limits.ErrUnknownModel, model)
			}
			modelMax = ml.ContextWindow
		}

		fitter, err := promptwire.NewFitter(tok, modelMax, promptwire.WithReserve(viper.GetInt("reserve")))
		if err != nil {
			return err
		}
		res, err := fitter.Fit(prompt)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	fitCmd.Flags().Int("max-tokens", 0, "model context window in tokens (default: from the model table)")
	fitCmd.Flags().Int("reserve", promptwire.DefaultReserve, "tokens reserved for the answer")

	_ = viper.BindPFlag("max-tokens", fitCmd.Flags().Lookup("max-tokens"))
	_ = viper.BindPFlag("reserve", fitCmd.Flags().Lookup("reserve"))

	rootCmd.AddCommand(fitCmd)
}
