// Command promptwire inspects and budgets LLM prompts from the command
// line. It counts tokens with tiktoken encodings, fits prompts into a
// model context window while reserving room for the answer, and streams
// completions from several providers through a common token handler.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/promptwire/promptwire/limits"
	"github.com/promptwire/promptwire/tiktoken"
)

const envPrefix = "PROMPTWIRE"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "promptwire",
	Short: "Token counting, prompt fitting and stream inspection for LLM prompts",
	Long: `promptwire inspects and budgets LLM prompts from the command line.

The prompt is read from the command arguments, or from stdin when no
arguments are given. The model selected with --model drives both the
tokenizer choice and the context window lookup.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("model", "m", "gpt-4o", "model name used for tokenizer and limit lookups")
	rootCmd.PersistentFlags().String("encoding", "", "tiktoken encoding name, overrides the model based choice")
	rootCmd.PersistentFlags().String("limits", "", "YAML file with model limit overrides")

	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("encoding", rootCmd.PersistentFlags().Lookup("encoding"))
	_ = viper.BindPFlag("limits", rootCmd.PersistentFlags().Lookup("limits"))
}

// initConfig wires environment variables into viper. A .env file is
// loaded first when present so local setups can keep credentials there.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}

// tokenizer picks the encoder from --encoding, falling back to the
// encoding registered for the selected model.
func tokenizer() (*tiktoken.Encoder, error) {
	if name := viper.GetString("encoding"); name != "" {
		return tiktoken.New(name)
	}
	return tiktoken.ForModel(viper.GetString("model"))
}

// limitsTable returns the built-in model table, merged with the
// overrides file when --limits is set.
func limitsTable() (*limits.Table, error) {
	table := limits.Default()
	if path := viper.GetString("limits"); path != "" {
		if err := table.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// readPrompt returns the prompt from the arguments or, when none are
// given, from stdin.
func readPrompt(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
