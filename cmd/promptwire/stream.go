package main

import (
	"context"
	"fmt"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	ollamaapi "github.com/ollama/ollama/api"
	openaisdk "github.com/openai/openai-go/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/genai"

	"github.com/promptwire/promptwire"
	"github.com/promptwire/promptwire/anthropic"
	"github.com/promptwire/promptwire/gemini"
	"github.com/promptwire/promptwire/ollama"
	"github.com/promptwire/promptwire/openai"
)

// streamCmd sends the prompt to a provider and prints tokens as they arrive.
var streamCmd = &cobra.Command{
	Use:   "stream [prompt...]",
	Short: "Stream a completion to stdout",
	Long: `Stream sends the prompt to the selected provider and prints tokens as
they arrive. Credentials are read from the usual provider environment
variables (ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY); ollama
connects to the local server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := readPrompt(args)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		model := viper.GetString("model")
		h := &promptwire.WriterHandler{W: cmd.OutOrStdout()}

		var text string
		switch provider := viper.GetString("provider"); provider {
		case "anthropic":
			text, err = streamAnthropic(ctx, model, prompt, h)
		case "openai":
			text, err = streamOpenAI(ctx, model, prompt, h)
		case "ollama":
			text, err = streamOllama(ctx, model, prompt, h)
		case "gemini":
			text, err = streamGemini(ctx, model, prompt, h)
		default:
			return fmt.Errorf("unknown provider %q", provider)
		}
		if err != nil {
			return err
		}
		if text != "" && !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	streamCmd.Flags().StringP("provider", "p", "openai", "provider to stream from (anthropic, openai, ollama, gemini)")

	_ = viper.BindPFlag("provider", streamCmd.Flags().Lookup("provider"))

	rootCmd.AddCommand(streamCmd)
}

func streamAnthropic(ctx context.Context, model, prompt string, h promptwire.StreamHandler) (string, error) {
	client := anthropicsdk.NewClient()

	// The Messages API requires an output cap; take it from the model
	// table when the model is known there.
	maxTokens := int64(1024)
	if table, err := limitsTable(); err == nil {
		if ml, ok := table.Lookup(model); ok && ml.MaxOutput > 0 {
			maxTokens = int64(ml.MaxOutput)
		}
	}

	stream := client.Messages.NewStreaming(ctx, anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(model),
		MaxTokens: maxTokens,
		Messages:  []anthropicsdk.MessageParam{anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(prompt))},
	})
	return anthropic.Relay(ctx, stream, h)
}

func streamOpenAI(ctx context.Context, model, prompt string, h promptwire.StreamHandler) (string, error) {
	client := openaisdk.NewClient()

	stream := client.Chat.Completions.NewStreaming(ctx, openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{openaisdk.UserMessage(prompt)},
	})
	return openai.Relay(ctx, stream, h)
}

func streamOllama(ctx context.Context, model, prompt string, h promptwire.StreamHandler) (string, error) {
	client, err := ollamaapi.ClientFromEnvironment()
	if err != nil {
		return "", err
	}

	collect := &promptwire.Collector{}
	req := &ollamaapi.ChatRequest{
		Model:    model,
		Messages: []ollamaapi.Message{{Role: "user", Content: prompt}},
	}
	if err := client.Chat(ctx, req, ollama.ChatFunc(promptwire.MultiHandler(h, collect))); err != nil {
		return "", err
	}
	return collect.String(), nil
}

func streamGemini(ctx context.Context, model, prompt string, h promptwire.StreamHandler) (string, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	return gemini.Relay(ctx, client.Models.GenerateContentStream(ctx, model, contents, nil), h)
}
