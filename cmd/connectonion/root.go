package main

import "github.com/spf13/cobra"

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connectonion",
		Short: "Run tool-using LLM agents from the command line",
		Long: `connectonion drives a bounded reason-and-act loop between an LLM and a
set of tools: the model decides what to call, the agent executes it, and
the conversation continues until the model answers in plain text.

Configuration comes from the environment (or a .env file):
  OPENAI_API_KEY / ANTHROPIC_API_KEY   provider credentials
  CONNECTONION_PROVIDER                default provider
  CONNECTONION_MODEL                   default model
  CONNECTONION_HISTORY_DIR             behavior log root (default ~/.connectonion/agents)`,
	}
	cmd.AddCommand(chatCmd())
	cmd.AddCommand(modelsCmd())
	return cmd
}
