package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/openonion/connectonion-go/agent"
	"github.com/openonion/connectonion-go/config"
	"github.com/openonion/connectonion-go/history"
	"github.com/openonion/connectonion-go/llm"
	"github.com/openonion/connectonion-go/telemetry"
	"github.com/openonion/connectonion-go/tools"
)

func chatCmd() *cobra.Command {
	var (
		agentName    string
		message      string
		systemPrompt string
		noTools      bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with an agent interactively or send a one-shot message",
		Long: `Chat with an agent. By default this starts an interactive REPL with the
built-in tools (read_file, write_file, shell, http_get, current_time).

Examples:
  connectonion chat                          # Interactive REPL
  connectonion chat --name researcher        # Named agent, own behavior log
  connectonion chat -m "What time is it?"    # One-shot message`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(agentName, message, systemPrompt, noTools)
		},
	}

	cmd.Flags().StringVarP(&agentName, "name", "n", "assistant", "agent name")
	cmd.Flags().StringVarP(&message, "message", "m", "", "one-shot message (omit for interactive mode)")
	cmd.Flags().StringVar(&systemPrompt, "system", "", "system prompt")
	cmd.Flags().BoolVar(&noTools, "no-tools", false, "disable the built-in tools")
	return cmd
}

func runChat(agentName, message, systemPrompt string, noTools bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:  cfg.TraceEnabled,
		Exporter: cfg.TraceExporter,
	})
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var recOpts []history.Option
	if cfg.HistoryDir != "" {
		recOpts = append(recOpts, history.WithDir(cfg.HistoryDir))
	}
	recorder, err := history.NewRecorder(agentName, recOpts...)
	if err != nil {
		return err
	}

	opts := []agent.Option{
		agent.WithTemperature(cfg.Temperature),
		agent.WithMaxIterations(cfg.MaxIterations),
		agent.WithRecorder(recorder),
		agent.WithLogger(logger),
	}
	if systemPrompt != "" {
		opts = append(opts, agent.WithSystemPrompt(systemPrompt))
	}
	if !noTools {
		opts = append(opts, agent.WithTools(
			tools.NewReadFileTool(),
			tools.NewWriteFileTool(),
			tools.NewShellTool(tools.ShellConfig{}),
			tools.NewHTTPGetTool(tools.HTTPGetConfig{}),
			tools.NewCurrentTimeTool(),
		))
	}

	a := agent.New(agentName, client, opts...)

	if message != "" {
		answer, err := a.Run(ctx, message)
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil
	}

	fmt.Printf("Chatting with %s. Type \"exit\" to quit, \"clear\" to reset the conversation.\n", agentName)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "clear":
			a.ClearMessages()
			fmt.Println("Conversation cleared.")
			continue
		}

		start := time.Now()
		answer, err := a.Run(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		logger.Debug("run finished", "duration_ms", time.Since(start).Milliseconds())
		fmt.Println(answer)
	}
	return scanner.Err()
}

// newClient assembles provider routing from the configured API keys.
func newClient(cfg *config.Config, logger *slog.Logger) (*llm.Client, error) {
	opts := []llm.ClientOption{
		llm.WithMiddleware(
			llm.LoggingMiddleware(logger),
			llm.RetryMiddleware(llm.DefaultRetryPolicy()),
		),
	}
	if cfg.Provider != "" {
		opts = append(opts, llm.WithDefaultProvider(cfg.Provider))
	}
	if cfg.Model != "" {
		opts = append(opts, llm.WithDefaultModel(cfg.Model))
	}
	client := llm.NewClient(opts...)

	registered := 0
	if cfg.OpenAIAPIKey != "" {
		adapter, err := llm.NewGollmAdapter("openai", cfg.OpenAIAPIKey)
		if err != nil {
			return nil, err
		}
		client.RegisterProvider("openai", adapter)
		registered++
	}
	if cfg.AnthropicAPIKey != "" {
		adapter, err := llm.NewGollmAdapter("anthropic", cfg.AnthropicAPIKey)
		if err != nil {
			return nil, err
		}
		client.RegisterProvider("anthropic", adapter)
		registered++
	}
	if registered == 0 {
		return nil, errors.New("no API keys configured; set OPENAI_API_KEY or ANTHROPIC_API_KEY")
	}
	return client, nil
}
