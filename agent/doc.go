// Package agent implements a bounded reason-and-act loop between a language
// model and a set of callable tools. The model decides which tools to call;
// the agent executes them, returns the results, and keeps going until the
// model produces a plain text answer or the iteration bound stops it.
//
// # Architecture
//
//   - Agent: owns one conversation and drives the loop
//   - Registry: named tools with their function schemas, last registration wins
//   - Conversation: ordered message history, system prompt pinned first
//   - CoerceArguments: turns raw JSON tool arguments into keyword parameters
//   - EventEmitter: optional non-blocking stream of run events
//
// Tool calls within one model turn execute in parallel; their results are
// appended in the order the model requested them. A tool that fails, or is
// not registered at all, produces an error result the model can react to.
// Only model call failures abort a run.
//
// # Quick Start
//
//	client, _ := llm.NewGollmAdapter("openai", os.Getenv("OPENAI_API_KEY"))
//	a := agent.New("assistant", client,
//	    agent.WithSystemPrompt("You are a helpful assistant."),
//	    agent.WithTools(tools.NewCurrentTimeTool()),
//	)
//
//	answer, err := a.Run(ctx, "What time is it in RFC822 format?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(answer)
package agent
