// Package openai implements the ai.Provider interface on top of the
// github.com/sashabaranov/go-openai client, using the chat completions
// endpoint. It maps the generic chat request onto openai.ChatCompletionRequest
// (system prompt first, then conversation messages) and supports OpenAI's
// native JSON response mode.
package openai
