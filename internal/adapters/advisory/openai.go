package advisory

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

const defaultModel = "gpt-4o-mini"

type openAICompleter struct {
	client *openai.Client
	model  string
}

func newOpenAICompleter(apiKey, model string) *openAICompleter {
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithMaxRetries(0))
	if model == "" {
		model = defaultModel
	}
	return &openAICompleter{client: &client, model: model}
}

func (c *openAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
	}
	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}
	return resp.OutputText(), nil
}
