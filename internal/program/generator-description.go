package program

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// exerciseGenerator fills in catalog content using the OpenAI API. It is
// only constructed when an API key is configured; everything it produces is
// optional enrichment on top of the seeded catalog.
type exerciseGenerator struct {
	client openai.Client
}

// newExerciseGenerator creates a new catalog content generator.
func newExerciseGenerator(openaiAPIKey string) *exerciseGenerator {
	client := openai.NewClient(option.WithAPIKey(openaiAPIKey))
	return &exerciseGenerator{
		client: client,
	}
}

// GenerateDescription produces a markdown description for a catalog entry.
func (eg *exerciseGenerator) GenerateDescription(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.New("exercise name cannot be empty")
	}

	prompt := fmt.Sprintf(`Write a markdown description for the strength-training exercise "%s"
following this exact structure:

## Instructions
[Provide 3-5 numbered steps explaining how to perform the exercise correctly]

## Common Mistakes
[List 3-4 common form errors as bullet points]

Important guidelines:
- Instructions should be clear, concise, and focus on proper form
- Use simple, direct language that beginners can understand
- Highlight safety considerations where relevant

The description should be comprehensive yet concise, totaling around 150 words.
Respond with the markdown only, no preamble.`, name)

	chat, err := eg.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return "", errors.New("empty completion")
	}

	return chat.Choices[0].Message.Content, nil
}

// generatedExercise is the JSON shape the model is asked to produce for new
// catalog entries.
type generatedExercise struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Muscles             []string `json:"muscles"`
	Equipment           []string `json:"equipment"`
	Contraindications   []string `json:"contraindications"`
	Tags                []string `json:"tags"`
	DescriptionMarkdown string   `json:"description_markdown"`
}

// GenerateExercise produces a complete catalog entry for an exercise name
// the catalog does not know yet.
func (eg *exerciseGenerator) GenerateExercise(ctx context.Context, name string) (Exercise, error) {
	if name == "" {
		return Exercise{}, errors.New("exercise name cannot be empty")
	}

	prompt := fmt.Sprintf(`Generate catalog metadata for the strength-training exercise "%s".
Respond with a single JSON object and nothing else, using exactly these keys:

{
  "name": "display name",
  "category": "one of: compound, isolation, core",
  "muscles": ["primary muscles, lowercase"],
  "equipment": ["required equipment tags, lowercase; empty array for bodyweight"],
  "contraindications": ["joints the movement stresses, from: knee, shoulder, elbow, wrist, ankle, hip, neck, upper_back, lower_back"],
  "tags": ["optional, from: unilateral, isometric, cardio"],
  "description_markdown": "markdown with ## Instructions and ## Common Mistakes sections"
}`, name)

	chat, err := eg.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return Exercise{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(chat.Choices) == 0 {
		return Exercise{}, errors.New("empty completion")
	}

	content := strings.TrimSpace(chat.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var generated generatedExercise
	if err = json.Unmarshal([]byte(content), &generated); err != nil {
		return Exercise{}, fmt.Errorf("parse exercise response: %w", err)
	}

	if generated.Name == "" || generated.DescriptionMarkdown == "" {
		return Exercise{}, errors.New("generated exercise is missing required fields")
	}

	category := Category(generated.Category)
	switch category {
	case CategoryCompound, CategoryIsolation, CategoryCore:
	default:
		return Exercise{}, fmt.Errorf("invalid category %q", generated.Category)
	}

	ex := Exercise{
		Name:                generated.Name,
		Category:            category,
		DescriptionMarkdown: generated.DescriptionMarkdown,
		Muscles:             generated.Muscles,
		Equipment:           generated.Equipment,
		Tags:                generated.Tags,
	}
	for _, zone := range generated.Contraindications {
		ex.Contraindications = append(ex.Contraindications, BodyZone(zone))
	}
	return ex, nil
}
