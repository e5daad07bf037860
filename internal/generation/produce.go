package generation

import (
	"context"
	"fmt"
	"strings"
)

// attemptBudget is the total number of generation attempts per argument.
const attemptBudget = 3

// Attempt records the outcome of a single generation attempt.
type Attempt struct {
	// Number is the 1-based attempt index.
	Number int

	// Err is non-nil when the attempt failed: the generator call errored
	// or returned text with no usable sentence.
	Err error
}

// Result is the outcome of producing one argument sentence.
type Result struct {
	// Sentence is the produced sentence. Never empty, always ends with a
	// single period.
	Sentence string

	// Fallback is true when every attempt failed and the sentence was
	// derived from the prompt hash instead.
	Fallback bool

	// Attempts holds one record per generation attempt, in order.
	Attempts []Attempt
}

// Produce asks gen for one concise sentence, retrying up to the attempt
// budget. A failed generator call and an empty post-sanitization result
// both consume an attempt. When the budget is exhausted the deterministic
// fallback sentence for the prompt is substituted, so the returned sentence
// is never empty and Produce never fails.
//
// Produce performs no logging and mutates no shared state; callers emit
// diagnostics from the returned attempt records.
func Produce(ctx context.Context, gen Generator, prompt string, maxTokens int) Result {
	attempts := make([]Attempt, 0, attemptBudget)

	for n := 1; n <= attemptBudget; n++ {
		raw, err := gen.Generate(ctx, prompt, maxTokens)
		if err != nil {
			attempts = append(attempts, Attempt{Number: n, Err: fmt.Errorf("generation failed: %w", err)})
			continue
		}

		sentence := sentenceFrom(raw)
		if sentence == "" {
			attempts = append(attempts, Attempt{Number: n, Err: ErrEmptyResponse})
			continue
		}

		attempts = append(attempts, Attempt{Number: n})
		return Result{Sentence: sentence, Attempts: attempts}
	}

	return Result{
		Sentence: FallbackSentence(prompt),
		Fallback: true,
		Attempts: attempts,
	}
}

// sentenceFrom reduces raw model output to one sentence: trim, take the
// first line, take the text before the first period, trim again. Returns ""
// when nothing usable remains; otherwise the sentence with a single
// trailing period reattached.
func sentenceFrom(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	firstLine, _, _ := strings.Cut(text, "\n")
	sentence, _, _ := strings.Cut(firstLine, ".")
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return ""
	}
	return sentence + "."
}

// FallbackSentence derives a deterministic placeholder sentence from a
// digest of the prompt. The same prompt always maps to the same sentence.
func FallbackSentence(prompt string) string {
	return fmt.Sprintf("(unable to generate valid response %s).", promptDigest(prompt))
}
