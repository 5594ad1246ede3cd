package qgen

import "fmt"

const systemPrompt = `You are a quiz question generator. Create multiple-choice questions (MCQs) on the given topic.
For each question:
1. Provide a clear, concise question
2. Give exactly 4 options (A, B, C, D format)
3. Indicate the correct answer as A, B, C, or D
4. Include a brief explanation of why the answer is correct

Make questions challenging but fair, covering different aspects of the topic.`

// buildUserMessage constructs the per-topic generation request.
func buildUserMessage(topic string, batchSize int) string {
	return fmt.Sprintf("Generate %d multiple-choice questions about: %s", batchSize, topic)
}
