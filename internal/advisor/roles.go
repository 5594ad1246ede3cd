package advisor

// Role identifies the advisory voice making a call. The role name is
// learner-facing: it appears in the interaction log and in the failure
// placeholder.
type Role string

const (
	// RoleComprehension explains the current question's concept when the
	// learner says they don't understand it, and after a failed depth check.
	RoleComprehension Role = "Comprehension Coach"

	// RoleConfidence comments on the learner's stated confidence level.
	RoleConfidence Role = "Confidence Coach"

	// RoleDepthCheck reacts to how the learner studied the material.
	RoleDepthCheck Role = "Depth Check Coach"

	// RoleReflection responds to the learner's written reflection.
	RoleReflection Role = "Reflection Guide"

	// RoleScheduler confirms the review plan for this concept.
	RoleScheduler Role = "Review Planner"
)

// instruction templates, one per role. These are the system prompts for
// the advisory calls; the per-call context string is the user message.
const (
	comprehensionInstructions = `You are a patient tutor. The learner is unsure about the concept behind the quiz question shown in the context. Briefly explain the underlying concept in plain language, without revealing which option is correct. Two or three sentences.`

	confidenceInstructions = `You are an encouraging study coach. The learner just answered a quiz question and rated their own confidence. React to the pairing of their answer and confidence in one or two supportive sentences. Do not reveal whether the answer was correct.`

	depthCheckInstructions = `You are a study-habits mentor. The learner described how they engaged with this material (glanced vs. studied, understood vs. not). Offer one or two sentences of advice on studying this kind of material more deeply.`

	reflectionInstructions = `You are a reflective learning guide. The learner wrote a short reflection on the question they just completed. Respond in one or two sentences that reinforce what they noticed and suggest one thing to watch for next time.`

	schedulerInstructions = `You are a spaced-repetition review planner. The learner scheduled a review for this concept. Confirm the plan in one sentence and note why reviewing on that date helps retention.`
)

// Instructions returns the instruction template for a role. Unknown
// roles get the comprehension template, the most general of the set.
func Instructions(role Role) string {
	switch role {
	case RoleComprehension:
		return comprehensionInstructions
	case RoleConfidence:
		return confidenceInstructions
	case RoleDepthCheck:
		return depthCheckInstructions
	case RoleReflection:
		return reflectionInstructions
	case RoleScheduler:
		return schedulerInstructions
	default:
		return comprehensionInstructions
	}
}
