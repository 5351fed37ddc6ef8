package directives

import "fmt"

const (
	ImagePromptCount = 2

	ImagePromptSystem = "You are an AI assistant specialized in creating prompts for high-quality, realistic image generation. " +
		"Your task is to create a prompt that will result in a vivid, detailed photograph or illustration suitable for an educational podcast. " +
		"Focus on imaginative scenes, rich environments, or intriguing objects that represent the podcast's content. " +
		"Do not include children or people in the image description. Instead, focus on landscapes, animals, objects, or abstract concepts. " +
		"Use specific details about lighting, perspective, and style to enhance the prompt."
)

// ImagePrompt differs between calls only by its ordinal.
func ImagePrompt(script string, ordinal int) Directive {
	user := fmt.Sprintf(`Based on the following podcast script, generate a single, detailed prompt in English for an image generation model. The prompt should describe a captivating scene or concept that illustrates the content of the podcast without depicting any people.

Podcast script: %s

Create a prompt that includes the following elements:
1. A clear subject or focal point related to the podcast topic
2. Vivid details about the environment or setting
3. Specific lighting conditions (e.g., "golden hour sunlight", "soft moonlight", "dramatic studio lighting")
4. Style or medium suggestions (e.g., "photorealistic", "watercolor style", "isometric digital art")
5. Mood or atmosphere descriptors
6. Camera angle or perspective, if relevant
7. Any relevant textures or materials

Format your response as a single paragraph, starting with the main subject and followed by descriptive details. Do not use bullet points or numbered lists in the final prompt. This is prompt number %d of %d.

Remember to respond ONLY with the prompt, without any additional text or explanations.`, script, ordinal, ImagePromptCount)

	return Directive{System: ImagePromptSystem, User: user}
}

func ImagePromptPlaceholder(ordinal int) string {
	return fmt.Sprintf("Error generating image prompt %d", ordinal)
}
