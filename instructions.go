package sdprompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// TranslationSystemPrompt is sent as the system role by chat-style vendors
// when translating.
const TranslationSystemPrompt = "You are a professional translator specializing in Stable Diffusion prompts. Translate English prompts to natural Japanese."

const sd15Template = `「{{.Keyword}}」を1つの核となる英単語に変換し、その単語をベースにしたシンプルなSD 1.5用プロンプトタグを作成してください。

## ルール:
1. 「{{.Keyword}}」→ 1つの核となる英単語 (例: 可愛い子 → cute)
2. 核の英単語 + 基本的なSDタグ (portrait, photorealistic, soft_lighting など)
3. 説明文は不要、タグの羅列のみ
4. カンマまたは改行で区切り、5-8個を出力

## 例:
可愛い子 → cute, portrait, photorealistic, detailed, soft_lighting
悲しい → sad, crying, melancholy, tears, sorrow`

const illustriousTemplate = `「{{.Keyword}}」を1つの核となる英単語に変換し、その単語をベースにしたIllustrious系アニメモデル用のプロンプトタグを作成してください。

## ルール:
1. 「{{.Keyword}}」→ 1つの核となる英単語 (例: 可愛い子 → cute)
2. 核の英単語 + 1girl/1boy + 基本タグ (masterpiece, anime, smile など)
3. 説明文は不要、タグの羅列のみ
4. カンマまたは改行で区切り、5-8個を出力

## 例:
可愛い子 → cute, 1girl, masterpiece, anime, smile
悲しい → sad, 1girl, tears, melancholy, anime`

const translationTemplate = `以下の英語のStable Diffusionプロンプトを自然な日本語に翻訳してください。技術的な用語は適切な日本語に置き換えてください。翻訳のみを出力してください。

英語: "{{.Text}}"

日本語:`

var instructionTemplates = map[StyleVariant]*template.Template{
	StyleSD15:        template.Must(template.New("sd15").Parse(sd15Template)),
	StyleIllustrious: template.Must(template.New("illustrious").Parse(illustriousTemplate)),
}

var translationInstruction = template.Must(template.New("translation").Parse(translationTemplate))

// BuildInstruction renders the generation instruction for keyword using the
// template selected by style.
func BuildInstruction(keyword string, style StyleVariant) (string, error) {
	if err := ValidateKeyword(keyword); err != nil {
		return "", err
	}
	tmpl, ok := instructionTemplates[style.Resolve()]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, string(style))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Keyword string }{Keyword: keyword}); err != nil {
		return "", fmt.Errorf("failed to execute instruction template: %w", err)
	}
	return buf.String(), nil
}

// BuildTranslationInstruction renders the instruction asking a vendor to
// translate an English prompt into Japanese.
func BuildTranslationInstruction(text string) (string, error) {
	var buf bytes.Buffer
	if err := translationInstruction.Execute(&buf, struct{ Text string }{Text: text}); err != nil {
		return "", fmt.Errorf("failed to execute translation template: %w", err)
	}
	return buf.String(), nil
}
