package constant

const (
	// Emotion states surfaced to the avatar frontend.
	EmotionNeutral     = "neutral"
	EmotionJoy         = "joy"
	EmotionEmbarrassed = "embarrassed"
	EmotionProud       = "proud"

	// System prompt for answer generation.
	GenerationSystemPrompt = "You are a helpful assistant for Chungbuk National University multi-major program guidance."

	// Canned user-facing replies. The pipeline never surfaces a raw
	// fault to chat output; these cover every recovered outcome.
	MsgOutOfScope = "죄송해요, 저는 충북대 다(부)전공 안내만 도와드릴 수 있어요. 😅"

	MsgAskProgram = "어떤 전공에 대해 궁금한지 알려주라왕! 😊\n(빅데이터, 지식재산 스마트융합, 위기관리, 보안컨설팅, 벤처비즈니스, 이차전지융합, 공공데이터사이언스)"

	MsgMissingResource = "죄송해요, 해당 전공의 상세 정보를 찾을 수 없다왕... 😅\n교무과(043-261-3916, 3984)에 문의해보라왕!"

	MsgGenerationFailure = "오류가 발생했다왕... 😅 잠시 후 다시 시도해보라왕!"
)

// Emotion keyword chains, checked in priority order: first match wins.
var (
	EmbarrassedKeywords = []string{"죄송", "모르", "찾을 수 없"}
	ProudKeywords       = []string{"완료", "성공", "잘했"}
)

// AnswerMarker wraps the substantive part of a generated reply.
const AnswerMarker = "<answer>"

// JoyMinAnswerRunes is the minimum answer length (in runes) for the
// joy emotion when the answer marker is present.
const JoyMinAnswerRunes = 100
