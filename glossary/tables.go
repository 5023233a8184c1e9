package glossary

// defaultWords maps single English tags to Japanese.
var defaultWords = map[string]string{
	// joy
	"happy":     "幸せな",
	"smile":     "笑顔",
	"smiling":   "笑っている",
	"joyful":    "喜びの",
	"cheerful":  "明るい",
	"delighted": "嬉しそうな",
	"excited":   "興奮した",
	"pleased":   "満足した",
	"content":   "満足した",
	"radiant":   "輝いている",
	"gleeful":   "大喜びの",

	// sadness
	"sad":            "悲しい",
	"crying":         "泣いている",
	"tears":          "涙の",
	"melancholy":     "憂鬱な",
	"depressed":      "落ち込んだ",
	"sorrowful":      "悲嘆の",
	"tearful":        "涙ぐんだ",
	"heartbroken":    "心が折れた",
	"grief-stricken": "深い悲しみの",
	"mournful":       "嘆いている",

	// anger
	"angry":      "怒った",
	"furious":    "激怒した",
	"mad":        "怒った",
	"irritated":  "イライラした",
	"annoyed":    "うんざりした",
	"frustrated": "苛立った",
	"enraged":    "激怒した",

	// fear
	"scared":    "怖がった",
	"afraid":    "恐れた",
	"fearful":   "恐怖の",
	"terrified": "恐怖した",
	"nervous":   "緊張した",
	"anxious":   "不安な",
	"worried":   "心配な",
	"panicked":  "パニックの",

	// surprise
	"surprised":  "驚いた",
	"shocked":    "ショックの",
	"amazed":     "驚嘆した",
	"astonished": "仰天した",
	"stunned":    "唖然とした",

	// thought
	"thinking":      "考えている",
	"contemplating": "熟考している",
	"pensive":       "物思いにふけった",
	"thoughtful":    "思慮深い",
	"pondering":     "思案している",
	"concentrated":  "集中している",
	"focused":       "集中した",
	"serious":       "真剣な",

	// face
	"face":        "顔",
	"expression":  "表情",
	"eyes":        "目",
	"gaze":        "視線",
	"look":        "表情",
	"countenance": "表情",
	"visage":      "顔",

	// head and hair
	"head":     "頭",
	"portrait": "ポートレート",
	"hair":     "髪",
	"closeup":  "クローズアップ",
	"profile":  "横顔",
	"bust":     "胸像",

	// beauty
	"beautiful":  "美しい",
	"pretty":     "きれいな",
	"cute":       "かわいい",
	"lovely":     "愛らしい",
	"gorgeous":   "ゴージャスな",
	"stunning":   "魅力的な",
	"attractive": "魅力的な",
	"charming":   "魅力的な",
	"elegant":    "上品な",
	"graceful":   "優雅な",

	// age and gender
	"young":       "若い",
	"old":         "年老いた",
	"child":       "子どもの",
	"adult":       "大人の",
	"elderly":     "高齢の",
	"teenage":     "10代の",
	"middle-aged": "中年の",
	"boy":         "男の子の",
	"girl":        "女の子の",
	"man":         "男性の",
	"woman":       "女性の",
	"male":        "男性の",
	"female":      "女性の",

	// states
	"calm":        "穏やかな",
	"peaceful":    "平和な",
	"relaxed":     "リラックスした",
	"tired":       "疲れた",
	"sleepy":      "眠そうな",
	"bored":       "退屈な",
	"confused":    "困惑した",
	"curious":     "好奇心旺盛な",
	"confident":   "自信のある",
	"shy":         "恥ずかしがりの",
	"embarrassed": "恥ずかしい",
	"guilty":      "罪悪感のある",
	"proud":       "誇らしい",

	// shyness
	"blushing":       "頬を赤らめた",
	"bashful":        "内気な",
	"sheepish":       "きまりが悪い",
	"modest":         "控えめな",
	"timid":          "臆病な",
	"coy":            "はにかんだ",
	"self-conscious": "自意識過剰な",
	"awkward":        "ぎこちない",
	"uncomfortable":  "居心地悪い",
	"flustered":      "あわてた",

	// moods
	"dreamy":        "夢見がちな",
	"wistful":       "物憂げな",
	"longing":       "憧れの",
	"nostalgic":     "懐かしい",
	"hopeful":       "希望に満ちた",
	"optimistic":    "楽観的な",
	"pessimistic":   "悲観的な",
	"cynical":       "皮肉な",
	"skeptical":     "懐疑的な",
	"determined":    "決意した",
	"resolute":      "断固とした",
	"stubborn":      "頑固な",
	"defiant":       "反抗的な",
	"rebellious":    "反抗的な",
	"mischievous":   "いたずらっぽい",
	"playful":       "ふざけた",
	"teasing":       "からかう",
	"flirtatious":   "いちゃつく",
	"seductive":     "誘惑的な",
	"sultry":        "官能的な",
	"mysterious":    "神秘的な",
	"enigmatic":     "謎めいた",
	"aloof":         "よそよそしい",
	"distant":       "距離を置いた",
	"cold":          "冷たい",
	"warm":          "温かい",
	"kind":          "優しい",
	"gentle":        "穏やかな",
	"tender":        "優しい",
	"compassionate": "思いやりのある",
	"sympathetic":   "同情的な",
	"empathetic":    "共感的な",
}

// defaultPhrases maps whole prompts to Japanese. They are matched before
// the prompt is split into words.
var defaultPhrases = map[string]string{
	"happy face":       "幸せな顔",
	"sad face":         "悲しい顔",
	"smiling face":     "笑顔",
	"crying face":      "泣いている顔",
	"angry face":       "怒った顔",
	"surprised face":   "驚いた顔",
	"thinking face":    "考えている顔",
	"shy face":         "恥ずかしがりの顔",
	"embarrassed face": "恥ずかしい顔",
	"blushing face":    "頬を赤らめた顔",
	"bashful face":     "内気な顔",
	"modest face":      "控えめな顔",
	"sheepish face":    "きまりが悪い顔",
	"awkward face":     "ぎこちない顔",

	"joyful expression":     "喜びの表情",
	"sorrowful expression":  "悲しみの表情",
	"peaceful expression":   "穏やかな表情",
	"determined expression": "決意した表情",
	"confident expression":  "自信のある表情",
	"mysterious expression": "神秘的な表情",
	"gentle expression":     "優しい表情",
	"cold expression":       "冷たい表情",
	"warm expression":       "温かい表情",

	"cheerful smile":    "明るい笑顔",
	"gentle smile":      "優しい笑顔",
	"bright smile":      "明るい笑顔",
	"warm smile":        "温かい笑顔",
	"sweet smile":       "甘い笑顔",
	"shy smile":         "恥ずかしそうな笑顔",
	"mischievous smile": "いたずらっぽい笑顔",
	"playful smile":     "ふざけた笑顔",
	"mysterious smile":  "神秘的な笑顔",

	"dreamy eyes":     "夢見がちな目",
	"tired eyes":      "疲れた目",
	"bright eyes":     "輝く目",
	"sad eyes":        "悲しい目",
	"happy eyes":      "幸せな目",
	"mysterious eyes": "神秘的な目",
	"gentle eyes":     "優しい目",
	"cold eyes":       "冷たい目",

	"feeling shy":            "恥ずかしがっている",
	"feeling embarrassed":    "恥ずかしがっている",
	"feeling bashful":        "内気になっている",
	"feeling awkward":        "ぎこちなく感じている",
	"feeling uncomfortable":  "居心地悪く感じている",
	"feeling self-conscious": "自意識過剰になっている",
}

// hints are tried in order against prompts the dictionary could not gloss.
var hints = []struct {
	substr string
	gloss  string
}{
	{"face", "顔の表情"},
	{"expression", "表情"},
	{"eyes", "目の表現"},
	{"hair", "髪の表現"},
	{"smile", "笑顔"},
}
