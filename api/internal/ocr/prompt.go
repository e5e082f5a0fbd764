package ocr

// PromptTranscribe — расшифровка одиночной работы, без структуры.
const PromptTranscribe = "Transcribe the handwritten text in this image exactly as it is written. Do not add any commentary."

// PromptExtractAnswers — структурное извлечение ответов по номерам вопросов.
// Модель обязана вернуть только JSON; текст вне JSON срезается StripCodeFences + Unmarshal.
const PromptExtractAnswers = `You are reading a photographed or scanned student answer sheet.
Extract every question number and the student's written answer for it.
Return STRICT JSON only, no commentary, in exactly this shape:
{"answers":[{"questionNumber":"1","answerText":"..."}]}
Rules:
- questionNumber is the identifier exactly as written on the sheet (e.g. "1", "Q2", "3.").
- answerText is the student's answer transcribed as written.
- If no answers are readable, return {"answers":[]}.`
