// Package generation provides the text generation capability for debate
// agents.
//
// A Generator is the raw port to a language model: it may fail or return
// empty text. The Producer wraps a Generator with retry, sanitization, and
// a deterministic fallback so that callers always receive exactly one
// well-formed sentence.
//
// Two generators ship with the package:
//   - OpenAIGenerator calls an OpenAI-compatible completion endpoint via
//     langchaingo (hosted OpenAI or a local server such as vLLM/Ollama
//     serving a small Qwen model).
//   - HashGenerator derives deterministic text from a prompt digest, a
//     drop-in replacement for offline runs and reproducible tests.
package generation
