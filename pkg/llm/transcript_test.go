package llm_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edi-cli/edi/pkg/llm"
)

var _ = Describe("Transcript", func() {
	Describe("WithUser", func() {
		It("appends exactly one user turn", func() {
			t := llm.Transcript{
				{Role: llm.RoleUser, Content: "Hello"},
				{Role: llm.RoleAssistant, Content: "Hi there"},
			}

			out := t.WithUser("How are you?")

			Expect(out).To(HaveLen(3))
			Expect(out[2]).To(Equal(llm.Message{Role: llm.RoleUser, Content: "How are you?"}))
		})

		It("does not mutate the receiver", func() {
			t := llm.Transcript{{Role: llm.RoleUser, Content: "Hello"}}

			_ = t.WithUser("again")

			Expect(t).To(HaveLen(1))
			Expect(t[0].Content).To(Equal("Hello"))
		})

		It("produces independent transcripts from the same base", func() {
			base := llm.Transcript{{Role: llm.RoleUser, Content: "root"}}

			a := base.WithUser("branch a")
			b := base.WithUser("branch b")

			Expect(a[1].Content).To(Equal("branch a"))
			Expect(b[1].Content).To(Equal("branch b"))
		})

		It("works on a nil transcript", func() {
			var t llm.Transcript

			out := t.WithUser("first")

			Expect(out).To(HaveLen(1))
			Expect(out[0].Role).To(Equal(llm.RoleUser))
		})
	})

	Describe("WithAssistant", func() {
		It("appends an assistant turn", func() {
			t := llm.Transcript{{Role: llm.RoleUser, Content: "Hello"}}

			out := t.WithAssistant("Hi there")

			Expect(out).To(HaveLen(2))
			Expect(out[1]).To(Equal(llm.Message{Role: llm.RoleAssistant, Content: "Hi there"}))
		})
	})

	Describe("JSON shape", func() {
		It("serializes as an array of role/content objects", func() {
			t := llm.Transcript{
				{Role: llm.RoleUser, Content: "Hello"},
				{Role: llm.RoleAssistant, Content: "Hi there"},
			}

			data, err := json.Marshal(t)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(MatchJSON(`[
				{"role":"user","content":"Hello"},
				{"role":"assistant","content":"Hi there"}
			]`))
		})
	})
})

var _ = Describe("ChatResponse", func() {
	Describe("Reply", func() {
		It("returns the single choice's content", func() {
			r := llm.ChatResponse{Choices: []llm.Choice{
				{Message: llm.Message{Role: llm.RoleAssistant, Content: "hi"}},
			}}

			Expect(r.Reply()).To(Equal("hi"))
		})

		It("concatenates multiple choices in array order", func() {
			r := llm.ChatResponse{Choices: []llm.Choice{
				{Message: llm.Message{Content: "Hello, "}},
				{Message: llm.Message{Content: "world"}},
			}}

			Expect(r.Reply()).To(Equal("Hello, world"))
		})

		It("is empty for an empty choices array", func() {
			r := llm.ChatResponse{}

			Expect(r.Reply()).To(BeEmpty())
		})
	})

	It("tolerates unknown fields in the response body", func() {
		body := `{"id":"c-1","object":"chat.completion","created":1700000000,
			"choices":[{"index":0,"message":{"role":"assistant","content":"hi"},"finish_reason":"stop"}],
			"usage":{"total_tokens":12}}`

		var r llm.ChatResponse
		Expect(json.Unmarshal([]byte(body), &r)).To(Succeed())
		Expect(r.Reply()).To(Equal("hi"))
	})
})
