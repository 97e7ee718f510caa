package session_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edi-cli/edi/pkg/llm"
	"github.com/edi-cli/edi/pkg/session"
)

var _ = Describe("SQLiteStore", func() {
	var (
		ctx   context.Context
		store *session.SQLiteStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		store, err = session.NewSQLiteStore(":memory:")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if store != nil {
			store.Close()
		}
	})

	Describe("NewSQLiteStore", func() {
		It("creates a store with a file database", func() {
			dbPath := filepath.Join(GinkgoT().TempDir(), "sessions.db")

			s, err := session.NewSQLiteStore(dbPath)
			Expect(err).NotTo(HaveOccurred())
			defer s.Close()

			_, err = os.Stat(dbPath)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Save and Load", func() {
		It("round-trips a transcript in conversation order", func() {
			transcript := llm.Transcript{
				{Role: llm.RoleUser, Content: "Hello"},
				{Role: llm.RoleAssistant, Content: "Hi there"},
				{Role: llm.RoleUser, Content: "How are you?"},
			}

			Expect(store.Save(ctx, transcript)).To(Succeed())

			loaded, err := store.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(transcript))
		})

		It("round-trips an empty transcript", func() {
			Expect(store.Save(ctx, llm.Transcript{})).To(Succeed())

			loaded, err := store.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(BeEmpty())
		})

		It("only ever loads the most recently saved session", func() {
			Expect(store.Save(ctx, llm.Transcript{{Role: llm.RoleUser, Content: "first"}})).To(Succeed())
			Expect(store.Save(ctx, llm.Transcript{{Role: llm.RoleUser, Content: "second"}})).To(Succeed())

			loaded, err := store.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(HaveLen(1))
			Expect(loaded[0].Content).To(Equal("second"))
		})

		It("preserves multi-line message content", func() {
			transcript := llm.Transcript{{Role: llm.RoleUser, Content: "line one\nline two"}}

			Expect(store.Save(ctx, transcript)).To(Succeed())

			loaded, err := store.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(transcript))
		})
	})

	Describe("Load recovery", func() {
		It("returns an empty transcript when nothing was ever saved", func() {
			loaded, err := store.Load(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(BeEmpty())
		})
	})
})
