package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edi-cli/edi/pkg/config"
)

var _ = Describe("Config", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "config.toml")
	})

	Describe("Save and Load", func() {
		It("round-trips the configuration", func() {
			cfg := config.Config{APIKey: "k-123", Model: "Assistant"}

			Expect(config.Save(path, cfg)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("creates missing parent directories", func() {
			nested := filepath.Join(GinkgoT().TempDir(), "a", "b", "config.toml")

			Expect(config.Save(nested, config.Config{APIKey: "k", Model: "m"})).To(Succeed())
		})

		It("writes the file user-only", func() {
			Expect(config.Save(path, config.Config{APIKey: "k", Model: "m"})).To(Succeed())

			info, err := os.Stat(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
		})
	})

	Describe("Load", func() {
		It("returns a zero config for a missing file", func() {
			loaded, err := config.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(config.Config{}))
		})

		It("errors on a malformed file", func() {
			Expect(os.WriteFile(path, []byte("api_key = [broken"), 0o600)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Complete", func() {
		It("requires both the key and the model", func() {
			Expect(config.Config{}.Complete()).To(BeFalse())
			Expect(config.Config{APIKey: "k"}.Complete()).To(BeFalse())
			Expect(config.Config{Model: "m"}.Complete()).To(BeFalse())
			Expect(config.Config{APIKey: "k", Model: "m"}.Complete()).To(BeTrue())
		})
	})
})
