package config

import (
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestConfigSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Location presets", func() {
	var cfg *Config

	BeforeEach(func() {
		cfg = DefaultConfig()
	})

	It("keeps the output aspect ratio", func() {
		loc, err := GetPreset("dragon")
		Expect(err).NotTo(HaveOccurred())

		loc.Apply(cfg)
		Expect(cfg.Position).To(Equal(loc.Position))
		Expect(cfg.Zoom.Y).To(Equal(loc.Scale))
		Expect(cfg.Zoom.X / cfg.Zoom.Y).To(BeNumerically("~", 1280.0/720.0, 1e-12))
		Expect(cfg.MaxIterations).To(Equal(3000))
	})

	It("reproduces the default view", func() {
		loc, err := GetPreset("full")
		Expect(err).NotTo(HaveOccurred())

		loc.Apply(cfg)
		Expect(cfg.Zoom.X).To(BeNumerically("~", 2.0, 1e-12))
		Expect(cfg.Zoom.Y).To(Equal(1.125))
	})

	It("produces a renderable viewport for every preset", func() {
		for _, name := range ListPresets() {
			c := DefaultConfig()
			loc, err := GetPreset(name)
			Expect(err).NotTo(HaveOccurred())
			loc.Apply(c)

			v, err := c.Viewport()
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(v.Validate()).To(Succeed(), name)
		}
	})

	It("falls back to a square when the height is unset", func() {
		cfg.Height = 0
		loc, _ := GetPreset("seahorse")
		loc.Apply(cfg)
		Expect(cfg.Zoom.X).To(Equal(cfg.Zoom.Y))
	})
})

var _ = Describe("Files", func() {
	It("survives a save and load unchanged", func() {
		path := filepath.Join(GinkgoT().TempDir(), "cfg.yaml")
		want := DefaultConfig()
		want.Supersample = 3
		want.Kernel = "portable"

		Expect(Save(path, want)).To(Succeed())
		got, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	})
})
