package experiment_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vibelab/internal/config"
	"github.com/san-kum/vibelab/internal/dynamo"
	"github.com/san-kum/vibelab/internal/experiment"
)

var _ = Describe("Registry", func() {
	var registry *experiment.Registry

	BeforeEach(func() {
		registry = experiment.NewRegistry()
	})

	It("lists the four examples in name order", func() {
		names := []string{}
		for _, ex := range registry.List() {
			names = append(names, ex.Name)
			Expect(ex.Description).NotTo(BeEmpty())
		}
		Expect(names).To(Equal([]string{"cable", "oscillator", "ratio", "spectrum"}))
	})

	It("rejects unknown examples", func() {
		_, err := registry.Get("pendulum")
		Expect(err).To(MatchError(dynamo.ErrUnknownExample))
	})

	DescribeTable("builds every example from the defaults",
		func(name string, panels int) {
			ex, err := registry.Get(name)
			Expect(err).NotTo(HaveOccurred())

			fig, err := experiment.New(ex, config.DefaultConfig(), nil).Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Panels).To(HaveLen(panels))
			for _, p := range fig.Panels {
				Expect(p.Title).NotTo(BeEmpty())
				Expect(p.Series).NotTo(BeEmpty())
				for _, s := range p.Series {
					Expect(s.X).To(HaveLen(len(s.Y)))
				}
			}
		},
		Entry("oscillator", "oscillator", 1),
		Entry("spectrum", "spectrum", 2),
		Entry("ratio", "ratio", 1),
		Entry("cable", "cable", 1),
	)

	Context("with overrides", func() {
		run := func(name string, overrides map[string]float64) (*dynamo.Figure, error) {
			ex, err := registry.Get(name)
			Expect(err).NotTo(HaveOccurred())
			return experiment.New(ex, nil, overrides).Run(context.Background())
		}

		It("selects the critically damped regime", func() {
			fig, err := run("oscillator", map[string]float64{"damping": 4})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Panels[0].Title).To(ContainSubstring("critically damped"))
		})

		It("resizes the time grid", func() {
			fig, err := run("oscillator", map[string]float64{"duration": 2, "fps": 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Panels[0].Series[0].X).To(HaveLen(21))
		})

		It("overlays several cable modes", func() {
			fig, err := run("cable", map[string]float64{"modes": 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(fig.Panels[0].Series).To(HaveLen(3))
			Expect(fig.Panels[0].Series[0].Label).To(HavePrefix("Mode 1"))
		})

		It("reports unknown parameters", func() {
			_, err := run("ratio", map[string]float64{"tension": 1})
			Expect(err).To(MatchError(dynamo.ErrUnknownParam))
		})

		It("reports invalid parameters", func() {
			_, err := run("cable", map[string]float64{"length": -5})
			Expect(err).To(MatchError(dynamo.ErrParameterBounds))
		})

		It("keeps the spectrum peaks at the tone amplitudes", func() {
			fig, err := run("spectrum", map[string]float64{"amplitude2": 2})
			Expect(err).NotTo(HaveOccurred())

			spec := fig.Panels[1].Series[0]
			Expect(spec.Y[10]).To(BeNumerically("~", 1, 1e-6))
			Expect(spec.Y[30]).To(BeNumerically("~", 2, 1e-6))
		})
	})

	It("clips the resonance to the ratio limit", func() {
		ex, _ := registry.Get("ratio")
		fig, err := experiment.New(ex, nil, nil).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		panel := fig.Panels[0]
		Expect(panel.YRange).NotTo(BeNil())
		for _, y := range panel.Clipped()[0].Y {
			Expect(math.IsNaN(y)).To(BeFalse())
			Expect(y).To(BeNumerically("<=", 15))
		}
	})

	It("stops on a canceled context", func() {
		ex, _ := registry.Get("cable")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := experiment.New(ex, nil, nil).Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})
})
