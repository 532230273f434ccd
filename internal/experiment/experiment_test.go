package experiment_test

import (
	"context"
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/frgflow/internal/config"
	"github.com/san-kum/frgflow/internal/experiment"
	"github.com/san-kum/frgflow/internal/models"
	"github.com/san-kum/frgflow/internal/sim"
	"github.com/san-kum/frgflow/internal/storage"
)

func odeint(n int) *config.Config {
	cfg := config.GetPreset("odeint")
	cfg.Matsubara = n
	return cfg
}

var _ = Describe("Registry", func() {
	reg := experiment.NewRegistry()

	It("lists models and steppers sorted", func() {
		Expect(reg.ListModels()).To(Equal([]string{"constant", "decay", "ladder"}))
		Expect(reg.ListSteppers()).To(Equal([]string{"cashkarp", "dopri5", "euler", "rk4"}))
	})

	It("knows which steppers are adaptive", func() {
		Expect(reg.Adaptive("cashkarp")).To(BeTrue())
		Expect(reg.Adaptive("dopri5")).To(BeTrue())
		Expect(reg.Adaptive("rk4")).To(BeFalse())
		Expect(reg.Adaptive("missing")).To(BeFalse())
	})

	It("rejects unknown names", func() {
		_, err := reg.GetModel("hubbard", config.DefaultConfig(), nil)
		Expect(err).To(MatchError(experiment.ErrUnknownModel))
		_, err = reg.GetStepper("leapfrog")
		Expect(err).To(MatchError(experiment.ErrUnknownStepper))
	})
})

var _ = Describe("Experiment", func() {
	var reg *experiment.Registry

	BeforeEach(func() {
		reg = experiment.NewRegistry()
	})

	It("reproduces the constant flow of the odeint preset", func() {
		exp, err := experiment.New(odeint(8), reg, nil)
		Expect(err).NotTo(HaveOccurred())

		out, err := exp.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		res := out.Result
		Expect(res.FinalTime()).To(Equal(1.0))
		Expect(cmplx.Abs(models.Gam0(res.Final) - 2.2)).To(BeNumerically("<", 1e-12))
		Expect(res.Metrics).To(HaveKeyWithValue("evaluations", float64(res.Evaluations)))
		Expect(res.Metrics["gam0_re"]).To(BeNumerically("~", 2.2, 1e-12))
		Expect(res.Metrics["norm_growth"]).To(BeNumerically("~", 2.2/1.2, 1e-12))

		Expect(out.Trajectory).To(HaveLen(len(res.Times)))
		Expect(out.Trajectory[0].Norm).To(BeNumerically("~", 1.2, 1e-15))
		Expect(out.Trajectory[0].Dt).To(BeZero())
		Expect(out.Metadata.Steps).To(Equal(res.Steps))
		Expect(out.Metadata.Stepper).To(Equal("cashkarp"))
	})

	It("stores a run that starts from zero", func() {
		cfg := odeint(4)
		cfg.Init.Sig = config.Complex{}
		cfg.Init.Gam = config.Complex{}
		exp, err := experiment.New(cfg, reg, nil)
		Expect(err).NotTo(HaveOccurred())

		out, err := exp.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(out.Metadata.Metrics["norm_growth"], 1)).To(BeTrue())

		st := storage.New(GinkgoT().TempDir())
		Expect(st.Init()).To(Succeed())
		runID, err := st.Save(out.Metadata, out.Trajectory)
		Expect(err).NotTo(HaveOccurred())

		loaded, err := st.Load(runID)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(loaded.Metrics["norm_growth"], 1)).To(BeTrue())
		Expect(loaded.Metrics["final_norm"]).To(BeNumerically("~", 1, 1e-12))
	})

	It("clears the trajectory between runs", func() {
		exp, err := experiment.New(odeint(4), reg, nil)
		Expect(err).NotTo(HaveOccurred())

		first, err := exp.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		second, err := exp.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(second.Trajectory).To(HaveLen(len(first.Trajectory)))
	})

	It("fails adaptive runs with a fixed-step stepper", func() {
		cfg := odeint(4)
		cfg.Stepper = "rk4"
		exp, err := experiment.New(cfg, reg, nil)
		Expect(err).NotTo(HaveOccurred())

		_, err = exp.Run(context.Background())
		Expect(err).To(MatchError(sim.ErrNotAdaptive))
	})

	It("rejects invalid configs", func() {
		cfg := odeint(0)
		_, err := experiment.New(cfg, reg, nil)
		Expect(err).To(MatchError(config.ErrInvalid))
	})

	It("maps the flow config onto the driver", func() {
		cfg := config.GetPreset("ladder")
		sc := experiment.SimConfig(cfg)
		Expect(sc.End).To(Equal(5.0))
		Expect(sc.MaxDt).To(Equal(0.5))
		Expect(sc.AbsTol).To(Equal(1e-6))
		Expect(sc.Adaptive).To(BeTrue())
		Expect(sc.MaxRejects).To(Equal(sim.DefaultConfig().MaxRejects))
	})
})

var _ = Describe("Sweep", func() {
	It("returns one point per initial vertex in order", func() {
		cfg := config.GetPreset("ladder")
		cfg.Matsubara = 4
		cfg.End = 1
		gams := experiment.Linspace(0.5, 2, 4)

		points, err := experiment.Sweep(context.Background(), cfg, experiment.NewRegistry(), gams, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(4))
		for i, p := range points {
			g := real(gams[i])
			Expect(p.Gam).To(Equal(gams[i]))
			Expect(real(p.FinalGam)).To(BeNumerically("~", g/(1+g), 1e-5))
		}
	})

	It("builds evenly spaced values", func() {
		Expect(experiment.Linspace(0, 1, 3)).To(Equal([]complex128{0, 0.5, 1}))
		Expect(experiment.Linspace(2, 3, 1)).To(Equal([]complex128{2}))
		Expect(experiment.Linspace(0, 1, 0)).To(BeNil())
	})
})

var _ = Describe("Compare", func() {
	It("runs every stepper and falls back to constant steps", func() {
		cfg := config.GetPreset("decay")
		cfg.Matsubara = 4
		cfg.Adaptive = true

		rows, err := experiment.Compare(context.Background(), cfg, experiment.NewRegistry(), []string{"cashkarp", "rk4", "euler"}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))

		Expect(rows[0].Adaptive).To(BeTrue())
		Expect(rows[1].Adaptive).To(BeFalse())
		Expect(rows[1].Steps).To(Equal(200))
		Expect(rows[2].Evaluations).To(Equal(200))
		for _, r := range rows {
			Expect(r.Err).NotTo(HaveOccurred())
			Expect(r.StepStats.Total).To(BeNumerically("~", 2, 1e-9))
			Expect(r.Trajectory).NotTo(BeEmpty())
		}
	})

	It("reports unknown steppers", func() {
		_, err := experiment.Compare(context.Background(), odeint(4), experiment.NewRegistry(), []string{"midpoint"}, nil)
		Expect(err).To(MatchError(experiment.ErrUnknownStepper))
	})
})

var _ = Describe("Convergence", func() {
	DescribeTable("recovers the stepper order on the decay flow",
		func(stepper string, dts []float64, order float64) {
			cfg := config.GetPreset("decay")
			cfg.Matsubara = 2

			got, errs, err := experiment.Convergence(context.Background(), cfg, experiment.NewRegistry(), stepper, dts, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(errs).To(HaveLen(len(dts)))
			Expect(got).To(BeNumerically("~", order, 0.3))
		},
		Entry("euler", "euler", []float64{0.02, 0.01, 0.005}, 1.0),
		Entry("rk4", "rk4", []float64{0.2, 0.1, 0.05}, 4.0),
	)
})
