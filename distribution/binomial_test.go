package distribution_test

import (
	"errors"
	"io/ioutil"
	"math"
	"os"
	"path"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mason-leap-lab/distributions/chart"
	"github.com/mason-leap-lab/distributions/distribution"
	"github.com/mason-leap-lab/distributions/loader"
)

func newBinomial(p float64, n int) *distribution.Binomial {
	b, err := distribution.NewBinomial(p, n)
	Expect(err).To(BeNil())
	return b
}

var _ = Describe("Binomial", func() {
	It("should construct with defaults", func() {
		b := distribution.DefaultBinomial()
		Expect(b.P).To(Equal(0.5))
		Expect(b.N).To(Equal(20))
		Expect(b.Mean).To(Equal(10.0))
		Expect(b.Stdev).To(BeNumerically("~", math.Sqrt(5), 1e-12))
	})

	It("should keep mean and stdev consistent with p and n", func() {
		for _, p := range []float64{0, 0.1, 0.25, 0.4, 0.5, 0.8, 1} {
			for _, n := range []int{0, 1, 7, 20, 60, 1000} {
				b := newBinomial(p, n)
				Expect(b.Mean).To(Equal(float64(n) * p))
				Expect(b.Stdev).To(Equal(math.Sqrt(float64(n) * p * (1 - p))))

				Expect(b.CalculateMean()).To(Equal(float64(n) * p))
				stdev, err := b.CalculateStdev()
				Expect(err).To(BeNil())
				Expect(stdev).To(Equal(math.Sqrt(float64(n) * p * (1 - p))))
			}
		}
	})

	It("should reject invalid parameters", func() {
		for _, p := range []float64{-0.1, 1.1, math.NaN()} {
			_, err := distribution.NewBinomial(p, 10)
			Expect(err).To(MatchError(distribution.ErrInvalidParameter))
		}

		_, err := distribution.NewBinomial(0.5, -1)
		Expect(err).To(MatchError(distribution.ErrInvalidParameter))

		var paramErr *distribution.ParameterError
		Expect(errors.As(err, &paramErr)).To(BeTrue())
		Expect(paramErr.Name).To(Equal("n"))
	})

	It("should fail to calculate stdev on a negative radicand", func() {
		b := newBinomial(0.5, 10)
		b.P = 1.5
		_, err := b.CalculateStdev()
		Expect(err).To(MatchError(distribution.ErrInvalidParameter))
		Expect(b.Stdev).To(BeNumerically("~", math.Sqrt(2.5), 1e-12))
	})

	It("should replace stats with data", func() {
		b := newBinomial(0.8, 20)
		b.SetSample([]float64{0, 1, 0, 1, 1, 0, 1})

		p, n, err := b.ReplaceStatsWithData()
		Expect(err).To(BeNil())
		Expect(p).To(Equal(4.0 / 7))
		Expect(n).To(Equal(7))
		Expect(b.P).To(Equal(4.0 / 7))
		Expect(b.N).To(Equal(7))
		Expect(b.Mean).To(BeNumerically("~", 4, 1e-12))
		Expect(b.Stdev).To(BeNumerically("~", math.Sqrt(12.0/7), 1e-12))
	})

	It("should replace stats with data loaded from file", func() {
		dir, err := ioutil.TempDir("", "binomial")
		Expect(err).To(BeNil())
		defer os.RemoveAll(dir)

		file := path.Join(dir, "numbers_binomial.txt")
		Expect(ioutil.WriteFile(file, []byte("0\n1\n1\n1\n1\n0\n1\n0\n1\n1\n"), 0644)).To(Succeed())

		b := distribution.DefaultBinomial()
		Expect(b.LoadSample(&loader.LineLoader{}, file)).To(Succeed())
		Expect(b.N).To(Equal(20))

		p, n, err := b.ReplaceStatsWithData()
		Expect(err).To(BeNil())
		Expect(p).To(Equal(0.7))
		Expect(n).To(Equal(10))
		Expect(b.Mean).To(BeNumerically("~", 7, 1e-12))
		Expect(b.Stdev).To(BeNumerically("~", math.Sqrt(2.1), 1e-12))
	})

	It("should fail to replace stats with an empty sample", func() {
		b := distribution.DefaultBinomial()
		_, _, err := b.ReplaceStatsWithData()
		Expect(err).To(Equal(distribution.ErrEmptySample))
		Expect(b.N).To(Equal(20))
		Expect(b.P).To(Equal(0.5))
	})

	It("should reject non binary outcomes", func() {
		b := distribution.DefaultBinomial()
		b.SetSample([]float64{0, 1, 2})
		_, _, err := b.ReplaceStatsWithData()
		Expect(err).To(MatchError(distribution.ErrInvalidParameter))

		var sampleErr *distribution.SampleError
		Expect(errors.As(err, &sampleErr)).To(BeTrue())
		Expect(sampleErr.Index).To(Equal(2))
		Expect(b.N).To(Equal(20))
	})

	It("should evaluate the mass function", func() {
		b := newBinomial(0.5, 2)
		Expect(b.PMF(0)).To(BeNumerically("~", 0.25, 1e-12))
		Expect(b.PMF(1)).To(BeNumerically("~", 0.5, 1e-12))
		Expect(b.PMF(2)).To(BeNumerically("~", 0.25, 1e-12))

		b = newBinomial(0.4, 10)
		// C(10, 3) * 0.4^3 * 0.6^7
		Expect(b.PMF(3)).To(BeNumerically("~", 120*math.Pow(0.4, 3)*math.Pow(0.6, 7), 1e-12))
	})

	It("should be symmetric and sum to 1 with p = 0.5", func() {
		b := newBinomial(0.5, 60)
		sum := 0.0
		for k := 0; k <= b.N; k++ {
			pmf, err := b.PMF(k)
			Expect(err).To(BeNil())
			mirror, err := b.PMF(b.N - k)
			Expect(err).To(BeNil())
			Expect(pmf).To(BeNumerically("~", mirror, 1e-12))
			sum += pmf
		}
		Expect(sum).To(BeNumerically("~", 1, 1e-9))

		// C(60, 40) / 2^60
		Expect(b.PMF(40)).To(BeNumerically("~", 0.0036358455359325947, 1e-12))
	})

	It("should handle degenerate p", func() {
		b := newBinomial(0, 5)
		Expect(b.PMF(0)).To(Equal(1.0))
		Expect(b.PMF(3)).To(Equal(0.0))

		b = newBinomial(1, 5)
		Expect(b.PMF(5)).To(Equal(1.0))
		Expect(b.PMF(4)).To(Equal(0.0))
	})

	It("should stay finite with large n", func() {
		b := newBinomial(0.5, 100000)
		pmf, err := b.PMF(50000)
		Expect(err).To(BeNil())
		Expect(math.IsInf(pmf, 0) || math.IsNaN(pmf)).To(BeFalse())
		Expect(pmf).To(BeNumerically("~", math.Sqrt(2/(math.Pi*100000)), 1e-6))
	})

	It("should fail on k out of the support", func() {
		b := newBinomial(0.5, 60)
		_, err := b.PMF(-1)
		Expect(err).To(MatchError(distribution.ErrDomain))
		_, err = b.PMF(61)
		Expect(err).To(MatchError(distribution.ErrDomain))

		var domainErr *distribution.DomainError
		Expect(errors.As(err, &domainErr)).To(BeTrue())
		Expect(domainErr.K).To(Equal(61))
		Expect(domainErr.N).To(Equal(60))
	})

	It("should produce plot series excluding n", func() {
		b := newBinomial(0.5, 6)
		x, y, err := b.PlotSeries()
		Expect(err).To(BeNil())
		Expect(x).To(Equal([]int{0, 1, 2, 3, 4, 5}))
		Expect(y).To(HaveLen(6))
		for k := range x {
			pmf, _ := b.PMF(k)
			Expect(y[k]).To(Equal(pmf))
		}

		x, y, err = newBinomial(0.5, 0).PlotSeries()
		Expect(err).To(BeNil())
		Expect(x).To(BeEmpty())
		Expect(y).To(BeEmpty())
	})

	It("should fail to produce plot series of invalid parameters", func() {
		b := distribution.DefaultBinomial()
		b.N = -1
		_, _, err := b.PlotSeries()
		Expect(err).To(MatchError(distribution.ErrInvalidParameter))

		b = distribution.DefaultBinomial()
		b.P = 1.5
		_, _, err = b.PlotSeries()
		Expect(err).To(MatchError(distribution.ErrInvalidParameter))

		renderer := &chart.RecordingRenderer{}
		_, _, err = b.PlotBarPDF(renderer)
		Expect(err).To(MatchError(distribution.ErrInvalidParameter))
		Expect(renderer.Calls).To(BeEmpty())
	})

	It("should agree with the gonum binomial distribution", func() {
		for _, p := range []float64{0.1, 0.4, 0.5, 0.75} {
			for _, n := range []int{1, 10, 60, 500} {
				b := newBinomial(p, n)
				ref := distuv.Binomial{N: float64(n), P: p}
				for k := 0; k <= n; k++ {
					pmf, err := b.PMF(k)
					Expect(err).To(BeNil())
					Expect(pmf).To(BeNumerically("~", ref.Prob(float64(k)), 1e-12))
				}
				Expect(b.Mean).To(BeNumerically("~", ref.Mean(), 1e-9))
				Expect(b.Stdev).To(BeNumerically("~", ref.StdDev(), 1e-9))
			}
		}
	})

	It("should render the bar chart of the series", func() {
		b := newBinomial(0.25, 4)
		renderer := &chart.RecordingRenderer{}
		x, y, err := b.PlotBarPDF(renderer)
		Expect(err).To(BeNil())
		Expect(x).To(HaveLen(4))
		Expect(renderer.Calls).To(HaveLen(1))
		Expect(renderer.Calls[0].Kind).To(Equal("bar"))
		Expect(renderer.Calls[0].X).To(Equal(x))
		Expect(renderer.Calls[0].Y).To(Equal(y))
		Expect(renderer.Calls[0].XLabel).To(Equal(distribution.PDFXLabel))
		Expect(renderer.Calls[0].YLabel).To(Equal(distribution.PDFYLabel))
	})

	It("should combine distributions of the same p", func() {
		a := newBinomial(0.4, 10)
		b := newBinomial(0.4, 15)

		c, err := distribution.Combine(a, b)
		Expect(err).To(BeNil())
		Expect(c.P).To(Equal(0.4))
		Expect(c.N).To(Equal(25))
		Expect(c.Mean).To(BeNumerically("~", 10, 1e-12))
		Expect(c.Stdev).To(BeNumerically("~", math.Sqrt(6), 1e-12))

		// Operands untouched.
		Expect(a.N).To(Equal(10))
		Expect(b.N).To(Equal(15))

		d, err := a.Add(b)
		Expect(err).To(BeNil())
		Expect(d.String()).To(Equal(c.String()))
	})

	It("should fail to combine distributions of different p", func() {
		a := newBinomial(0.4, 10)
		b := newBinomial(0.5, 15)

		_, err := distribution.Combine(a, b)
		Expect(err).To(MatchError(distribution.ErrIncompatibleOperand))

		var operandErr *distribution.OperandError
		Expect(errors.As(err, &operandErr)).To(BeTrue())
		Expect(operandErr.P).To(Equal(0.4))
		Expect(operandErr.OtherP).To(Equal(0.5))

		_, err = distribution.Combine(a, nil)
		Expect(err).To(MatchError(distribution.ErrIncompatibleOperand))
	})

	It("should describe itself", func() {
		b := newBinomial(0.8, 20)
		Expect(b.String()).To(Equal("mean 16, standard deviation 1.7888543819998315, p 0.8, n 20"))
	})
})
