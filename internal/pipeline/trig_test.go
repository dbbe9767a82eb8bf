package pipeline_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/everyside/vixel/internal/pipeline"
)

var _ = Describe("TableMath", func() {
	m := pipeline.TableMath(pipeline.DefaultTableSize)

	It("tracks the math package closely", func() {
		for x := -10.0; x < 10; x += 0.173 {
			Expect(m.Sin(x)).To(BeNumerically("~", math.Sin(x), 1e-5))
			Expect(m.Cos(x)).To(BeNumerically("~", math.Cos(x), 1e-5))
		}
		Expect(m.Tan(0.5)).To(BeNumerically("~", math.Tan(0.5), 1e-4))
	})

	It("is exact on table entries", func() {
		Expect(m.Sin(0)).To(Equal(0.0))
		Expect(m.Cos(0)).To(Equal(1.0))
	})

	It("returns NaN for non-finite input like the math package", func() {
		for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			Expect(math.IsNaN(m.Sin(x))).To(BeTrue(), "sin(%g)", x)
			Expect(math.IsNaN(m.Cos(x))).To(BeTrue(), "cos(%g)", x)
			Expect(math.IsNaN(m.Tan(x))).To(BeTrue(), "tan(%g)", x)
		}
	})

	It("rounds tiny tables up", func() {
		small := pipeline.TableMath(1)
		Expect(small.Cos(0)).To(Equal(1.0))
		Expect(small.Sin(math.Pi / 2)).To(BeNumerically("~", 1, 1e-9))
	})
})
