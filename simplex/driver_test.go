package simplex

import (
	"context"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"q.log/tableau/model"
)

type scriptedConfirmer struct {
	answers []bool
	asked   []Basis
}

func (c *scriptedConfirmer) Confirm(_ context.Context, t *Tableau) (bool, error) {
	c.asked = append(c.asked, t.Basis)
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

var _ = Describe("Solver", func() {
	var (
		p      *model.Problem
		solver *Solver
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		p, err = model.NewProblem(
			[][]float64{{1, 1, 1, 0}, {1, -1, 0, 1}},
			[]float64{4, 2},
			[]float64{3, 2, 0, 0},
			0,
		)
		Expect(err).NotTo(HaveOccurred())
		solver = &Solver{}
		ctx = context.Background()
	})

	Context("when candidates are rejected", func() {
		It("keeps asking until a feasible basis arrives", func() {
			provider := &recordingProvider{bases: [][]int{{0}, {0, 9}, {1, 1}, {0, 3}, {2, 3}}}

			res, err := solver.Solve(ctx, p, provider)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(Optimal))
			Expect(res.Rejections).To(Equal(4))
			Expect(res.Objective).To(BeNumerically("~", 11, 1e-9))

			Expect(provider.rejections).To(HaveLen(4))
			Expect(errors.Is(provider.rejections[0], ErrInvalidBasisSize)).To(BeTrue())
			Expect(errors.Is(provider.rejections[1], ErrIndexOutOfRange)).To(BeTrue())
			Expect(errors.Is(provider.rejections[2], ErrSingularBasis)).To(BeTrue())
			Expect(errors.Is(provider.rejections[3], ErrInfeasible)).To(BeTrue())
		})

		It("stops with the provider error when it gives up", func() {
			_, err := solver.Solve(ctx, p, Candidates([]int{0, 3}))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInfeasible)).To(BeTrue())
		})
	})

	Context("with a confirmer", func() {
		It("returns to basis selection when the basis is declined", func() {
			confirmer := &scriptedConfirmer{answers: []bool{false, true}}
			solver.Confirmer = confirmer
			provider := &recordingProvider{bases: [][]int{{2, 3}, {1, 3}}}

			res, err := solver.Solve(ctx, p, provider)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(Optimal))
			Expect(confirmer.asked).To(Equal([]Basis{{2, 3}, {1, 3}}))
			Expect(provider.rejections).To(HaveLen(1))
			Expect(errors.Is(provider.rejections[0], ErrBasisDeclined)).To(BeTrue())
		})

		It("is only asked about the initial basis", func() {
			confirmer := &scriptedConfirmer{answers: []bool{true}}
			solver.Confirmer = confirmer

			res, err := solver.Solve(ctx, p, FixedBasis(2, 3))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Iterations).To(Equal(2))
			Expect(confirmer.asked).To(HaveLen(1))
		})
	})

	Context("when unbounded after pivoting", func() {
		It("reports the unbounded column", func() {
			// max x + y s.t. x - y <= 1
			q, err := model.NewProblem([][]float64{{1, -1, 1}}, []float64{1}, []float64{1, 1, 0}, 0)
			Expect(err).NotTo(HaveOccurred())

			res, err := solver.Solve(ctx, q, FixedBasis(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Status).To(Equal(Unbounded))
			Expect(res.Iterations).To(Equal(1))
			Expect(res.Entering).To(Equal(1))
			Expect(res.Tableau.Basis).To(Equal(Basis{0}))
			Expect(res.X).To(BeNil())
		})
	})

	Context("cancellation", func() {
		It("is observed between iterations", func() {
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			snapshots := 0
			solver.OnSnapshot = func(Snapshot) {
				snapshots++
				cancel()
			}

			_, err := solver.Solve(cctx, p, FixedBasis(2, 3))
			Expect(err).To(MatchError(context.Canceled))
			Expect(snapshots).To(Equal(1))
		})
	})

	Context("logging", func() {
		It("records every pivot", func() {
			var buf strings.Builder
			solver.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			_, err := solver.Solve(ctx, p, FixedBasis(2, 3))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(buf.String(), "base change")).To(Equal(2))
			Expect(buf.String()).To(ContainSubstring("msg=optimal"))
		})
	})
})
