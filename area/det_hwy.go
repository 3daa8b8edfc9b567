package area

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch shoelace sum (Structure of Arrays)
// Computing the area of an assembled ring sums the cross-product term of every
// segment. With the endpoint coordinates de-interleaved into separate slices
// this reduces to a fused multiply/subtract over four streams, which
// vectorizes much better than walking a slice of segment structs.

// BaseSumDets accumulates the shoelace cross-product terms of a set of
// directed edges (SoA layout).
// result = sum over i of x0[i]*y1[i] - x1[i]*y0[i]
func BaseSumDets[T hwy.Floats](x0, y0, x1, y1 []T) T {
	size := min(len(x0), len(y0), len(x1), len(y1))

	vSum := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vX0 := hwy.Load(x0[offset:])
			vY0 := hwy.Load(y0[offset:])
			vX1 := hwy.Load(x1[offset:])
			vY1 := hwy.Load(y1[offset:])

			det := hwy.Sub(hwy.Mul(vX0, vY1), hwy.Mul(vX1, vY0))
			vSum = hwy.Add(vSum, det)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)

			vX0 := hwy.MaskLoad(mask, x0[offset:])
			vY0 := hwy.MaskLoad(mask, y0[offset:])
			vX1 := hwy.MaskLoad(mask, x1[offset:])
			vY1 := hwy.MaskLoad(mask, y1[offset:])

			// The masked-out lanes load as zero, so their det term is zero
			// and the accumulator is unaffected.
			det := hwy.Sub(hwy.Mul(vX0, vY1), hwy.Mul(vX1, vY0))
			vSum = hwy.Add(vSum, det)
		},
	)

	return hwy.ReduceSum(vSum)
}
