package area

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseCoordMinMax computes the minimum and maximum of a coordinate slice.
// Used for ring bounding boxes during nesting candidate prefiltering.
func BaseCoordMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seed both accumulators with the first value so empty lanes never
	// contribute spurious zeros.
	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			// Masked-out lanes are zero-filled by MaskLoad; substitute the
			// running min/max there so they drop out of the reduction.
			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)

			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}
